package skyscanner

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/metrics"
)

func (p *Provider) newRequest(ctx context.Context, path string, query url.Values) (*http.Request, error) {
	endpoint := strings.TrimRight(p.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("x-rapidapi-key", p.APIKey)
	req.Header.Set("x-rapidapi-host", p.APIHost)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// get issues one GET and returns the body of a 2xx response. Anything else
// becomes a ProviderRequestError; there is no retry.
func (p *Provider) get(ctx context.Context, name, path string, query url.Values) ([]byte, error) {
	if err := p.allow(ctx); err != nil {
		metrics.ProviderRequests.WithLabelValues(name, metrics.OutcomeRateLimited).Inc()
		return nil, err
	}

	req, err := p.newRequest(ctx, path, query)
	if err != nil {
		return nil, &ProviderRequestError{Endpoint: name, Cause: err}
	}

	start := time.Now()
	resp, err := p.session.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(name, metrics.OutcomeError).Inc()
		return nil, &ProviderRequestError{Endpoint: name, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(name, metrics.OutcomeError).Inc()
		return nil, &ProviderRequestError{Endpoint: name, StatusCode: resp.StatusCode, Cause: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.ProviderRequests.WithLabelValues(name, metrics.OutcomeError).Inc()
		return nil, &ProviderRequestError{
			Endpoint:   name,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	metrics.ProviderRequests.WithLabelValues(name, metrics.OutcomeSuccess).Inc()

	return body, nil
}
