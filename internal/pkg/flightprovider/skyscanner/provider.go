package skyscanner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/flightprovider"
)

const (
	ProviderName = "Skyscanner"

	autoCompletePath = "/flights/auto-complete"
	searchOneWayPath = "/flights/search-one-way"
)

type Provider struct {
	Name         string
	APIKey       string
	APIHost      string
	BaseURL      string
	Timeout      time.Duration
	Limiter      flightprovider.RateLimiter
	RateLimitRPS int

	session *http.Client
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	return &Provider{
		Name:         ProviderName,
		APIKey:       config.APIKey,
		APIHost:      config.APIHost,
		BaseURL:      config.BaseURL,
		Timeout:      config.Timeout,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		session:      &http.Client{Timeout: config.Timeout},
	}
}

// AutoComplete looks up free-text place names. Suggestions keep the
// provider's order; callers usually take the first one.
func (p *Provider) AutoComplete(ctx context.Context, query string) (flightprovider.AutoCompleteResult, error) {
	body, err := p.get(ctx, "auto-complete", autoCompletePath, url.Values{"query": {query}})
	if err != nil {
		return flightprovider.AutoCompleteResult{}, err
	}

	var response AutoCompleteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return flightprovider.AutoCompleteResult{}, &ProviderRequestError{
			Endpoint: "auto-complete",
			Body:     string(body),
			Cause:    fmt.Errorf("decode response: %w", err),
		}
	}

	slog.DebugContext(ctx, "auto-complete answered",
		slog.String("query", query),
		slog.Int("suggestions", len(response.Data)))

	return flightprovider.AutoCompleteResult{
		Places: p.suggestionsToPlaces(response.Data),
		Raw:    string(body),
	}, nil
}

// SearchOneWay runs one one-way search and returns every bucket the provider sent.
func (p *Provider) SearchOneWay(ctx context.Context,
	params flightprovider.SearchParams,
) (flightprovider.SearchResult, error) {
	query := url.Values{
		"originSkyId":         {params.OriginSkyID},
		"destinationSkyId":    {params.DestinationSkyID},
		"originEntityId":      {params.OriginEntityID},
		"destinationEntityId": {params.DestinationEntityID},
		"date":                {params.Date},
		"cabinClass":          {params.CabinClass},
		"adults":              {strconv.Itoa(params.Adults)},
		"currency":            {params.Currency},
	}

	body, err := p.get(ctx, "search-one-way", searchOneWayPath, query)
	if err != nil {
		return flightprovider.SearchResult{}, err
	}

	var response SearchOneWayResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return flightprovider.SearchResult{}, &ProviderRequestError{
			Endpoint: "search-one-way",
			Body:     string(body),
			Cause:    fmt.Errorf("decode response: %w", err),
		}
	}

	return flightprovider.SearchResult{
		Buckets: p.bucketsToResult(response.Data.Itineraries.Buckets),
	}, nil
}

func (p *Provider) allow(ctx context.Context) error {
	if p.Limiter == nil || p.RateLimitRPS <= 0 {
		return nil
	}

	res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", p.Name),
		redis_rate.PerSecond(p.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return ErrProviderRateLimitExceeded
	}

	return nil
}

func (p *Provider) suggestionsToPlaces(suggestions []Suggestion) []flightprovider.Place {
	results := make([]flightprovider.Place, 0, len(suggestions))
	for _, s := range suggestions {
		params := s.Navigation.RelevantFlightParams
		results = append(results, flightprovider.Place{
			Name:      params.LocalizedName,
			SkyID:     params.SkyID,
			EntityID:  params.EntityID,
			PlaceType: params.FlightPlaceType,
		})
	}
	return results
}

func (p *Provider) bucketsToResult(buckets []Bucket) []flightprovider.Bucket {
	results := make([]flightprovider.Bucket, len(buckets))
	for i, b := range buckets {
		items := make([]flightprovider.Itinerary, len(b.Items))
		for j, item := range b.Items {
			items[j] = flightprovider.Itinerary{
				ID:    item.ID,
				Price: item.Price.Raw,
				Legs:  p.legsToResult(item.Legs),
			}
		}

		results[i] = flightprovider.Bucket{
			ID:    b.ID,
			Name:  b.Name,
			Items: items,
		}
	}
	return results
}

func (p *Provider) legsToResult(legs []Leg) []flightprovider.ItineraryLeg {
	results := make([]flightprovider.ItineraryLeg, len(legs))
	for i, leg := range legs {
		carriers := make([]string, 0, len(leg.Carriers.Marketing))
		for _, c := range leg.Carriers.Marketing {
			carriers = append(carriers, c.Name)
		}

		results[i] = flightprovider.ItineraryLeg{
			Origin:            leg.Origin.Name,
			Destination:       leg.Destination.Name,
			Departure:         leg.Departure,
			Arrival:           leg.Arrival,
			DurationMinutes:   leg.DurationInMinutes,
			StopCount:         leg.StopCount,
			MarketingCarriers: carriers,
		}
	}
	return results
}
