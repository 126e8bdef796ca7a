package skyscanner

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/exception"
)

var ErrProviderRequest = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "flight provider request failed",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

// ProviderRequestError describes a failed call to the provider. StatusCode is
// zero when the request never got a response.
type ProviderRequestError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Cause      error
}

func (e *ProviderRequestError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status %d: %s", ErrProviderRequest.Message, e.Endpoint, e.StatusCode, e.Body)
	case e.Cause != nil:
		return fmt.Sprintf("%s %s: %s", ErrProviderRequest.Message, e.Endpoint, e.Cause)
	default:
		return fmt.Sprintf("%s %s", ErrProviderRequest.Message, e.Endpoint)
	}
}

func (e *ProviderRequestError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrProviderRequest}
	}

	return []error{ErrProviderRequest, e.Cause}
}
