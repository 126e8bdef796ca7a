package trip

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/exception"
)

var ErrUnresolvedCity = exception.ApplicationError{
	StatusCode: http.StatusUnprocessableEntity,
	Message:    "city could not be resolved",
}

// UnresolvedCityError is returned when the provider has no usable suggestion
// for a city name. RawResponse is the provider body, kept for diagnostics.
type UnresolvedCityError struct {
	Name        string
	RawResponse string
}

func (e *UnresolvedCityError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnresolvedCity.Message, e.Name)
}

func (e *UnresolvedCityError) Unwrap() error {
	return ErrUnresolvedCity
}
