package dto

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/exception"
)

type Leg string

const (
	LegOutbound Leg = "outbound"
	LegInbound  Leg = "inbound"
)

// LegSpec lists the cities and dates of one direction. Every combination
// becomes its own one-way search.
type LegSpec struct {
	Origins      []string `json:"origins" mapstructure:"origins" validate:"required,min=1,dive,notblank"`
	Destinations []string `json:"destinations" mapstructure:"destinations" validate:"required,min=1,dive,notblank"`
	Dates        []string `json:"dates" mapstructure:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
}

// TripSpec holds both legs of a round trip. A nil leg is not searched.
type TripSpec struct {
	Outbound *LegSpec `json:"outbound,omitempty" mapstructure:"outbound" validate:"required_without=Inbound"`
	Inbound  *LegSpec `json:"inbound,omitempty" mapstructure:"inbound" validate:"required_without=Outbound"`
}

func (s *TripSpec) Bind(_ *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *TripSpec) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// Leg returns the spec of the requested direction, nil when absent.
func (s TripSpec) Leg(leg Leg) *LegSpec {
	switch leg {
	case LegOutbound:
		return s.Outbound
	case LegInbound:
		return s.Inbound
	default:
		return nil
	}
}

// CacheKey derives a stable memo key from the spec content.
func (s TripSpec) CacheKey() string {
	// a TripSpec holds only strings and pointers to them, so Marshal cannot fail
	data, _ := json.Marshal(s)
	sum := sha256.Sum256(data)

	return "trip-" + hex.EncodeToString(sum[:6])
}

// CityDescriptor identifies a city for the flight provider.
type CityDescriptor struct {
	Name      string `json:"name"`
	SkyID     string `json:"skyId"`
	EntityID  string `json:"entityId"`
	PlaceType string `json:"placeType"`
}

type FlightQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// FlightResult is one non-stop offer. Origin and Destination are the
// provider's display names, not the names the trip spec used.
type FlightResult struct {
	Date        string    `json:"date"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DepartsAt   time.Time `json:"departsAt"`
	ArrivesAt   time.Time `json:"arrivesAt"`
	URL         string    `json:"url"`
	Price       float64   `json:"price"`
	Carrier     string    `json:"carrier,omitempty"`
}

type TripResult struct {
	Outbound []FlightResult `json:"outbound"`
	Inbound  []FlightResult `json:"inbound"`
}

// NewTripResult returns a result whose legs encode as [] rather than null.
func NewTripResult() TripResult {
	return TripResult{
		Outbound: []FlightResult{},
		Inbound:  []FlightResult{},
	}
}

// Normalize replaces nil legs with empty slices.
func (r TripResult) Normalize() TripResult {
	if r.Outbound == nil {
		r.Outbound = []FlightResult{}
	}

	if r.Inbound == nil {
		r.Inbound = []FlightResult{}
	}

	return r
}

// Append adds flights to the given leg.
func (r *TripResult) Append(leg Leg, flights ...FlightResult) {
	switch leg {
	case LegOutbound:
		r.Outbound = append(r.Outbound, flights...)
	case LegInbound:
		r.Inbound = append(r.Inbound, flights...)
	}
}

// SearchTripResponse is the response struct for the trip search endpoint
type SearchTripResponse struct {
	CacheKey string     `json:"cache_key"`
	CacheHit bool       `json:"cache_hit"`
	Trip     TripResult `json:"trip"`
}
