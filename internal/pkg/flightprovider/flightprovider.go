package flightprovider

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
)

const (
	CabinEconomy = "economy"
	CurrencyEUR  = "EUR"
)

// config for flight provider
type FlightProviderConfig struct {
	APIKey       string
	APIHost      string
	BaseURL      string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      RateLimiter
}

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// FlightProvider is the flight data source the trip search runs against.
type FlightProvider interface {
	AutoComplete(ctx context.Context, query string) (AutoCompleteResult, error)
	SearchOneWay(ctx context.Context, params SearchParams) (SearchResult, error)
}

// Place is one auto-complete suggestion.
type Place struct {
	Name      string
	SkyID     string
	EntityID  string
	PlaceType string
}

// AutoCompleteResult keeps the raw body next to the suggestions so a failed
// lookup can report what the provider actually said.
type AutoCompleteResult struct {
	Places []Place
	Raw    string
}

type SearchParams struct {
	OriginSkyID         string
	OriginEntityID      string
	DestinationSkyID    string
	DestinationEntityID string
	Date                string
	CabinClass          string
	Adults              int
	Currency            string
}

type SearchResult struct {
	Buckets []Bucket
}

// FirstBucket returns the provider's top bucket, false when there is none.
func (r SearchResult) FirstBucket() (Bucket, bool) {
	if len(r.Buckets) == 0 {
		return Bucket{}, false
	}

	return r.Buckets[0], true
}

type Bucket struct {
	ID    string
	Name  string
	Items []Itinerary
}

type Itinerary struct {
	ID    string
	Price float64
	Legs  []ItineraryLeg
}

// ItineraryLeg keeps departure and arrival as the provider sent them.
type ItineraryLeg struct {
	Origin            string
	Destination       string
	Departure         string
	Arrival           string
	DurationMinutes   int
	StopCount         int
	MarketingCarriers []string
}
