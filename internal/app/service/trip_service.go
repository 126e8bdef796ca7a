package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/flightprovider"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/trip"
)

type CityResolver interface {
	Resolve(ctx context.Context, name string) (*dto.CityDescriptor, error)
}

type FlightSearcher interface {
	SearchOneWay(ctx context.Context, params flightprovider.SearchParams) (flightprovider.SearchResult, error)
}

type TripCacher interface {
	Memoize(ctx context.Context,
		key string,
		compute func(ctx context.Context) (dto.TripResult, error),
	) (dto.TripResult, bool, error)
}

// TripService runs the searches of one trip. The resolver it holds carries
// the city memo of the run, so build one service per run.
type TripService struct {
	Searcher FlightSearcher
	Resolver CityResolver
	Cache    TripCacher
	SiteURL  string
}

func NewTripService(searcher FlightSearcher, resolver CityResolver,
	cache TripCacher, siteURL string) *TripService {
	return &TripService{
		Searcher: searcher,
		Resolver: resolver,
		Cache:    cache,
		SiteURL:  siteURL,
	}
}

// SearchTrip returns the memoized trip result under key, searching both legs
// only when nothing usable is cached. Any error leaves the cache untouched.
// The bool reports a cache hit.
func (s *TripService) SearchTrip(ctx context.Context, spec dto.TripSpec, key string) (dto.TripResult, bool, error) {
	if spec.Outbound == nil && spec.Inbound == nil {
		return dto.TripResult{}, false, ErrNoLegs
	}

	return s.Cache.Memoize(ctx, key, func(ctx context.Context) (dto.TripResult, error) {
		startTime := time.Now()
		result := dto.NewTripResult()

		for _, leg := range []dto.Leg{dto.LegOutbound, dto.LegInbound} {
			flights, err := s.CollectLeg(ctx, spec, leg)
			if err != nil {
				return dto.TripResult{}, fmt.Errorf("collect %s leg: %w", leg, err)
			}
			result.Append(leg, flights...)
		}

		slog.InfoContext(ctx, "trip searched",
			slog.Int("outbound", len(result.Outbound)),
			slog.Int("inbound", len(result.Inbound)),
			slog.Int64("search_time_ms", time.Since(startTime).Milliseconds()))

		return result, nil
	})
}

// CollectLeg searches every query of a leg in expansion order and
// concatenates the results. The first failing query aborts the leg.
func (s *TripService) CollectLeg(ctx context.Context, spec dto.TripSpec, leg dto.Leg) ([]dto.FlightResult, error) {
	queries := trip.Expand(spec, leg)
	results := make([]dto.FlightResult, 0, len(queries))

	for _, query := range queries {
		flights, err := s.Search(ctx, query)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "query searched",
			slog.String("leg", string(leg)),
			slog.String("origin", query.Origin),
			slog.String("destination", query.Destination),
			slog.String("date", query.Date),
			slog.Int("flights", len(flights)))

		results = append(results, flights...)
	}

	return results, nil
}

// Search resolves both cities of query and returns the non-stop flights of
// the provider's first bucket. Resolver errors come back unchanged.
func (s *TripService) Search(ctx context.Context, query dto.FlightQuery) ([]dto.FlightResult, error) {
	origin, err := s.Resolver.Resolve(ctx, query.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := s.Resolver.Resolve(ctx, query.Destination)
	if err != nil {
		return nil, err
	}

	result, err := s.Searcher.SearchOneWay(ctx, flightprovider.SearchParams{
		OriginSkyID:         origin.SkyID,
		OriginEntityID:      origin.EntityID,
		DestinationSkyID:    destination.SkyID,
		DestinationEntityID: destination.EntityID,
		Date:                query.Date,
		CabinClass:          flightprovider.CabinEconomy,
		Adults:              1,
		Currency:            flightprovider.CurrencyEUR,
	})
	if err != nil {
		return nil, fmt.Errorf("search %s -> %s on %s: %w", query.Origin, query.Destination, query.Date, err)
	}

	link := trip.DeepLink(s.SiteURL, origin, destination, query.Date)

	return trip.NonStopFlights(ctx, result, query, link), nil
}
