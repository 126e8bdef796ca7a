package trip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/flightprovider"
)

// providers send local wall-clock times without an offset
const localDateTime = "2006-01-02T15:04:05"

// NonStopFlights maps the non-stop itineraries of the first bucket into
// results for query. Later buckets and itineraries with stops are dropped.
func NonStopFlights(ctx context.Context,
	result flightprovider.SearchResult,
	query dto.FlightQuery,
	link string,
) []dto.FlightResult {
	bucket, ok := result.FirstBucket()
	if !ok {
		return []dto.FlightResult{}
	}

	results := make([]dto.FlightResult, 0, len(bucket.Items))

	for _, item := range bucket.Items {
		if len(item.Legs) == 0 || item.Legs[0].StopCount != 0 {
			continue
		}

		leg := item.Legs[0]
		results = append(results, dto.FlightResult{
			Date:        query.Date,
			Origin:      leg.Origin,
			Destination: leg.Destination,
			DepartsAt:   parseLegTime(ctx, leg.Departure),
			ArrivesAt:   parseLegTime(ctx, leg.Arrival),
			URL:         link,
			Price:       item.Price,
			Carrier:     firstCarrier(leg.MarketingCarriers),
		})
	}

	return results
}

// parseLegTime accepts RFC 3339 or an offset-less timestamp, read as UTC.
// An unparsable value is logged and left as the zero time.
func parseLegTime(ctx context.Context, value string) time.Time {
	parsed, err := ParseProviderTime(value)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse leg time", slog.String("time", value), slog.Any("error", err))
		return time.Time{}
	}

	return parsed
}

func ParseProviderTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}

	parsed, err := time.Parse(localDateTime, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse provider time %q: %w", value, err)
	}

	return parsed, nil
}

func firstCarrier(carriers []string) string {
	if len(carriers) == 0 {
		return ""
	}

	return carriers[0]
}
