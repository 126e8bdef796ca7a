package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
)

type TripService interface {
	SearchTrip(ctx context.Context, spec dto.TripSpec, key string) (dto.TripResult, bool, error)
}

// TripServiceFactory builds a fresh service, and with it a fresh city memo, per request.
type TripServiceFactory func() TripService

type Endpoints struct {
	TripEndpoint TripEndpoint
}

type TripEndpoint struct {
	SearchTrip endpoint.Endpoint
}

func MakeTripEndpoint(newService TripServiceFactory) TripEndpoint {
	return TripEndpoint{
		SearchTrip: makeSearchTripEndpoint(newService),
	}
}

func makeSearchTripEndpoint(newService TripServiceFactory) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TripSpec)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		key := request.CacheKey()

		result, hit, err := newService().SearchTrip(ctx, *request, key)
		if err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return dto.SearchTripResponse{
			CacheKey: key,
			CacheHit: hit,
			Trip:     result,
		}, nil
	}
}
