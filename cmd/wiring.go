package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/config"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/service"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/flightprovider"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/flightprovider/skyscanner"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/trip"
	"github.com/redis/go-redis/v9"
)

// dependencies are the long lived parts shared by every trip search.
type dependencies struct {
	provider *skyscanner.Provider
	cache    *trip.TripResultCache
	siteURL  string
	close    func()
}

func newDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	var (
		redisClient *redis.Client
		limiter     flightprovider.RateLimiter
	)

	closeFn := func() {}

	if cfg.RedisEnabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			DialTimeout:  cfg.Redis.Timeout,
			ReadTimeout:  cfg.Redis.Timeout,
			WriteTimeout: cfg.Redis.Timeout,
		})

		closeFn = func() {
			if err := redisClient.Close(); err != nil {
				slog.ErrorContext(ctx, "failed to close redis client", slog.String("error", err.Error()))
			}
		}

		limiter = redis_rate.NewLimiter(redisClient)
	}

	var store trip.BlobStore

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		if redisClient == nil {
			closeFn()
			return nil, fmt.Errorf("cache backend %s: %w", cfg.Cache.Backend, config.ErrInvalidConfig)
		}
		store = trip.NewRedisStore(redisClient)
	default:
		store = trip.NewFileStore(cfg.Cache.Dir)
	}

	provider := skyscanner.NewProvider(flightprovider.FlightProviderConfig{
		APIKey:       cfg.Provider.APIKey,
		APIHost:      cfg.Provider.APIHost,
		BaseURL:      cfg.Provider.BaseURL,
		Timeout:      cfg.Provider.Timeout,
		RateLimitRPS: cfg.Provider.RateLimitRPS,
		Limiter:      limiter,
	})

	slog.InfoContext(ctx, "dependencies ready",
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.Bool("rate_limited", limiter != nil && cfg.Provider.RateLimitRPS > 0))

	return &dependencies{
		provider: provider,
		cache:    trip.NewTripResultCache(store),
		siteURL:  cfg.Provider.SiteURL,
		close:    closeFn,
	}, nil
}

// newTripService builds a service with an empty city memo.
func (d *dependencies) newTripService() *service.TripService {
	resolver := trip.NewCityResolver(d.provider, trip.NewCityMap())

	return service.NewTripService(d.provider, resolver, d.cache, d.siteURL)
}
