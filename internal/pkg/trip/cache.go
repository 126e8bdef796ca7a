package trip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/metrics"
)

// TripResultCache memoizes a whole trip result under one key. It is all or
// nothing: a stored result skips every provider call of the run.
type TripResultCache struct {
	store BlobStore
}

func NewTripResultCache(store BlobStore) *TripResultCache {
	return &TripResultCache{
		store: store,
	}
}

// Lookup reports a hit only for a stored, non-blank, decodable result.
// Anything else is a miss and gets overwritten by the next Memoize.
func (c *TripResultCache) Lookup(ctx context.Context, key string) (dto.TripResult, bool) {
	result, err := c.read(ctx, key)
	if err != nil {
		slog.DebugContext(ctx, "trip cache miss", slog.String("key", key), slog.String("reason", err.Error()))
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return dto.TripResult{}, false
	}

	metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return result, true
}

// Memoize returns the stored result for key, or runs compute once and stores
// what it returns. A compute error stores nothing. The bool reports a hit.
func (c *TripResultCache) Memoize(ctx context.Context,
	key string,
	compute func(ctx context.Context) (dto.TripResult, error),
) (dto.TripResult, bool, error) {
	if result, ok := c.Lookup(ctx, key); ok {
		slog.InfoContext(ctx, "using cached trip result",
			slog.String("key", key),
			slog.Int("outbound", len(result.Outbound)),
			slog.Int("inbound", len(result.Inbound)))
		return result, true, nil
	}

	result, err := compute(ctx)
	if err != nil {
		return dto.TripResult{}, false, err
	}
	result = result.Normalize()

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return dto.TripResult{}, false, fmt.Errorf("failed to marshal trip result: %w", err)
	}

	if err := c.store.Write(ctx, key, data); err != nil {
		return dto.TripResult{}, false, fmt.Errorf("failed to store trip result: %w", err)
	}

	slog.InfoContext(ctx, "trip result cached", slog.String("key", key))

	return result, false, nil
}

func (c *TripResultCache) read(ctx context.Context, key string) (dto.TripResult, error) {
	data, err := c.store.Read(ctx, key)
	if err != nil {
		return dto.TripResult{}, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return dto.TripResult{}, fmt.Errorf("cache entry is empty")
	}

	var result dto.TripResult
	if err := json.Unmarshal(data, &result); err != nil {
		return dto.TripResult{}, fmt.Errorf("decode cache entry: %w", err)
	}

	return result.Normalize(), nil
}
