package trip

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/flightprovider"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/metrics"
)

// CityMap memoizes resolved cities for one run. Keys are the exact names the
// trip spec used; nothing is trimmed or case folded, and entries never expire.
type CityMap struct {
	mu      sync.RWMutex
	entries map[string]*dto.CityDescriptor
}

func NewCityMap() *CityMap {
	return &CityMap{
		entries: make(map[string]*dto.CityDescriptor),
	}
}

func (m *CityMap) Get(name string) (*dto.CityDescriptor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	city, ok := m.entries[name]
	return city, ok
}

func (m *CityMap) Put(name string, city *dto.CityDescriptor) {
	m.mu.Lock()
	m.entries[name] = city
	m.mu.Unlock()
}

func (m *CityMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}

type CityLookup interface {
	AutoComplete(ctx context.Context, query string) (flightprovider.AutoCompleteResult, error)
}

type CityResolver struct {
	lookup CityLookup
	cities *CityMap
}

func NewCityResolver(lookup CityLookup, cities *CityMap) *CityResolver {
	return &CityResolver{
		lookup: lookup,
		cities: cities,
	}
}

// Resolve returns the descriptor for name, asking the provider only the first
// time a name is seen. Repeated calls return the same pointer.
func (r *CityResolver) Resolve(ctx context.Context, name string) (*dto.CityDescriptor, error) {
	if city, ok := r.cities.Get(name); ok {
		metrics.CityResolutions.WithLabelValues("memo").Inc()
		return city, nil
	}

	result, err := r.lookup.AutoComplete(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve city %q: %w", name, err)
	}

	if len(result.Places) == 0 || result.Places[0].SkyID == "" || result.Places[0].EntityID == "" {
		slog.ErrorContext(ctx, "no usable suggestion for city",
			slog.String("city", name),
			slog.String("response", result.Raw))
		return nil, &UnresolvedCityError{Name: name, RawResponse: result.Raw}
	}

	place := result.Places[0]
	city := &dto.CityDescriptor{
		Name:      name,
		SkyID:     place.SkyID,
		EntityID:  place.EntityID,
		PlaceType: place.PlaceType,
	}
	r.cities.Put(name, city)
	metrics.CityResolutions.WithLabelValues("provider").Inc()

	slog.DebugContext(ctx, "city resolved",
		slog.String("city", name),
		slog.String("sky_id", city.SkyID),
		slog.String("entity_id", city.EntityID))

	return city, nil
}
