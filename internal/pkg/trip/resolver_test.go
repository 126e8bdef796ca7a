package trip

import (
	"context"
	"errors"
	"testing"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/flightprovider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCityResolver_Resolve(t *testing.T) {
	budapest := flightprovider.AutoCompleteResult{
		Places: []flightprovider.Place{
			{Name: "Budapest", SkyID: "BUD", EntityID: "95673439", PlaceType: "AIRPORT"},
			{Name: "Budaors", SkyID: "BUDA", EntityID: "1", PlaceType: "CITY"},
		},
		Raw: `{"data":[...]}`,
	}

	resolveRequest := func(
		name string,
		setupMock func(m *flightprovider.MockFlightProvider),
		want *dto.CityDescriptor,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := flightprovider.NewMockFlightProvider(t)
			setupMock(m)

			cities := NewCityMap()
			r := NewCityResolver(m, cities)

			got, err := r.Resolve(context.Background(), name)
			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				assert.Nil(t, got)
				assert.Zero(t, cities.Len())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, want, got)

			cached, ok := cities.Get(name)
			assert.True(t, ok)
			assert.Same(t, got, cached)
		}
	}

	t.Run("first_suggestion_wins", resolveRequest("Budapest", func(m *flightprovider.MockFlightProvider) {
		m.On("AutoComplete", mock.Anything, "Budapest").Return(budapest, nil).Once()
	}, &dto.CityDescriptor{Name: "Budapest", SkyID: "BUD", EntityID: "95673439", PlaceType: "AIRPORT"}, nil))

	t.Run("no_suggestion", resolveRequest("Nowhereland", func(m *flightprovider.MockFlightProvider) {
		m.On("AutoComplete", mock.Anything, "Nowhereland").
			Return(flightprovider.AutoCompleteResult{Raw: `{"status":true,"data":[]}`}, nil).Once()
	}, nil, ErrUnresolvedCity))

	t.Run("suggestion_without_ids", resolveRequest("Atlantis", func(m *flightprovider.MockFlightProvider) {
		m.On("AutoComplete", mock.Anything, "Atlantis").
			Return(flightprovider.AutoCompleteResult{Places: []flightprovider.Place{{Name: "Atlantis"}}}, nil).Once()
	}, nil, ErrUnresolvedCity))

	providerErr := errors.New("connection reset")
	t.Run("provider_error", resolveRequest("Corfu", func(m *flightprovider.MockFlightProvider) {
		m.On("AutoComplete", mock.Anything, "Corfu").
			Return(flightprovider.AutoCompleteResult{}, providerErr).Once()
	}, nil, providerErr))
}

func TestCityResolver_Memoizes(t *testing.T) {
	m := flightprovider.NewMockFlightProvider(t)
	m.On("AutoComplete", mock.Anything, "Corfu").Return(flightprovider.AutoCompleteResult{
		Places: []flightprovider.Place{{SkyID: "CFU", EntityID: "2", PlaceType: "AIRPORT"}},
	}, nil).Once()

	r := NewCityResolver(m, NewCityMap())

	first, err := r.Resolve(context.Background(), "Corfu")
	require.NoError(t, err)

	second, err := r.Resolve(context.Background(), "Corfu")
	require.NoError(t, err)

	assert.Same(t, first, second)
	m.AssertNumberOfCalls(t, "AutoComplete", 1)
}

func TestCityResolver_ExactNameKeys(t *testing.T) {
	m := flightprovider.NewMockFlightProvider(t)
	m.On("AutoComplete", mock.Anything, mock.AnythingOfType("string")).Return(flightprovider.AutoCompleteResult{
		Places: []flightprovider.Place{{SkyID: "CFU", EntityID: "2"}},
	}, nil)

	cities := NewCityMap()
	r := NewCityResolver(m, cities)

	for _, name := range []string{"Corfu", "corfu", " Corfu"} {
		_, err := r.Resolve(context.Background(), name)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, cities.Len())
	m.AssertNumberOfCalls(t, "AutoComplete", 3)
}

func TestCityResolver_UnresolvedCarriesResponse(t *testing.T) {
	m := flightprovider.NewMockFlightProvider(t)
	m.On("AutoComplete", mock.Anything, "Nowhereland").
		Return(flightprovider.AutoCompleteResult{Raw: `{"status":true,"data":[]}`}, nil)

	_, err := NewCityResolver(m, NewCityMap()).Resolve(context.Background(), "Nowhereland")

	var unresolved *UnresolvedCityError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "Nowhereland", unresolved.Name)
	assert.Equal(t, `{"status":true,"data":[]}`, unresolved.RawResponse)
	assert.Equal(t, `city could not be resolved: "Nowhereland"`, err.Error())
}
