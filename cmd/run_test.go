package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/ijalalfrz/trip-flight-planner/internal/app/config"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tripYAML = `outbound:
  origins: ["Budapest"]
  destinations: ["Corfu"]
  dates: ["2025-09-11"]
`

const oneWayBody = `{"data":{"itineraries":{"buckets":[{"id":"Best","items":[
  {"id":"it-1","price":{"raw":89.99},"legs":[{"origin":{"name":"Budapest"},"destination":{"name":"Corfu"},
   "stopCount":0,"departure":"2025-09-11T06:00:00","arrival":"2025-09-11T08:00:00",
   "carriers":{"marketing":[{"name":"Wizz Air"}]}}]}]}]}}}`

func newProviderServer(t *testing.T, requests *int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)

		switch r.URL.Path {
		case "/flights/auto-complete":
			code := map[string]string{"Budapest": "BUD", "Corfu": "CFU"}[r.URL.Query().Get("query")]
			fmt.Fprintf(w, `{"data":[{"navigation":{"relevantFlightParams":{"skyId":%q,"entityId":"1","flightPlaceType":"AIRPORT"}}}]}`, code)
		case "/flights/search-one-way":
			_, _ = w.Write([]byte(oneWayBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newRunConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	tripFile := filepath.Join(dir, "trip.yaml")
	require.NoError(t, os.WriteFile(tripFile, []byte(tripYAML), 0o600))

	return &config.Config{
		TripFile: tripFile,
		Provider: config.Provider{
			APIKey:  "test-key",
			APIHost: "flights-sky.p.rapidapi.com",
			BaseURL: baseURL,
			SiteURL: "https://www.skyscanner.net",
		},
		Cache: config.Cache{Backend: config.CacheBackendFile, Dir: dir, Key: "results"},
	}
}

func TestRunTrip(t *testing.T) {
	require.NoError(t, dto.InitValidator())

	var requests int32
	srv := newProviderServer(t, &requests)
	cfg := newRunConfig(t, srv.URL)

	var out bytes.Buffer
	require.NoError(t, runTrip(context.Background(), cfg, &out))

	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
	assert.FileExists(t, filepath.Join(cfg.Cache.Dir, "cache-results.json"))

	var got dto.TripResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Outbound, 1)
	assert.Equal(t, "Wizz Air", got.Outbound[0].Carrier)
	assert.Equal(t, 89.99, got.Outbound[0].Price)
	assert.Equal(t, "https://www.skyscanner.net/transport/flights/BUD/CFU/20250911/?adultsv2=1&cabinclass=economy&childrenv2=&inboundaltsenabled=false&outboundaltsenabled=false&preferdirects=false&rtn=0",
		got.Outbound[0].URL)
	assert.Empty(t, got.Inbound)

	t.Run("second_run_served_from_cache", func(t *testing.T) {
		var again bytes.Buffer
		require.NoError(t, runTrip(context.Background(), cfg, &again))

		assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
		assert.JSONEq(t, out.String(), again.String())
	})
}

func TestRunTrip_MissingTripFile(t *testing.T) {
	require.NoError(t, dto.InitValidator())

	var requests int32
	srv := newProviderServer(t, &requests)
	cfg := newRunConfig(t, srv.URL)
	cfg.TripFile = filepath.Join(t.TempDir(), "absent.yaml")

	err := runTrip(context.Background(), cfg, &bytes.Buffer{})

	assert.Error(t, err)
	assert.Zero(t, atomic.LoadInt32(&requests))
}

func TestCheapestPrice(t *testing.T) {
	_, ok := cheapestPrice(nil)
	assert.False(t, ok)

	got, ok := cheapestPrice([]dto.FlightResult{{Price: 120}, {Price: 89.99}, {Price: 100}})
	assert.True(t, ok)
	assert.Equal(t, 89.99, got)
}
