package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Provider: Provider{APIKey: "key"},
		Cache:    Cache{Backend: CacheBackendFile, Key: "results"},
	}

	validateRequest := func(mutate func(c *Config), wantErr error) func(t *testing.T) {
		return func(t *testing.T) {
			cfg := valid
			mutate(&cfg)

			err := cfg.Validate()
			if wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, wantErr), "expected %v, got %v", wantErr, err)
		}
	}

	t.Run("valid", validateRequest(func(*Config) {}, nil))
	t.Run("missing_api_key", validateRequest(func(c *Config) { c.Provider.APIKey = "  " }, ErrMissingCredential))
	t.Run("redis_without_addr", validateRequest(func(c *Config) { c.Cache.Backend = CacheBackendRedis }, ErrInvalidConfig))
	t.Run("redis_with_addr", validateRequest(func(c *Config) {
		c.Cache.Backend = CacheBackendRedis
		c.Redis.Addr = "localhost:6379"
	}, nil))
	t.Run("unknown_backend", validateRequest(func(c *Config) { c.Cache.Backend = "s3" }, ErrInvalidConfig))
	t.Run("empty_cache_key", validateRequest(func(c *Config) { c.Cache.Key = "" }, ErrInvalidConfig))
	t.Run("sheet_without_credentials", validateRequest(func(c *Config) { c.Sheet.SpreadsheetID = "sheet-1" }, ErrMissingCredential))
}

func TestMustInitConfig_Defaults(t *testing.T) {
	t.Setenv("SKYSCANNER_API_KEY", "secret")
	t.Setenv("SKYSCANNER_RATE_LIMIT", "5")

	cfg := MustInitConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "secret", cfg.Provider.APIKey)
	assert.Equal(t, 5, cfg.Provider.RateLimitRPS)
	assert.Equal(t, "https://flights-sky.p.rapidapi.com", cfg.Provider.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Provider.Timeout)
	assert.Equal(t, CacheBackendFile, cfg.Cache.Backend)
	assert.Equal(t, "results", cfg.Cache.Key)
	assert.Equal(t, "trip.yaml", cfg.TripFile)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestMustInitConfig_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SKYSCANNER_API_KEY=from-file\nCACHE_KEY=summer\nLOG_LEVEL=debug\n"), 0o600))

	cfg := MustInitConfig(envFile)

	assert.Equal(t, "from-file", cfg.Provider.APIKey)
	assert.Equal(t, "summer", cfg.Cache.Key)
	assert.Equal(t, "DEBUG", cfg.LogLevel.Level().String())
}

func TestMustInitConfig_AllowedOrigins(t *testing.T) {
	t.Setenv("HTTP_ALLOWED_ORIGINS", "http://localhost:3000,https://planner.example.com")

	cfg := MustInitConfig(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, []string{"http://localhost:3000", "https://planner.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadTripSpec(t *testing.T) {
	_ = dto.InitValidator()

	loadRequest := func(name, content string, want dto.TripSpec, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			got, err := LoadTripSpec(path)
			if (err != nil) != wantErr {
				t.Fatalf("LoadTripSpec() error = %v, wantErr %v", err, wantErr)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("LoadTripSpec() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("yaml_both_legs", loadRequest("trip.yaml", `
outbound:
  origins: [Budapest, Vienna]
  destinations: [Corfu]
  dates: ["2025-09-11", "2025-09-12"]
inbound:
  origins: [Corfu]
  destinations: [Budapest]
  dates: ["2025-09-20"]
`, dto.TripSpec{
		Outbound: &dto.LegSpec{
			Origins:      []string{"Budapest", "Vienna"},
			Destinations: []string{"Corfu"},
			Dates:        []string{"2025-09-11", "2025-09-12"},
		},
		Inbound: &dto.LegSpec{
			Origins:      []string{"Corfu"},
			Destinations: []string{"Budapest"},
			Dates:        []string{"2025-09-20"},
		},
	}, false))

	t.Run("json_outbound_only", loadRequest("trip.json",
		`{"outbound":{"origins":["Budapest"],"destinations":["Corfu"],"dates":["2025-09-11"]}}`,
		dto.TripSpec{Outbound: &dto.LegSpec{
			Origins:      []string{"Budapest"},
			Destinations: []string{"Corfu"},
			Dates:        []string{"2025-09-11"},
		}}, false))

	t.Run("yaml_unquoted_dates", loadRequest("trip.yaml", `
outbound:
  origins: [Budapest]
  destinations: [Corfu]
  dates: [2025-09-11, 2025-09-12]
`, dto.TripSpec{Outbound: &dto.LegSpec{
		Origins:      []string{"Budapest"},
		Destinations: []string{"Corfu"},
		Dates:        []string{"2025-09-11", "2025-09-12"},
	}}, false))

	t.Run("invalid_date", loadRequest("trip.yaml", `
outbound:
  origins: [Budapest]
  destinations: [Corfu]
  dates: ["Sept 11"]
`, dto.TripSpec{}, true))

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadTripSpec(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestTimeToDateHookFunc(t *testing.T) {
	hook := timeToDateHookFunc()
	stringType := reflect.TypeOf("")

	got, err := hook(reflect.TypeOf(time.Time{}), stringType, time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2025-09-11", got)

	got, err = hook(stringType, stringType, "2025-09-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-09-12", got)

	ts := time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)
	got, err = hook(reflect.TypeOf(ts), reflect.TypeOf(ts), ts)
	require.NoError(t, err)
	assert.Equal(t, ts, got)
}

func TestEnvKeys(t *testing.T) {
	keys := envKeys(reflect.TypeOf(Config{}))

	assert.Contains(t, keys, "LOG_LEVEL")
	assert.Contains(t, keys, "HTTP_ALLOWED_ORIGINS")
	assert.Contains(t, keys, "SKYSCANNER_API_KEY")
	assert.Contains(t, keys, "REDIS_TIMEOUT")
	assert.Contains(t, keys, "SHEET_CREDENTIALS_FILE")
	assert.NotContains(t, keys, "")
}
