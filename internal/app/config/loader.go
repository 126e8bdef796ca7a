package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/ijalalfrz/trip-flight-planner/internal/app/dto"
	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"LOG_LEVEL":            "info",
	"TRIP_FILE":            "trip.yaml",
	"HTTP_PORT":            8080,
	"HTTP_TIMEOUT":         "5m",
	"HTTP_ALLOWED_ORIGINS": "*",
	"SKYSCANNER_API_HOST":  "flights-sky.p.rapidapi.com",
	"SKYSCANNER_BASE_URL":  "https://flights-sky.p.rapidapi.com",
	"SKYSCANNER_SITE_URL":  "https://www.skyscanner.net",
	"SKYSCANNER_TIMEOUT":   "0s",
	"CACHE_BACKEND":        CacheBackendFile,
	"CACHE_DIR":            ".",
	"CACHE_KEY":            "results",
	"REDIS_TIMEOUT":        "3s",
	"SHEET_NAME":           "Flights",
}

// MustInitConfig initializes configuration from .env file or environment variables.
// If configFile exists, it loads from the file. Otherwise, it automatically binds
// environment variables based on the Config struct's mapstructure tags.
func MustInitConfig(configFile string) Config {
	var (
		vpr = viper.New()
		cfg Config
	)

	// Set default values
	for key, value := range defaults {
		vpr.SetDefault(key, value)
	}

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	// Automatically bind all environment variables from Config struct
	bindEnvFromStruct(vpr)

	// Unmarshal configuration into struct
	if err := vpr.Unmarshal(&cfg); err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// LoadTripSpec reads the trip definition from a YAML or JSON file.
func LoadTripSpec(path string) (dto.TripSpec, error) {
	var spec dto.TripSpec

	vpr := viper.New()
	vpr.SetConfigFile(path)

	if err := vpr.ReadInConfig(); err != nil {
		return dto.TripSpec{}, fmt.Errorf("read trip file %s: %w", path, err)
	}

	if err := vpr.Unmarshal(&spec, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToDateHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return dto.TripSpec{}, fmt.Errorf("decode trip file %s: %w", path, err)
	}

	if err := spec.Validate(); err != nil {
		return dto.TripSpec{}, fmt.Errorf("validate trip file %s: %w", path, err)
	}

	return spec, nil
}

// timeToDateHookFunc turns YAML timestamps such as an unquoted 2025-09-11
// back into YYYY-MM-DD strings.
func timeToDateHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to.Kind() != reflect.String {
			return data, nil
		}

		t, ok := data.(time.Time)
		if !ok {
			return data, nil
		}

		return t.Format(time.DateOnly), nil
	}
}

// bindEnvFromStruct binds every mapstructure tag of Config, squashed
// sections included, so AutomaticEnv values reach Unmarshal.
func bindEnvFromStruct(vpr *viper.Viper) {
	for _, key := range envKeys(reflect.TypeOf(Config{})) {
		_ = vpr.BindEnv(key)
	}
}

func envKeys(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil
	}

	var keys []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name, opts, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")

		if name == "-" {
			continue
		}

		if (strings.Contains(opts, "squash") || field.Anonymous) && field.Type.Kind() == reflect.Struct {
			keys = append(keys, envKeys(field.Type)...)
			continue
		}

		if name != "" {
			keys = append(keys, name)
		}
	}

	return keys
}
