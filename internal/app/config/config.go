package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/trip-flight-planner/internal/pkg/exception"
)

const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

var ErrMissingCredential = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "missing credential",
}

var ErrInvalidConfig = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "invalid configuration",
}

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the planner configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	TripFile string     `mapstructure:"TRIP_FILE"`
	HTTP     HTTP       `mapstructure:",squash"`
	Provider Provider   `mapstructure:",squash"`
	Cache    Cache      `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Sheet    Sheet      `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

// Provider holds the flight data provider configuration. A zero timeout
// means requests wait as long as the provider takes.
type Provider struct {
	APIKey       string        `mapstructure:"SKYSCANNER_API_KEY"`
	APIHost      string        `mapstructure:"SKYSCANNER_API_HOST"`
	BaseURL      string        `mapstructure:"SKYSCANNER_BASE_URL"`
	SiteURL      string        `mapstructure:"SKYSCANNER_SITE_URL"`
	Timeout      time.Duration `mapstructure:"SKYSCANNER_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"SKYSCANNER_RATE_LIMIT"`
}

type Cache struct {
	Backend string `mapstructure:"CACHE_BACKEND"`
	Dir     string `mapstructure:"CACHE_DIR"`
	Key     string `mapstructure:"CACHE_KEY"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Sheet points at the spreadsheet the trip result is written to. An empty
// spreadsheet id prints the result as JSON instead.
type Sheet struct {
	SpreadsheetID   string `mapstructure:"SHEET_SPREADSHEET_ID"`
	Name            string `mapstructure:"SHEET_NAME"`
	CredentialsFile string `mapstructure:"SHEET_CREDENTIALS_FILE"`
}

// Validate reports the first setting that would make a run fail later.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Provider.APIKey) == "" {
		return ErrMissingCredential.Wrap(fmt.Errorf("SKYSCANNER_API_KEY is required"))
	}

	switch c.Cache.Backend {
	case CacheBackendFile:
	case CacheBackendRedis:
		if c.Redis.Addr == "" {
			return ErrInvalidConfig.Wrap(fmt.Errorf("REDIS_ADDR is required for the redis cache backend"))
		}
	default:
		return ErrInvalidConfig.Wrap(fmt.Errorf("unknown CACHE_BACKEND %q", c.Cache.Backend))
	}

	if strings.TrimSpace(c.Cache.Key) == "" {
		return ErrInvalidConfig.Wrap(fmt.Errorf("CACHE_KEY must not be empty"))
	}

	if c.Sheet.SpreadsheetID != "" && c.Sheet.CredentialsFile == "" {
		return ErrMissingCredential.Wrap(fmt.Errorf("SHEET_CREDENTIALS_FILE is required when SHEET_SPREADSHEET_ID is set"))
	}

	return nil
}

// RedisEnabled reports whether a Redis server is configured for the cache or the limiter.
func (c Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}
