// Package config loads runtime configuration for the shop server and the
// product console from the environment, an optional .env file and an optional
// shop.yaml config file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the shop resource the console talks to unless told otherwise.
const DefaultBaseURL = "http://localhost:8081/shop"

// Config keys. They double as environment variable names.
const (
	KeyEnv             = "ENV"
	KeyLogLevel        = "LOG_LEVEL"
	KeyBaseURL         = "SHOP_BASE_URL"
	KeyRequestTimeout  = "SHOP_REQUEST_TIMEOUT"
	KeyLogFile         = "SHOP_LOG_FILE"
	KeyHTTPAddr        = "HTTP_ADDR"
	KeyShutdownTimeout = "SHUTDOWN_TIMEOUT"
	KeyRateLimit       = "RATE_LIMIT_RPS"
	KeyRateBurst       = "RATE_LIMIT_BURST"
	KeyAllowedOrigins  = "CORS_ALLOWED_ORIGINS"
	KeyDatabaseURL     = "DATABASE_URL"
	KeyRedisAddr       = "REDIS_ADDR"
	KeyRedisPassword   = "REDIS_PASSWORD"
	KeyRedisDB         = "REDIS_DB"
	KeyCacheTTL        = "CACHE_TTL"
)

// Config holds all application configuration.
type Config struct {
	Env      string
	LogLevel string

	Client ClientConfig
	Server ServerConfig
	DB     DatabaseConfig
	Redis  RedisConfig
}

// ClientConfig configures the product console.
type ClientConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	LogFile        string
}

// ServerConfig configures the shop HTTP server.
type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
	RateLimit       float64
	RateBurst       int
	AllowedOrigins  []string
}

// DatabaseConfig selects the Postgres store. An empty URL means the in-memory store.
type DatabaseConfig struct {
	URL string
}

// RedisConfig enables the product list cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// New returns a viper instance with defaults set and environment lookup enabled.
// Callers may bind flags to it before passing it to FromViper.
func New() *viper.Viper {
	// Load .env if present; a missing file is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault(KeyEnv, "development")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyRequestTimeout, 10*time.Second)
	v.SetDefault(KeyLogFile, "shopview.log")
	v.SetDefault(KeyHTTPAddr, ":8081")
	v.SetDefault(KeyShutdownTimeout, 15*time.Second)
	v.SetDefault(KeyRateLimit, 10.0)
	v.SetDefault(KeyRateBurst, 20)
	v.SetDefault(KeyAllowedOrigins, "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault(KeyDatabaseURL, "")
	v.SetDefault(KeyRedisAddr, "")
	v.SetDefault(KeyRedisPassword, "")
	v.SetDefault(KeyRedisDB, 0)
	v.SetDefault(KeyCacheTTL, 30*time.Second)
	v.AutomaticEnv()

	v.SetConfigName("shop")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	return v
}

// Load reads configuration with defaults, .env, shop.yaml and environment.
func Load() (*Config, error) {
	return FromViper(New())
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Env:      v.GetString(KeyEnv),
		LogLevel: v.GetString(KeyLogLevel),
		Client: ClientConfig{
			BaseURL:        strings.TrimRight(v.GetString(KeyBaseURL), "/"),
			RequestTimeout: v.GetDuration(KeyRequestTimeout),
			LogFile:        v.GetString(KeyLogFile),
		},
		Server: ServerConfig{
			Addr:            v.GetString(KeyHTTPAddr),
			ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
			RateLimit:       v.GetFloat64(KeyRateLimit),
			RateBurst:       v.GetInt(KeyRateBurst),
			AllowedOrigins:  splitList(v.GetString(KeyAllowedOrigins)),
		},
		DB: DatabaseConfig{
			URL: v.GetString(KeyDatabaseURL),
		},
		Redis: RedisConfig{
			Addr:     v.GetString(KeyRedisAddr),
			Password: v.GetString(KeyRedisPassword),
			DB:       v.GetInt(KeyRedisDB),
			CacheTTL: v.GetDuration(KeyCacheTTL),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.Client.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid %s %q: must be an absolute URL", KeyBaseURL, c.Client.BaseURL)
	}
	if c.Client.RequestTimeout <= 0 {
		return fmt.Errorf("invalid %s: must be positive", KeyRequestTimeout)
	}
	if c.Server.RateLimit <= 0 || c.Server.RateBurst <= 0 {
		return fmt.Errorf("invalid rate limit: %s and %s must be positive", KeyRateLimit, KeyRateBurst)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
