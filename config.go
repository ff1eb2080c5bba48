package parallax

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Build-time variable - inject via ldflags
// Example: go build -ldflags "-X github.com/parallax-solutions/parallax-sdk-go.apiKey=YOUR_KEY"
var apiKey string // -X ...parallax-sdk-go.apiKey=...

const (
	DefaultDatadomeAPIHost   = "datadome.parallaxsystems.io"
	DefaultPerimeterxAPIHost = "pxv2.parallaxsystems.io"

	defaultTimeout      = 30 * time.Second
	defaultRetryBackoff = time.Second
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAPIKey  = "PARALLAX_API_KEY"
	EnvAPIHost = "PARALLAX_API_HOST"
	EnvProxy   = "PARALLAX_PROXY"
	EnvTimeout = "PARALLAX_TIMEOUT"
)

// Config configures a Client. Only APIKey is required; product SDKs fill in
// APIHost with their default when it is empty.
type Config struct {
	APIKey  string
	APIHost string

	// Timeout bounds a single API round trip. Defaults to 30s.
	Timeout time.Duration

	// ProxyURL routes API traffic through a proxy. It is unrelated to the
	// proxy sent inside tasks.
	ProxyURL string

	// MaxConcurrent caps in-flight API calls for this client. Zero means no cap.
	MaxConcurrent int

	// MaxRetries is how many times a request failing with a transport error
	// is retried. API errors are never retried.
	MaxRetries int

	// RetryBackoff is the first retry delay; each further retry doubles it.
	RetryBackoff time.Duration

	// HTTPClient replaces the default tls-client transport.
	HTTPClient Doer

	Logger Logger
}

func (c Config) withDefaults(host string) Config {
	if c.APIHost == "" {
		c.APIHost = host
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.RetryBackoff <= 0 {
		c.RetryBackoff = defaultRetryBackoff
	}
	if c.Logger == nil {
		c.Logger = NopLogger{}
	}
	return c
}

// GetAPIKey returns the API key (build-time or env fallback).
func GetAPIKey() string {
	if apiKey != "" {
		return apiKey
	}
	return os.Getenv(EnvAPIKey)
}

// ConfigFromEnv builds a Config from the environment after loading the given
// dotenv files (".env" when none are given). Missing files are ignored and
// variables already set in the environment take precedence over file values.
func ConfigFromEnv(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}

	cfg := Config{
		APIKey:   GetAPIKey(),
		APIHost:  os.Getenv(EnvAPIHost),
		ProxyURL: os.Getenv(EnvProxy),
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, raw, err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}
