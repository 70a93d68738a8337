package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all settings for one batch run, populated from environment variables.
type Config struct {
	Cities       []string
	UserAgent    string
	NominatimURL string

	// RequestTimeout bounds a single geocoding request; RateLimitDelay is the
	// mandatory pause after every request so the shared Nominatim instance is
	// not hammered.
	RequestTimeout time.Duration
	RateLimitDelay time.Duration

	ExportFile   string
	ExportFormat string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	timeout, err := parseDuration("CITYDIST_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("CITYDIST_TIMEOUT must be positive")
	}

	delay, err := parseDuration("CITYDIST_DELAY", "1s")
	if err != nil {
		return nil, err
	}
	if delay < 0 {
		return nil, fmt.Errorf("CITYDIST_DELAY must not be negative")
	}

	cfg := &Config{
		Cities:         parseCities(envOrDefault("CITYDIST_CITIES", "Vilnius,Kaunas,Klaipėda,Šiauliai,Panevėžys")),
		UserAgent:      envOrDefault("CITYDIST_USER_AGENT", "LT_Distance_Calculator"),
		NominatimURL:   envOrDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		RequestTimeout: timeout,
		RateLimitDelay: delay,
		ExportFile:     envOrDefault("CITYDIST_EXPORT_FILE", "distance_matrix.csv"),
		ExportFormat:   envOrDefault("CITYDIST_EXPORT_FORMAT", "csv"),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "json"),
	}

	if len(cfg.Cities) == 0 {
		return nil, fmt.Errorf("CITYDIST_CITIES must name at least one place")
	}
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("CITYDIST_USER_AGENT is required")
	}
	if cfg.ExportFormat != "csv" && cfg.ExportFormat != "excel" {
		return nil, fmt.Errorf("CITYDIST_EXPORT_FORMAT must be csv or excel, got %q", cfg.ExportFormat)
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return d, nil
}

func parseCities(s string) []string {
	var cities []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}
