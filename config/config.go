package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the app reads from the environment. The only
// externally significant value is APIBaseURL; the rest have local defaults.
type Config struct {
	APIBaseURL     string
	Port           string
	RequestTimeout time.Duration
	SecureCookies  bool
}

func Load() Config {
	cfg := Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8000"),
		Port:           getEnv("PORT", "3000"),
		RequestTimeout: 15 * time.Second,
		SecureCookies:  true,
	}

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("INSECURE_COOKIES"); v == "true" || v == "1" {
		cfg.SecureCookies = false
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
