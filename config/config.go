// Package config resolves the client configuration from the environment.
// Callers load a .env file first (see cmd/wallgallery) so both sources end up here.
package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds the resolved client configuration.
type Config struct {
	APIBaseURL string  // Backend root, no trailing slash
	PageSize   int     // Default page size for wallpaper listings
	RateLimit  float64 // Client side requests per second, 0 disables throttling
}

// Load builds a Config from the process environment, falling back to defaults.
func Load() Config {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary lookup function.
func FromLookup(lookup func(string) (string, bool)) Config {
	cfg := Config{
		APIBaseURL: DefaultAPIBaseURL,
		PageSize:   DefaultPageSize,
	}

	if v, ok := lookup(APIURLEnv); ok && strings.TrimSpace(v) != "" {
		cfg.APIBaseURL = v
	} else if v, ok := lookup(LegacyURLEnv); ok && strings.TrimSpace(v) != "" {
		cfg.APIBaseURL = v
	}
	cfg.APIBaseURL = NormalizeBaseURL(cfg.APIBaseURL)

	if v, ok := lookup(PageSizeEnv); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.PageSize = n
		} else {
			log.Printf("ignoring invalid %s=%q", PageSizeEnv, v)
		}
	}

	if v, ok := lookup(RateLimitEnv); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f >= 0 {
			cfg.RateLimit = f
		} else {
			log.Printf("ignoring invalid %s=%q", RateLimitEnv, v)
		}
	}

	return cfg
}

// NormalizeBaseURL trims whitespace and trailing slashes. An empty value yields the default.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimRight(strings.TrimSpace(raw), "/")
	if u == "" {
		return DefaultAPIBaseURL
	}
	return u
}

// GetPath returns the path to the user's config directory
func GetPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("Error getting user home directory: %v", err)
	}
	return filepath.Join(homeDir, "."+strings.ToLower(AppName))
}

// GetFilename returns the path to the user's settings file
func GetFilename() string {
	return filepath.Join(GetPath(), settingsFileName)
}
