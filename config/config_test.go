package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "Defaults",
			env:  map[string]string{},
			want: Config{APIBaseURL: DefaultAPIBaseURL, PageSize: DefaultPageSize},
		},
		{
			name: "Primary URL wins over legacy",
			env: map[string]string{
				APIURLEnv:    "https://api.example.com/",
				LegacyURLEnv: "https://legacy.example.com",
			},
			want: Config{APIBaseURL: "https://api.example.com", PageSize: DefaultPageSize},
		},
		{
			name: "Legacy URL used when primary blank",
			env: map[string]string{
				APIURLEnv:    "  ",
				LegacyURLEnv: "https://legacy.example.com//",
			},
			want: Config{APIBaseURL: "https://legacy.example.com", PageSize: DefaultPageSize},
		},
		{
			name: "Page size and rate limit",
			env: map[string]string{
				PageSizeEnv:  "24",
				RateLimitEnv: "2.5",
			},
			want: Config{APIBaseURL: DefaultAPIBaseURL, PageSize: 24, RateLimit: 2.5},
		},
		{
			name: "Invalid numbers ignored",
			env: map[string]string{
				PageSizeEnv:  "-3",
				RateLimitEnv: "fast",
			},
			want: Config{APIBaseURL: DefaultAPIBaseURL, PageSize: DefaultPageSize},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromLookup(lookupFrom(tt.env)))
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, DefaultAPIBaseURL, NormalizeBaseURL(""))
	assert.Equal(t, "http://host:8000", NormalizeBaseURL(" http://host:8000/ "))
}
