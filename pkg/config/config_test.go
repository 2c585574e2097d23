package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.True(t, cfg.DemoMode)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://shop.example.com/api")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("DEMO_MODE", "false")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RATE_LIMIT_BURST", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.False(t, cfg.DemoMode)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 2, cfg.RateLimitBurst)
}
