package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "site-media", cfg.StorageBucket)
	assert.Equal(t, time.Hour, cfg.SignedURLExpiry)
	assert.Equal(t, 45*time.Minute, cfg.SignedURLCacheTTL)
	assert.Less(t, cfg.SignedURLCacheTTL, cfg.SignedURLExpiry,
		"cache TTL must stay below the URL expiry")
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SIGNED_URL_EXPIRY", "30m")
	t.Setenv("SIGNED_URL_CACHE_TTL", "20m")
	t.Setenv("SIGNED_URL_CACHE_MAX", "64")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30*time.Minute, cfg.SignedURLExpiry)
	assert.Equal(t, 20*time.Minute, cfg.SignedURLCacheTTL)
	assert.Equal(t, 64, cfg.SignedURLCacheMax)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("SIGNED_URL_EXPIRY", "soon")
	t.Setenv("SIGNED_URL_CACHE_MAX", "lots")

	cfg := Load()

	assert.Equal(t, time.Hour, cfg.SignedURLExpiry)
	assert.Equal(t, 1024, cfg.SignedURLCacheMax)
}
