package config_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/sambat-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins())
	assert.False(t, cfg.Google.SyncEnabled)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadGoogleSyncNeedsCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("GOOGLE_SYNC_ENABLED", "true")
	t.Setenv("CRYPTO_KEY", "short")

	_, err := config.Load()
	assert.Error(t, err)
}
