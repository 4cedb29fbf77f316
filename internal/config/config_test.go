package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ONEMORNING_TOKEN_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "test-secret", cfg.TokenSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 120, cfg.DiscussionSeconds)
	assert.False(t, cfg.Debug)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ONEMORNING_TOKEN_SECRET", "test-secret")
	t.Setenv("ONEMORNING_LISTEN_ADDR", ":9000")
	t.Setenv("ONEMORNING_REDIS_ADDR", "redis:6380")
	t.Setenv("ONEMORNING_TOKEN_TTL", "1h")
	t.Setenv("ONEMORNING_DISCUSSION_SECONDS", "60")
	t.Setenv("ONEMORNING_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 60, cfg.DiscussionSeconds)
	assert.True(t, cfg.Debug)
}

func TestLoadRequiresTokenSecret(t *testing.T) {
	t.Setenv("ONEMORNING_TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}
