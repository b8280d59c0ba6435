package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexcheck/pkg/config"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOG_FORMAT", "")
		t.Setenv("LOG_LEVEL", "")

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "lexcheck", cfg.ServiceName)
		assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
		assert.Equal(t, 8, cfg.BatchConcurrency)
		assert.Len(t, cfg.loggerOptions(), 1)
		assert.False(t, cfg.RateLimit.Enabled())
	})

	t.Run("overrides", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("HTTP_ADDR", "127.0.0.1:9999")
		t.Setenv("RATE_LIMIT_CAPACITY", "10")

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9999", cfg.HTTP.Addr)
		assert.Len(t, cfg.loggerOptions(), 3)
		assert.True(t, cfg.RateLimit.Enabled())
	})

	t.Run("invalid log format", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOG_FORMAT", "xml")

		_, err := loadConfig()
		require.Error(t, err)
	})
}
