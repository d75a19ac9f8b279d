package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPath(t *testing.T) {
	t.Run("Defaults to config.yml", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")

		assert.Equal(t, defaultConfigPath, configPath())
	})

	t.Run("Environment override", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "/etc/battleship/config.yml")

		assert.Equal(t, "/etc/battleship/config.yml", configPath())
	})
}

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	t.Run("Known level", func(t *testing.T) {
		logger := newLogger("debug")

		assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
	})

	t.Run("Unknown level falls back to info", func(t *testing.T) {
		logger := newLogger("chatty")

		assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
		assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
	})
}
