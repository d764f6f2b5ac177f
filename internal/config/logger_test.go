package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("applies the configured level globally", func(t *testing.T) {
		NewLogger(LoggerConfig{Level: "warn", Format: "json"})
		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		NewLogger(LoggerConfig{Level: "shouty", Format: "json"})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("empty level falls back to info", func(t *testing.T) {
		NewLogger(LoggerConfig{})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}
