package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 10*time.Second, cfg.RulesTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.SRDEnabled)
	assert.Equal(t, config.LogFormatJSON, cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RPG_SHEET_HTTP_ADDR", ":9090")
	t.Setenv("RPG_SHEET_RULES_BASE_URL", "http://rules.internal/api")
	t.Setenv("RPG_SHEET_RULES_TIMEOUT", "2s")
	t.Setenv("RPG_SHEET_SRD_ENABLED", "false")
	t.Setenv("RPG_SHEET_LOG_LEVEL", "debug")
	t.Setenv("RPG_SHEET_LOG_FORMAT", "text")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "http://rules.internal/api", cfg.RulesBaseURL)
	assert.Equal(t, 2*time.Second, cfg.RulesTimeout)
	assert.False(t, cfg.SRDEnabled)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unparseable duration", key: "RPG_SHEET_RULES_TIMEOUT", value: "soon"},
		{name: "zero timeout", key: "RPG_SHEET_RULES_TIMEOUT", value: "0s"},
		{name: "unknown log level", key: "RPG_SHEET_LOG_LEVEL", value: "chatty"},
		{name: "unknown log format", key: "RPG_SHEET_LOG_FORMAT", value: "xml"},
		{name: "blank redis address", key: "RPG_SHEET_REDIS_ADDR", value: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
