package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DISCORD_TOKEN", "GUILD_ID", "GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "AI_TEMPERATURE",
		"AI_TIMEOUT_SECONDS", "CLEAR_CONFIRM_WINDOW_MS", "NATS_SERVERS", "OTEL_ENABLED",
		"OTEL_EXPORTER_TYPE", "OTEL_OTLP_ENDPOINT", "OTEL_SERVICE_NAME", "OTEL_EXPORT_INTERVAL_MS",
		"DEBUG_API_PORT", "LOG_LEVEL", "ENVIRONMENT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, DefaultAITemperature, cfg.AITemperature)
	assert.Equal(t, 30*time.Second, cfg.AITimeout())
	assert.Equal(t, 3*time.Second, cfg.ClearConfirmWindow())
	assert.False(t, cfg.NATSEnabled())
	assert.False(t, cfg.OTelEnabled)
	assert.Equal(t, "unionlotto", cfg.OTelServiceName)
	assert.Equal(t, 8899, cfg.DebugAPIPort)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_KEY", "fallback-key")
	t.Setenv("AI_TEMPERATURE", "0.7")
	t.Setenv("AI_TIMEOUT_SECONDS", "5")
	t.Setenv("CLEAR_CONFIRM_WINDOW_MS", "1500")
	t.Setenv("NATS_SERVERS", "nats://localhost:4222")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "fallback-key", cfg.GeminiAPIKey)
	assert.InDelta(t, 0.7, cfg.AITemperature, 0.0001)
	assert.Equal(t, 5*time.Second, cfg.AITimeout())
	assert.Equal(t, 1500*time.Millisecond, cfg.ClearConfirmWindow())
	assert.True(t, cfg.NATSEnabled())
	assert.True(t, cfg.OTelEnabled)

	t.Setenv("GEMINI_API_KEY", "primary-key")
	cfg, err = load()
	require.NoError(t, err)
	assert.Equal(t, "primary-key", cfg.GeminiAPIKey)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "AI_TEMPERATURE", value: "hot"},
		{key: "AI_TIMEOUT_SECONDS", value: "soon"},
		{key: "CLEAR_CONFIRM_WINDOW_MS", value: "0"},
		{key: "DEBUG_API_PORT", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := load()
			assert.Error(t, err)
		})
	}
}

func TestValidateForBot(t *testing.T) {
	t.Parallel()

	cfg := NewTestConfig()
	assert.NoError(t, cfg.ValidateForBot())

	cfg.Environment = "production"
	cfg.DiscordToken = ""
	assert.Error(t, cfg.ValidateForBot())

	cfg.DiscordToken = "token"
	assert.NoError(t, cfg.ValidateForBot())
}

func TestSetTestConfig(t *testing.T) {
	defer ResetConfig()

	cfg := NewTestConfig()
	cfg.GeminiModel = "custom-model"
	SetTestConfig(cfg)

	assert.Same(t, cfg, Get())
}
