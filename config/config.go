package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Guild for command registration, empty registers globally

	// AI provider configuration
	GeminiAPIKey     string
	GeminiModel      string
	AITemperature    float32
	AITimeoutSeconds int

	// Session configuration
	ClearConfirmWindowMillis int // How long a clear request waits for confirmation

	// NATS configuration
	NATSServers string // NATS server addresses (comma-separated), empty disables publishing

	// OpenTelemetry configuration
	OTelEnabled              bool
	OTelExporterType         string // "console", "otlp" or "none"
	OTelOTLPEndpoint         string
	OTelServiceName          string
	OTelExportIntervalMillis int

	// Debug API configuration
	DebugAPIPort int

	// Logging
	LogLevel string

	// Environment
	Environment string // "development", "production" or "test"
}

const (
	DefaultGeminiModel   = "gemini-2.5-flash"
	DefaultAITemperature = float32(1.1)
)

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// AITimeout returns the provider call timeout
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AITimeoutSeconds) * time.Second
}

// ClearConfirmWindow returns how long an armed clear stays valid
func (c *Config) ClearConfirmWindow() time.Duration {
	return time.Duration(c.ClearConfirmWindowMillis) * time.Millisecond
}

// NATSEnabled reports whether domain events should be published to NATS
func (c *Config) NATSEnabled() bool {
	return strings.TrimSpace(c.NATSServers) != ""
}

// ValidateForBot checks the settings only the Discord bot needs
func (c *Config) ValidateForBot() error {
	if c.Environment == "test" {
		return nil
	}
	if c.DiscordToken == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	return nil
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		// AI provider
		GeminiAPIKey:     getEnvWithDefault("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:      getEnvWithDefault("GEMINI_MODEL", DefaultGeminiModel),
		AITemperature:    DefaultAITemperature,
		AITimeoutSeconds: 30,

		// Session
		ClearConfirmWindowMillis: 3000,

		// NATS
		NATSServers: os.Getenv("NATS_SERVERS"),

		// OpenTelemetry
		OTelEnabled:              os.Getenv("OTEL_ENABLED") == "true",
		OTelExporterType:         getEnvWithDefault("OTEL_EXPORTER_TYPE", "console"),
		OTelOTLPEndpoint:         getEnvWithDefault("OTEL_OTLP_ENDPOINT", "localhost:4317"),
		OTelServiceName:          getEnvWithDefault("OTEL_SERVICE_NAME", "unionlotto"),
		OTelExportIntervalMillis: 60000,

		// Debug API
		DebugAPIPort: 8899,

		// Logging
		LogLevel: getEnvWithDefault("LOG_LEVEL", "info"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if temperature := os.Getenv("AI_TEMPERATURE"); temperature != "" {
		parsed, err := strconv.ParseFloat(temperature, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid AI_TEMPERATURE %q: %w", temperature, err)
		}
		config.AITemperature = float32(parsed)
	}
	if err := overrideInt("AI_TIMEOUT_SECONDS", &config.AITimeoutSeconds); err != nil {
		return nil, err
	}
	if err := overrideInt("CLEAR_CONFIRM_WINDOW_MS", &config.ClearConfirmWindowMillis); err != nil {
		return nil, err
	}
	if err := overrideInt("OTEL_EXPORT_INTERVAL_MS", &config.OTelExportIntervalMillis); err != nil {
		return nil, err
	}
	if err := overrideInt("DEBUG_API_PORT", &config.DebugAPIPort); err != nil {
		return nil, err
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	return config, nil
}

// overrideInt replaces target with a positive integer from the environment when set
func overrideInt(key string, target *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if parsed <= 0 {
		return fmt.Errorf("%s must be positive, got %d", key, parsed)
	}
	*target = parsed
	return nil
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		DiscordToken:             "test-token",
		GeminiModel:              DefaultGeminiModel,
		AITemperature:            DefaultAITemperature,
		AITimeoutSeconds:         30,
		ClearConfirmWindowMillis: 3000,
		OTelExporterType:         "none",
		OTelServiceName:          "unionlotto",
		OTelExportIntervalMillis: 60000,
		DebugAPIPort:             8899,
		LogLevel:                 "info",
		Environment:              "test",
	}
}
