package cmd

import (
	"context"
	"fmt"
	"time"

	"unionlotto/bot"
	"unionlotto/config"
	"unionlotto/infrastructure/observability"

	log "github.com/sirupsen/logrus"
)

// ConfigureLogging applies the configured log level and formatter
func ConfigureLogging(cfg *config.Config) {
	if cfg.Environment == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

// Run initializes and starts the Discord bot
func Run(ctx context.Context) error {
	log.Info("Starting Union Lotto bot...")

	// Load configuration
	cfg := config.Get()
	ConfigureLogging(cfg)
	if err := cfg.ValidateForBot(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize metrics
	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		log.Warnf("Failed to initialize metrics: %v", err)
	}

	app, err := NewApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:        cfg.DiscordToken,
		GuildID:      cfg.GuildID,
		DebugAPIPort: cfg.DebugAPIPort,
	}
	discordBot, err := bot.New(botConfig, app.Session)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := observability.ShutdownGlobalMetrics(shutdownCtx); err != nil {
		log.Warnf("Error shutting down metrics: %v", err)
	}

	log.Info("Shutdown completed")
	return nil
}
