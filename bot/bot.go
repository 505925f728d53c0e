package bot

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"unionlotto/bot/features/lottery"
	"unionlotto/bot/features/stats"
	"unionlotto/domain/interfaces"
	"unionlotto/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token        string
	GuildID      string // Register commands to this guild only; empty registers globally
	DebugAPIPort int    // Zero disables the debug API
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	// Core components
	config  Config
	session *discordgo.Session
	lotto   interfaces.LotterySession

	// Feature modules
	lottery *lottery.Feature
	stats   *stats.Feature

	debugServer *http.Server
}

// New creates a new bot instance with all features
func New(config Config, lotto interfaces.LotterySession) (*Bot, error) {
	// Create Discord session
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:  config,
		session: dg,
		lotto:   lotto,
	}

	// Create feature modules
	bot.lottery = lottery.NewFeature(lotto)
	bot.stats = stats.NewFeature(lotto, stats.NewFrequencyChartGenerator())

	// Register handlers
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleInteractions)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.WithFields(log.Fields{
			"user":   r.User.Username,
			"guilds": len(r.Guilds),
		}).Info("Discord session ready")
	})

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	if config.DebugAPIPort > 0 {
		server, err := StartDebugAPI(config.DebugAPIPort, lotto)
		if err != nil {
			log.Warnf("Failed to start debug API on port %d: %v", config.DebugAPIPort, err)
		}
		bot.debugServer = server
	}

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	if b.debugServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := b.debugServer.Shutdown(ctx); err != nil {
			log.Warnf("Debug API shutdown error: %v", err)
		}
	}

	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != "lotto" {
		return
	}
	observability.GetMetrics().RecordInteraction(observability.InteractionTypeCommand)

	if len(data.Options) > 0 && data.Options[0].Name == "stats" {
		b.stats.HandleCommand(s, i)
		return
	}
	b.lottery.HandleCommand(s, i)
}

// handleInteractions routes component interactions to appropriate features
func (b *Bot) handleInteractions(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		observability.GetMetrics().RecordInteraction(observability.InteractionTypeButton)
		customID := i.MessageComponentData().CustomID
		b.routeComponentInteraction(s, i, customID)

	case discordgo.InteractionModalSubmit:
		observability.GetMetrics().RecordInteraction(observability.InteractionTypeModal)
		customID := i.ModalSubmitData().CustomID
		b.routeModalInteraction(s, i, customID)
	}
}

// routeComponentInteraction routes button interactions
func (b *Bot) routeComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	switch {
	case customID == lottery.ButtonStats:
		b.stats.HandleInteraction(s, i)

	case strings.HasPrefix(customID, "lotto_"):
		b.lottery.HandleInteraction(s, i)

	default:
		log.Warnf("Unrouted component interaction: %s", customID)
	}
}

// routeModalInteraction routes modal submit interactions
func (b *Bot) routeModalInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, customID string) {
	switch {
	case strings.HasPrefix(customID, "lotto_"):
		b.lottery.HandleInteraction(s, i)

	default:
		log.Warnf("Unrouted modal interaction: %s", customID)
	}
}
