package cmd

import (
	"context"
	"fmt"

	"unionlotto/config"
	"unionlotto/domain/interfaces"
	"unionlotto/domain/services"
	"unionlotto/infrastructure"
	"unionlotto/infrastructure/observability"
	"unionlotto/repository"

	log "github.com/sirupsen/logrus"
)

// App holds the wired application state shared by the bot and the CLI
type App struct {
	Session interfaces.LotterySession

	natsClient *infrastructure.NATSClient
}

type appOptions struct {
	seed    uint64
	seeded  bool
	useNATS bool
}

// AppOption customizes NewApp
type AppOption func(*appOptions)

// WithSeed makes the random sampler reproducible
func WithSeed(seed uint64) AppOption {
	return func(o *appOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithoutNATS skips event publishing even when NATS is configured
func WithoutNATS() AppOption {
	return func(o *appOptions) {
		o.useNATS = false
	}
}

// NewApp wires the repository, sampler, AI provider, event publisher and session
func NewApp(ctx context.Context, cfg *config.Config, opts ...AppOption) (*App, error) {
	options := appOptions{useNATS: true}
	for _, opt := range opts {
		opt(&options)
	}

	app := &App{}

	var publisher interfaces.EventPublisher = infrastructure.NewNoopEventPublisher()
	if options.useNATS && cfg.NATSEnabled() {
		natsPublisher, err := app.connectNATS(ctx, cfg.NATSServers)
		if err != nil {
			return nil, err
		}
		publisher = natsPublisher
	}
	publisher = infrastructure.NewMeteredEventPublisher(publisher, observability.GetMetrics())

	rng := services.NewCryptoRandomSource()
	if options.seeded {
		rng = services.NewSeededRandomSource(options.seed)
	}
	sampler := services.NewNumberSampler(rng)

	provider := infrastructure.NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITemperature)
	if !provider.Configured() {
		log.Warn("GEMINI_API_KEY is not set, AI suggestions are disabled")
	}
	suggestions := services.NewSuggestionService(provider, sampler, cfg.AITimeout())

	app.Session = services.NewLotterySession(
		repository.NewSetRepository(),
		sampler,
		suggestions,
		publisher,
		services.WithClearConfirmWindow(cfg.ClearConfirmWindow()),
	)

	return app, nil
}

func (a *App) connectNATS(ctx context.Context, servers string) (interfaces.EventPublisher, error) {
	log.Infof("Connecting to NATS at %s...", servers)
	client := infrastructure.NewNATSClient(servers)
	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	mapper := infrastructure.NewEventSubjectMapper()
	if err := infrastructure.EnsureLottoEventStream(client, mapper); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ensure event stream: %w", err)
	}

	a.natsClient = client
	return infrastructure.NewNATSEventPublisher(client, mapper), nil
}

// Close releases external connections
func (a *App) Close() {
	if a.natsClient != nil {
		if err := a.natsClient.Close(); err != nil {
			log.Warnf("Error closing NATS connection: %v", err)
		}
	}
}
