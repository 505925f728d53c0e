package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"unionlotto/domain/entities"
	"unionlotto/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// DefaultSuggestionTimeout bounds a single provider call
const DefaultSuggestionTimeout = 30 * time.Second

type suggestionService struct {
	provider interfaces.SuggestionProvider
	sampler  *NumberSampler
	timeout  time.Duration
	now      func() time.Time
}

// NewSuggestionService creates the AI suggestion adapter. A non-positive timeout uses the default.
func NewSuggestionService(provider interfaces.SuggestionProvider, sampler *NumberSampler, timeout time.Duration) interfaces.SuggestionService {
	if timeout <= 0 {
		timeout = DefaultSuggestionTimeout
	}
	if sampler == nil {
		sampler = NewNumberSampler(nil)
	}
	return &suggestionService{
		provider: provider,
		sampler:  sampler,
		timeout:  timeout,
		now:      time.Now,
	}
}

// BuildLuckyPrompt renders the instruction sent to the provider
func BuildLuckyPrompt(userContext string) string {
	return fmt.Sprintf(`Generate a set of Double Color Ball (Union Lotto) numbers based on this context: "%s".
Rules:
1. Red balls: %d unique numbers from %d to %d.
2. Blue ball: 1 number from %d to %d.
3. The numbers should feel "lucky" based on the user's input.`,
		userContext, entities.RedCount, entities.RedMin, entities.RedMax, entities.BlueMin, entities.BlueMax)
}

func (s *suggestionService) Suggest(ctx context.Context, userContext string) (*entities.LotterySet, error) {
	if s.provider == nil || !s.provider.Configured() {
		return nil, fmt.Errorf("%w: API key is missing", ErrConfiguration)
	}

	userContext = strings.TrimSpace(userContext)
	if userContext == "" {
		return nil, ErrEmptyPrompt
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.provider.GenerateLuckyNumbers(callCtx, BuildLuckyPrompt(userContext))
	if err != nil {
		return nil, fmt.Errorf("ai provider call failed: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrUpstreamUnavailable
	}

	suggestion, err := RepairSuggestion(text, s.sampler)
	if err != nil {
		log.WithFields(log.Fields{
			"response_length": len(text),
		}).WithError(err).Warn("Discarding unparsable AI response")
		return nil, err
	}

	set := entities.NewLotterySet(suggestion.Reds, suggestion.Blue, entities.SetSourceAI, suggestion.Reasoning, s.now())

	log.WithFields(log.Fields{
		"set_id":      set.ID,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("AI suggestion generated")

	return set, nil
}
