package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"unionlotto/domain/entities"
	"unionlotto/domain/events"
	"unionlotto/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

const (
	// MaxBatchSize is the largest number of random sets produced by one pick
	MaxBatchSize = 5

	// DefaultClearConfirmWindow is how long an armed clear waits for confirmation
	DefaultClearConfirmWindow = 3 * time.Second
)

// SessionOption customizes a lottery session
type SessionOption func(*lotterySession)

// WithClock overrides the session clock
func WithClock(now func() time.Time) SessionOption {
	return func(s *lotterySession) {
		s.now = now
	}
}

// WithClearConfirmWindow overrides how long a clear request stays armed
func WithClearConfirmWindow(window time.Duration) SessionOption {
	return func(s *lotterySession) {
		if window > 0 {
			s.clearWindow = window
		}
	}
}

type lotterySession struct {
	repo        interfaces.SetRepository
	sampler     *NumberSampler
	suggestions interfaces.SuggestionService
	publisher   interfaces.EventPublisher

	mu              sync.Mutex
	latestBatch     []*entities.LotterySet
	clearArmedUntil time.Time
	clearWindow     time.Duration
	now             func() time.Time
}

// NewLotterySession creates the application state shared by the bot, the HTTP API and the CLI
func NewLotterySession(repo interfaces.SetRepository, sampler *NumberSampler, suggestions interfaces.SuggestionService, publisher interfaces.EventPublisher, opts ...SessionOption) interfaces.LotterySession {
	if sampler == nil {
		sampler = NewNumberSampler(nil)
	}
	s := &lotterySession{
		repo:        repo,
		sampler:     sampler,
		suggestions: suggestions,
		publisher:   publisher,
		clearWindow: DefaultClearConfirmWindow,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *lotterySession) PickRandom(ctx context.Context, count int) ([]*entities.LotterySet, error) {
	if count < 1 || count > MaxBatchSize {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidBatchSize, count, MaxBatchSize)
	}

	batch := make([]*entities.LotterySet, 0, count)
	for i := 0; i < count; i++ {
		reds, blue := s.sampler.Generate()
		batch = append(batch, entities.NewLotterySet(reds, blue, entities.SetSourceRandom, "", s.now()))
	}

	size, err := s.record(ctx, batch)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"count":        count,
		"history_size": size,
	}).Info("Random sets generated")

	s.publish(newSetsGeneratedEvent(entities.SetSourceRandom, batch, size))
	return batch, nil
}

func (s *lotterySession) SuggestLucky(ctx context.Context, userContext string) (*entities.LotterySet, error) {
	if s.suggestions == nil {
		return nil, fmt.Errorf("%w: suggestion service unavailable", ErrConfiguration)
	}

	set, err := s.suggestions.Suggest(ctx, userContext)
	if err != nil {
		s.publish(events.SuggestionFailedEvent{Reason: failureReason(err)})
		return nil, err
	}

	// The caller may have given up while the provider was still answering
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	size, err := s.record(ctx, []*entities.LotterySet{set})
	if err != nil {
		return nil, err
	}

	s.publish(newSetsGeneratedEvent(entities.SetSourceAI, []*entities.LotterySet{set}, size))
	return set, nil
}

func (s *lotterySession) RequestClear(ctx context.Context) (interfaces.ClearResult, error) {
	s.mu.Lock()

	count, err := s.repo.Count(ctx)
	if err != nil {
		s.mu.Unlock()
		return "", fmt.Errorf("failed to count history: %w", err)
	}
	if count == 0 {
		s.clearArmedUntil = time.Time{}
		s.latestBatch = nil
		s.mu.Unlock()
		return interfaces.ClearNothing, nil
	}

	now := s.now()
	if s.clearArmedUntil.IsZero() || now.After(s.clearArmedUntil) {
		s.clearArmedUntil = now.Add(s.clearWindow)
		s.mu.Unlock()
		return interfaces.ClearPending, nil
	}

	if err := s.repo.Clear(ctx); err != nil {
		s.mu.Unlock()
		return "", fmt.Errorf("failed to clear history: %w", err)
	}
	s.latestBatch = nil
	s.clearArmedUntil = time.Time{}
	s.mu.Unlock()

	log.WithField("removed_count", count).Info("History cleared")
	s.publish(events.HistoryClearedEvent{RemovedCount: count})
	return interfaces.ClearDone, nil
}

func (s *lotterySession) History(ctx context.Context) ([]*entities.LotterySet, error) {
	return s.repo.Snapshot(ctx)
}

func (s *lotterySession) LatestBatch() []*entities.LotterySet {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := make([]*entities.LotterySet, len(s.latestBatch))
	copy(batch, s.latestBatch)
	return batch
}

func (s *lotterySession) Stats(ctx context.Context) ([]entities.NumberStat, error) {
	sets, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return Aggregate(sets), nil
}

func (s *lotterySession) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// record validates and stores a batch, returning the new history size
func (s *lotterySession) record(ctx context.Context, batch []*entities.LotterySet) (int, error) {
	for _, set := range batch {
		if err := set.Validate(); err != nil {
			return 0, fmt.Errorf("refusing invalid set: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Append(ctx, batch...); err != nil {
		return 0, fmt.Errorf("failed to store sets: %w", err)
	}
	s.latestBatch = batch
	// New sets cancel a pending clear confirmation
	s.clearArmedUntil = time.Time{}

	size, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return size, nil
}

func (s *lotterySession) publish(event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(event); err != nil {
		log.WithFields(log.Fields{
			"eventType": event.Type(),
		}).WithError(err).Error("Failed to publish event")
	}
}

func newSetsGeneratedEvent(source entities.SetSource, batch []*entities.LotterySet, historySize int) events.SetsGeneratedEvent {
	sets := make([]events.GeneratedSet, len(batch))
	for i, set := range batch {
		sets[i] = events.GeneratedSet{
			ID:          set.ID,
			Reds:        set.Reds,
			Blue:        set.Blue,
			Source:      string(set.Source),
			AIReasoning: set.AIReasoning,
			Timestamp:   set.TimestampMillis(),
		}
	}
	return events.SetsGeneratedEvent{
		Source:      string(source),
		Sets:        sets,
		HistorySize: historySize,
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return "configuration"
	case errors.Is(err, ErrEmptyPrompt):
		return "empty_prompt"
	case errors.Is(err, ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed_response"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "provider_error"
	}
}

// FailureReason exposes the classification used for events and metrics
func FailureReason(err error) string {
	return failureReason(err)
}
