package interfaces

import (
	"context"

	"unionlotto/domain/entities"
)

// SuggestionProvider is the external generative model that proposes lucky numbers.
// Implementations return the raw response text; parsing and repair happen in the domain.
type SuggestionProvider interface {
	// GenerateLuckyNumbers sends the prompt and returns the provider's text output
	GenerateLuckyNumbers(ctx context.Context, prompt string) (string, error)

	// Configured reports whether credentials are present
	Configured() bool
}

// SuggestionService turns free-text context into a validated AI lottery set
type SuggestionService interface {
	Suggest(ctx context.Context, userContext string) (*entities.LotterySet, error)
}

// ClearResult describes the outcome of a clear request
type ClearResult string

const (
	// ClearPending means the request armed the confirmation and nothing was removed
	ClearPending ClearResult = "pending"
	// ClearDone means the history was emptied
	ClearDone ClearResult = "done"
	// ClearNothing means there was no history to clear
	ClearNothing ClearResult = "nothing"
)

// LotterySession is the owned application state shared by every presentation surface
type LotterySession interface {
	// PickRandom generates count random sets and records them as one batch
	PickRandom(ctx context.Context, count int) ([]*entities.LotterySet, error)

	// SuggestLucky asks the AI provider for a set based on the user's context
	SuggestLucky(ctx context.Context, userContext string) (*entities.LotterySet, error)

	// RequestClear runs the two-step clear confirmation
	RequestClear(ctx context.Context) (ClearResult, error)

	// History returns every set, newest first
	History(ctx context.Context) ([]*entities.LotterySet, error)

	// LatestBatch returns the sets produced by the most recent generation
	LatestBatch() []*entities.LotterySet

	// Stats returns the top ranked number frequencies across the history
	Stats(ctx context.Context) ([]entities.NumberStat, error)

	// Count returns the history size
	Count(ctx context.Context) (int, error)
}
