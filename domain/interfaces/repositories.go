package interfaces

import (
	"context"

	"unionlotto/domain/entities"
	"unionlotto/domain/events"
)

// SetRepository defines the interface for the ordered, in-memory set history
type SetRepository interface {
	// Append prepends the given sets, keeping their relative order
	Append(ctx context.Context, sets ...*entities.LotterySet) error

	// Clear removes every set atomically
	Clear(ctx context.Context) error

	// Snapshot returns a copy of the history, newest first
	Snapshot(ctx context.Context) ([]*entities.LotterySet, error)

	// Count returns the number of stored sets
	Count(ctx context.Context) (int, error)
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event) error
}
