package repository

import (
	"context"
	"fmt"
	"sync"

	"unionlotto/domain/entities"
)

// SetRepository keeps the session history in memory, newest first
type SetRepository struct {
	mu   sync.RWMutex
	sets []*entities.LotterySet
}

// NewSetRepository creates an empty in-memory set repository
func NewSetRepository() *SetRepository {
	return &SetRepository{}
}

// Append prepends a batch of sets. The batch keeps its own order, so the
// first set of the batch becomes the newest entry in the history.
func (r *SetRepository) Append(ctx context.Context, sets ...*entities.LotterySet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(sets) == 0 {
		return nil
	}
	for i, set := range sets {
		if set == nil {
			return fmt.Errorf("set at position %d is nil", i)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	history := make([]*entities.LotterySet, 0, len(sets)+len(r.sets))
	history = append(history, sets...)
	history = append(history, r.sets...)
	r.sets = history
	return nil
}

// Clear removes every stored set
func (r *SetRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sets = nil
	return nil
}

// Snapshot returns deep copies of the history so callers cannot mutate stored sets
func (r *SetRepository) Snapshot(ctx context.Context) ([]*entities.LotterySet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*entities.LotterySet, len(r.sets))
	for i, set := range r.sets {
		snapshot[i] = cloneSet(set)
	}
	return snapshot, nil
}

// Count returns the number of stored sets
func (r *SetRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sets), nil
}

func cloneSet(set *entities.LotterySet) *entities.LotterySet {
	clone := *set
	clone.Reds = make([]int, len(set.Reds))
	copy(clone.Reds, set.Reds)
	return &clone
}
