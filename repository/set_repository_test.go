package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"unionlotto/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(blue int) *entities.LotterySet {
	return entities.NewLotterySet([]int{1, 2, 3, 4, 5, 6}, blue, entities.SetSourceRandom, "", time.Now())
}

func blues(sets []*entities.LotterySet) []int {
	result := make([]int, len(sets))
	for i, set := range sets {
		result[i] = set.Blue
	}
	return result
}

func TestSetRepository_Append(t *testing.T) {
	t.Parallel()

	t.Run("newest batch first and batch order kept", func(t *testing.T) {
		repo := NewSetRepository()
		ctx := context.Background()

		require.NoError(t, repo.Append(ctx, newTestSet(1), newTestSet(2)))
		require.NoError(t, repo.Append(ctx, newTestSet(3), newTestSet(4), newTestSet(5)))

		snapshot, err := repo.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4, 5, 1, 2}, blues(snapshot))
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo := NewSetRepository()
		require.NoError(t, repo.Append(context.Background()))

		count, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("nil set rejects the whole batch", func(t *testing.T) {
		repo := NewSetRepository()
		err := repo.Append(context.Background(), newTestSet(1), nil)
		require.Error(t, err)

		count, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("canceled context", func(t *testing.T) {
		repo := NewSetRepository()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := repo.Append(ctx, newTestSet(1))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSetRepository_Clear(t *testing.T) {
	t.Parallel()

	repo := NewSetRepository()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, newTestSet(1), newTestSet(2)))

	require.NoError(t, repo.Clear(ctx))

	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot)

	// Clearing an empty history is allowed
	require.NoError(t, repo.Clear(ctx))
}

func TestSetRepository_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	repo := NewSetRepository()
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, newTestSet(7)))

	snapshot, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	snapshot[0].Blue = 16
	snapshot[0].Reds[0] = 33

	fresh, err := repo.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, fresh[0].Blue)
	assert.Equal(t, 1, fresh[0].Reds[0])

	// Later appends do not change an earlier snapshot
	require.NoError(t, repo.Append(ctx, newTestSet(9)))
	assert.Len(t, fresh, 1)
}

func TestSetRepository_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	repo := NewSetRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, newTestSet(1), newTestSet(2)))
		}()
		go func() {
			defer wg.Done()
			snapshot, err := repo.Snapshot(ctx)
			assert.NoError(t, err)
			// Batches are never split by a concurrent reader
			assert.Equal(t, 0, len(snapshot)%2)
		}()
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100, count)
}
