package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		want  string
	}{
		{name: "single digit is padded", value: 5, want: "05"},
		{name: "one is padded", value: 1, want: "01"},
		{name: "two digits unchanged", value: 33, want: "33"},
		{name: "sixteen unchanged", value: 16, want: "16"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatNumber(tt.value))
		})
	}
}

func TestLotterySet_CopyText(t *testing.T) {
	t.Parallel()

	set := NewLotterySet([]int{1, 5, 12, 19, 27, 33}, 7, SetSourceRandom, "", time.Now())

	assert.Equal(t, "Red: 01, 05, 12, 19, 27, 33 | Blue: 07", set.CopyText())
}

func TestNewLotterySet(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	reds := []int{2, 4, 6, 8, 10, 12}

	t.Run("copies reds and assigns id", func(t *testing.T) {
		t.Parallel()

		set := NewLotterySet(reds, 3, SetSourceRandom, "", now)
		require.NotEmpty(t, set.ID)
		assert.Equal(t, reds, set.Reds)

		set.Reds[0] = 99
		assert.Equal(t, 2, reds[0], "caller slice must not be shared")
	})

	t.Run("ids are unique", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			set := NewLotterySet(reds, 3, SetSourceRandom, "", now)
			assert.False(t, seen[set.ID])
			seen[set.ID] = true
		}
	})

	t.Run("reasoning only kept for ai sets", func(t *testing.T) {
		t.Parallel()

		random := NewLotterySet(reds, 3, SetSourceRandom, "ignored", now)
		ai := NewLotterySet(reds, 3, SetSourceAI, "dragons", now)

		assert.Empty(t, random.AIReasoning)
		assert.Equal(t, "dragons", ai.AIReasoning)
		assert.True(t, ai.IsAI())
		assert.False(t, random.IsAI())
	})

	t.Run("timestamp millis", func(t *testing.T) {
		t.Parallel()

		set := NewLotterySet(reds, 3, SetSourceRandom, "", now)
		assert.Equal(t, now.UnixMilli(), set.TimestampMillis())
	})
}

func TestLotterySet_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		set     LotterySet
		wantErr bool
	}{
		{
			name: "valid random set",
			set:  LotterySet{ID: "a", Reds: []int{1, 2, 3, 4, 5, 6}, Blue: 1, Source: SetSourceRandom},
		},
		{
			name: "valid ai set with reasoning",
			set:  LotterySet{ID: "a", Reds: []int{28, 29, 30, 31, 32, 33}, Blue: 16, Source: SetSourceAI, AIReasoning: "x"},
		},
		{
			name:    "missing id",
			set:     LotterySet{Reds: []int{1, 2, 3, 4, 5, 6}, Blue: 1, Source: SetSourceRandom},
			wantErr: true,
		},
		{
			name:    "too few reds",
			set:     LotterySet{ID: "a", Reds: []int{1, 2, 3, 4, 5}, Blue: 1, Source: SetSourceRandom},
			wantErr: true,
		},
		{
			name:    "duplicate reds",
			set:     LotterySet{ID: "a", Reds: []int{1, 2, 3, 4, 5, 5}, Blue: 1, Source: SetSourceRandom},
			wantErr: true,
		},
		{
			name:    "unsorted reds",
			set:     LotterySet{ID: "a", Reds: []int{2, 1, 3, 4, 5, 6}, Blue: 1, Source: SetSourceRandom},
			wantErr: true,
		},
		{
			name:    "red above range",
			set:     LotterySet{ID: "a", Reds: []int{1, 2, 3, 4, 5, 34}, Blue: 1, Source: SetSourceRandom},
			wantErr: true,
		},
		{
			name:    "red zero",
			set:     LotterySet{ID: "a", Reds: []int{0, 2, 3, 4, 5, 6}, Blue: 1, Source: SetSourceRandom},
			wantErr: true,
		},
		{
			name:    "blue above range",
			set:     LotterySet{ID: "a", Reds: []int{1, 2, 3, 4, 5, 6}, Blue: 17, Source: SetSourceRandom},
			wantErr: true,
		},
		{
			name:    "random set with reasoning",
			set:     LotterySet{ID: "a", Reds: []int{1, 2, 3, 4, 5, 6}, Blue: 1, Source: SetSourceRandom, AIReasoning: "x"},
			wantErr: true,
		},
		{
			name:    "unknown source",
			set:     LotterySet{ID: "a", Reds: []int{1, 2, 3, 4, 5, 6}, Blue: 1, Source: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.set.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
