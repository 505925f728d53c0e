package services

import (
	"testing"
	"time"

	"unionlotto/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSet(reds []int, blue int) *entities.LotterySet {
	return entities.NewLotterySet(reds, blue, entities.SetSourceRandom, "", time.Now())
}

func redStat(n, count int) entities.NumberStat {
	return entities.NumberStat{Number: n, Count: count, Category: entities.CategoryRed}
}

func blueStat(n, count int) entities.NumberStat {
	return entities.NumberStat{Number: n, Count: count, Category: entities.CategoryBlue}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sets []*entities.LotterySet
		want []entities.NumberStat
	}{
		{
			name: "empty history",
			sets: nil,
			want: []entities.NumberStat{},
		},
		{
			name: "shared numbers rank first",
			sets: []*entities.LotterySet{
				makeSet([]int{1, 2, 3, 4, 5, 6}, 7),
				makeSet([]int{1, 2, 3, 4, 5, 9}, 7),
			},
			want: []entities.NumberStat{
				redStat(1, 2), redStat(2, 2), redStat(3, 2), redStat(4, 2), redStat(5, 2), blueStat(7, 2),
				redStat(6, 1), redStat(9, 1),
			},
		},
		{
			name: "red and blue with the same value are counted apart",
			sets: []*entities.LotterySet{
				makeSet([]int{5, 10, 15, 20, 25, 30}, 5),
			},
			want: []entities.NumberStat{
				redStat(5, 1), redStat(10, 1), redStat(15, 1), redStat(20, 1), redStat(25, 1), redStat(30, 1), blueStat(5, 1),
			},
		},
		{
			name: "ties keep discovery order",
			sets: []*entities.LotterySet{
				makeSet([]int{20, 21, 22, 23, 24, 25}, 3),
				makeSet([]int{1, 2, 3, 4, 5, 25}, 16),
			},
			want: []entities.NumberStat{
				redStat(25, 2),
				redStat(20, 1), redStat(21, 1), redStat(22, 1), redStat(23, 1), redStat(24, 1), blueStat(3, 1),
				redStat(1, 1), redStat(2, 1), redStat(3, 1), redStat(4, 1), redStat(5, 1), blueStat(16, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.sets)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_TruncatesToTopLimit(t *testing.T) {
	t.Parallel()

	sets := []*entities.LotterySet{
		makeSet([]int{1, 2, 3, 4, 5, 6}, 1),
		makeSet([]int{7, 8, 9, 10, 11, 12}, 2),
		makeSet([]int{13, 14, 15, 16, 17, 18}, 3),
		makeSet([]int{1, 19, 20, 21, 22, 23}, 1),
	}

	all := AggregateAll(sets)
	assert.Len(t, all, 26)

	top := Aggregate(sets)
	require.Len(t, top, entities.TopStatsLimit)
	assert.Equal(t, redStat(1, 2), top[0])
	assert.Equal(t, blueStat(1, 2), top[1])
	assert.Equal(t, all[:entities.TopStatsLimit], top)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Count, top[i].Count)
	}
}

func TestAggregate_CountsMatchHistory(t *testing.T) {
	t.Parallel()

	sampler := NewNumberSampler(NewSeededRandomSource(99))
	sets := make([]*entities.LotterySet, 0, 200)
	for i := 0; i < 200; i++ {
		reds, b := sampler.Generate()
		sets = append(sets, makeSet(reds, b))
	}

	total := 0
	for _, stat := range AggregateAll(sets) {
		total += stat.Count
	}
	assert.Equal(t, 200*(entities.RedCount+1), total)
}
