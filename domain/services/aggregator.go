package services

import (
	"sort"

	"unionlotto/domain/entities"
)

type statKey struct {
	category entities.Category
	number   int
}

// Aggregate counts every red and blue number across the sets and returns the
// TopStatsLimit most frequent entries. Equal counts keep discovery order.
func Aggregate(sets []*entities.LotterySet) []entities.NumberStat {
	stats := AggregateAll(sets)
	if len(stats) > entities.TopStatsLimit {
		stats = stats[:entities.TopStatsLimit]
	}
	return stats
}

// AggregateAll is Aggregate without truncation
func AggregateAll(sets []*entities.LotterySet) []entities.NumberStat {
	counts := make(map[statKey]int)
	order := make([]statKey, 0)

	add := func(key statKey) {
		if _, exists := counts[key]; !exists {
			order = append(order, key)
		}
		counts[key]++
	}

	for _, set := range sets {
		for _, red := range set.Reds {
			add(statKey{category: entities.CategoryRed, number: red})
		}
		add(statKey{category: entities.CategoryBlue, number: set.Blue})
	}

	stats := make([]entities.NumberStat, 0, len(order))
	for _, key := range order {
		stats = append(stats, entities.NumberStat{
			Number:   key.number,
			Count:    counts[key],
			Category: key.category,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	return stats
}
