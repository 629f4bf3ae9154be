package solver

import (
	"math"
	"sort"

	"github.com/bastiangx/teamcover/pkg/roster"
)

// Weights computes the per-letter rarity table for a candidate set.
// frequency[letter] counts entities whose name contains the letter at
// least once; the weight is 1/frequency^exponent, so rare letters get
// steeply larger weights. Letters absent from every entity get no
// entry. The table only steers search order, never correctness.
func Weights(entities []roster.Entity, exponent float64) map[byte]float64 {
	freq := make(map[byte]int)
	for _, e := range entities {
		for c := byte('a'); c <= 'z'; c++ {
			if e.Mask.Contains(c) {
				freq[c]++
			}
		}
	}
	weights := make(map[byte]float64, len(freq))
	for c, n := range freq {
		weights[c] = 1 / math.Pow(float64(n), exponent)
	}
	return weights
}

// Rank returns a copy of entities sorted descending by the sum of
// their letters' rarity weights. Ties keep input order, so the
// ranking is deterministic for a given candidate list.
func Rank(entities []roster.Entity, weights map[byte]float64) []roster.Entity {
	type scored struct {
		ent   roster.Entity
		score float64
	}
	rows := make([]scored, len(entities))
	for i, e := range entities {
		rows[i] = scored{ent: e, score: rarityScore(e, weights)}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].score > rows[j].score
	})

	ranked := make([]roster.Entity, len(rows))
	for i, row := range rows {
		ranked[i] = row.ent
	}
	return ranked
}

func rarityScore(e roster.Entity, weights map[byte]float64) float64 {
	var sum float64
	for c := byte('a'); c <= 'z'; c++ {
		if e.Mask.Contains(c) {
			sum += weights[c]
		}
	}
	return sum
}
