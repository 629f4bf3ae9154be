package solver

import (
	"github.com/bastiangx/teamcover/pkg/mask"
	"github.com/bastiangx/teamcover/pkg/roster"
)

// suffixMasks returns, for each position i in ranked, the OR of every
// mask from i to the end. Entry i bounds the coverage still reachable
// once the search cursor sits at i: no completion of the current team
// can cover more than current | suffix[i]. Single reverse pass, O(n).
func suffixMasks(ranked []roster.Entity) []mask.Mask {
	suffixes := make([]mask.Mask, len(ranked))
	var acc mask.Mask
	for i := len(ranked) - 1; i >= 0; i-- {
		acc |= ranked[i].Mask
		suffixes[i] = acc
	}
	return suffixes
}
