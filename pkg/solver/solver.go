// Package solver is the core: branch-and-bound enumeration of fixed
// size candidate subsets maximizing distinct letter coverage. Rarity
// weighted ranking puts high-value candidates first and a precomputed
// suffix mask table bounds what any partial team can still reach, so
// pruning kicks in early and exhaustive search stays tractable for
// rosters of a few hundred names and team sizes of 4 to 6.
package solver

import (
	"errors"

	"github.com/bastiangx/teamcover/internal/logger"
	"github.com/bastiangx/teamcover/pkg/mask"
	"github.com/bastiangx/teamcover/pkg/roster"
)

// ErrInvalidTeamSize is returned for negative team sizes. A size
// larger than the candidate count is not an error; it degrades to an
// empty result.
var ErrInvalidTeamSize = errors.New("team size must be non-negative")

// DefaultRarityExponent matches the reference tuning: large enough
// that a single rare letter outranks any pile of common ones.
const DefaultRarityExponent = 100

// Options tune the search. The rarity exponent only affects how fast
// branches are pruned, never which teams win. MaxResults caps how
// many tied teams are collected (0 keeps all).
type Options struct {
	RarityExponent float64
	MaxResults     int
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{RarityExponent: DefaultRarityExponent}
}

// Team is one complete selection, in selection order. Order is
// presentation only; a team is a set.
type Team []roster.Entity

// Mask returns the combined letter set of the team.
func (t Team) Mask() mask.Mask {
	var m mask.Mask
	for _, e := range t {
		m |= e.Mask
	}
	return m
}

// Missing returns the letters the team does not cover, sorted.
func (t Team) Missing() string {
	return t.Mask().Missing()
}

// Result holds every best-scoring team found. Coverage is the maximal
// distinct letter count; all teams achieve exactly that.
type Result struct {
	Coverage int
	Teams    []Team
}

type searcher struct {
	ranked     []roster.Entity
	suffixes   []mask.Mask
	size       int
	maxResults int

	best  int
	teams []Team

	// prune counters, debug logging only
	nodes           int
	boundPrunes     int
	shortfallPrunes int
}

// Solve finds every size-sized subset of entities with maximal
// distinct letter coverage. A size of 0 yields the single empty team;
// a size beyond the candidate count yields no teams at all. The input
// slice is never mutated.
func Solve(entities []roster.Entity, size int, opts Options) (*Result, error) {
	if size < 0 {
		return nil, ErrInvalidTeamSize
	}
	if opts.RarityExponent < 1 {
		opts.RarityExponent = DefaultRarityExponent
	}

	weights := Weights(entities, opts.RarityExponent)
	ranked := Rank(entities, weights)

	s := &searcher{
		ranked:     ranked,
		suffixes:   suffixMasks(ranked),
		size:       size,
		maxResults: opts.MaxResults,
	}
	s.recurse(0, make(Team, 0, size), 0)

	logger.Default("solver").Debugf("Search done: %d nodes, %d bound prunes, %d shortfall prunes, %d teams at coverage %d",
		s.nodes, s.boundPrunes, s.shortfallPrunes, len(s.teams), s.best)

	return &Result{Coverage: s.best, Teams: s.teams}, nil
}

// recurse explores completions of current from cursor onward.
// current holds the picks so far, covered their combined mask. Each
// frame owns its own extension of current; siblings never share.
func (s *searcher) recurse(cursor int, current Team, covered mask.Mask) {
	s.nodes++

	if len(current) == s.size {
		s.record(current, covered)
		return
	}

	// Not enough candidates left to fill the remaining slots.
	if cursor >= len(s.ranked) || len(current)+(len(s.ranked)-cursor) < s.size {
		s.shortfallPrunes++
		return
	}

	// Even taking every remaining candidate can't match the best.
	// Equality must survive: ties are collected, not just improvements.
	if (covered | s.suffixes[cursor]).Coverage() < s.best {
		s.boundPrunes++
		return
	}

	// Each candidate only combines with candidates after it in the
	// ranking, so every subset is visited exactly once.
	for next := cursor; next < len(s.ranked); next++ {
		e := s.ranked[next]
		s.recurse(next+1, append(current, e), covered|e.Mask)
	}
}

func (s *searcher) record(current Team, covered mask.Mask) {
	count := covered.Coverage()
	switch {
	case count > s.best:
		s.best = count
		s.teams = append(s.teams[:0], cloneTeam(current))
	case count == s.best:
		if s.maxResults > 0 && len(s.teams) >= s.maxResults {
			return
		}
		s.teams = append(s.teams, cloneTeam(current))
	}
}

func cloneTeam(t Team) Team {
	dup := make(Team, len(t))
	copy(dup, t)
	return dup
}
