package solver

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/teamcover/pkg/roster"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func entities(names ...string) []roster.Entity {
	return roster.New(names).Entities()
}

func teamNames(t Team) []string {
	names := make([]string, len(t))
	for i, e := range t {
		names[i] = e.Name
	}
	return names
}

// sortedNames returns a team's names independent of selection order,
// since a team is a set semantically.
func sortedNames(t Team) []string {
	names := teamNames(t)
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}

func TestSolveBestPair(t *testing.T) {
	// ab+cd covers four letters; any team with ac overlaps.
	result, err := Solve(entities("ab", "cd", "ac"), 2, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if result.Coverage != 4 {
		t.Fatalf("Coverage = %d, want 4", result.Coverage)
	}
	if len(result.Teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(result.Teams))
	}
	want := []string{"ab", "cd"}
	if got := sortedNames(result.Teams[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("team = %v, want %v", got, want)
	}
}

func TestSolveDuplicateNames(t *testing.T) {
	// Duplicates are distinct selectable entities by position.
	result, err := Solve(entities("xyz", "xyz"), 2, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if result.Coverage != 3 {
		t.Errorf("Coverage = %d, want 3", result.Coverage)
	}
	if len(result.Teams) != 1 {
		t.Fatalf("got %d teams, want 1", len(result.Teams))
	}
	if got := teamNames(result.Teams[0]); !reflect.DeepEqual(got, []string{"xyz", "xyz"}) {
		t.Errorf("team = %v, want [xyz xyz]", got)
	}
}

func TestSolveOversizedTeam(t *testing.T) {
	result, err := Solve(entities("a", "b", "c"), 4, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Teams) != 0 {
		t.Errorf("got %d teams, want empty result", len(result.Teams))
	}
}

func TestSolveZeroSize(t *testing.T) {
	result, err := Solve(entities("ab", "cd"), 0, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if result.Coverage != 0 {
		t.Errorf("Coverage = %d, want 0", result.Coverage)
	}
	if len(result.Teams) != 1 || len(result.Teams[0]) != 0 {
		t.Errorf("want exactly one empty team, got %v", result.Teams)
	}
}

func TestSolveNegativeSize(t *testing.T) {
	if _, err := Solve(entities("ab"), -1, DefaultOptions()); err != ErrInvalidTeamSize {
		t.Errorf("err = %v, want ErrInvalidTeamSize", err)
	}
}

func TestSolveEmptyCandidateList(t *testing.T) {
	result, err := Solve(nil, 3, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Teams) != 0 {
		t.Errorf("got %d teams, want empty result", len(result.Teams))
	}
}

func TestSolveCollectsTies(t *testing.T) {
	// Three identical singletons tie at coverage 1.
	result, err := Solve(entities("a", "a", "a"), 1, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if result.Coverage != 1 {
		t.Errorf("Coverage = %d, want 1", result.Coverage)
	}
	if len(result.Teams) != 3 {
		t.Errorf("got %d teams, want 3 tied teams", len(result.Teams))
	}
}

func TestSolveMaxResults(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxResults = 2
	result, err := Solve(entities("a", "a", "a"), 1, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Teams) != 2 {
		t.Errorf("got %d teams, want cap of 2", len(result.Teams))
	}
	if result.Coverage != 1 {
		t.Errorf("Coverage = %d, want 1", result.Coverage)
	}
}

func TestSolveEmptyNameOccupiesSlot(t *testing.T) {
	// An entity that normalized to nothing contributes no coverage
	// but still fills a slot.
	ents := entities("ab", "")
	result, err := Solve(ents, 2, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if result.Coverage != 2 {
		t.Errorf("Coverage = %d, want 2", result.Coverage)
	}
	if len(result.Teams) != 1 {
		t.Errorf("got %d teams, want 1", len(result.Teams))
	}
}

func TestSolveTeamsAreExactSizeAndCoverage(t *testing.T) {
	ents := roster.Builtin().Entities()[:40]
	result, err := Solve(ents, 3, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Teams) == 0 {
		t.Fatal("no teams found")
	}
	for i, team := range result.Teams {
		if len(team) != 3 {
			t.Errorf("team %d has %d members, want 3", i, len(team))
		}
		if got := team.Mask().Coverage(); got != result.Coverage {
			t.Errorf("team %d coverage = %d, want %d", i, got, result.Coverage)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	ents := roster.Builtin().Entities()[:30]
	first, err := Solve(ents, 3, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Solve(ents, 3, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs on identical input disagree")
	}
}

func TestSolveCoverageMonotonicInSize(t *testing.T) {
	ents := roster.Builtin().Entities()[:30]
	prev := -1
	for size := 0; size <= 4; size++ {
		result, err := Solve(ents, size, DefaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		if result.Coverage < prev {
			t.Errorf("coverage dropped from %d to %d at size %d", prev, result.Coverage, size)
		}
		prev = result.Coverage
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	ents := entities("zz", "ab", "cd")
	snapshot := make([]roster.Entity, len(ents))
	copy(snapshot, ents)

	if _, err := Solve(ents, 2, DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ents, snapshot) {
		t.Error("input slice mutated by Solve")
	}
}

func BenchmarkSolveBuiltin(b *testing.B) {
	ents := roster.Builtin().Entities()
	opts := DefaultOptions()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(ents, 4, opts); err != nil {
			b.Fatal(err)
		}
	}
}
