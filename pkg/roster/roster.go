package roster

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/bastiangx/teamcover/pkg/mask"
)

// errStopWalk aborts a trie walk once the lookup limit is reached.
var errStopWalk = errors.New("stop walk")

// Roster owns the ordered candidate list for one solver run plus a
// patricia trie index over the canonical names. The entity order is
// the input order; duplicate names stay as distinct entries (they are
// selectable by position) and the index tracks their multiplicity.
type Roster struct {
	entities []Entity
	index    *patricia.Trie
}

// Match is one prefix lookup hit.
type Match struct {
	Name  string
	Count int
	Mask  mask.Mask
}

// New builds a roster from raw names, normalizing each one.
func New(rawNames []string) *Roster {
	r := &Roster{
		entities: make([]Entity, 0, len(rawNames)),
		index:    patricia.NewTrie(),
	}
	for _, raw := range rawNames {
		r.add(NewEntity(raw))
	}
	return r
}

func (r *Roster) add(e Entity) {
	r.entities = append(r.entities, e)
	if e.Name == "" {
		// Empty canonical names can't be indexed but stay selectable.
		return
	}
	key := patricia.Prefix(e.Name)
	if item := r.index.Get(key); item != nil {
		r.index.Set(key, item.(int)+1)
	} else {
		r.index.Insert(key, 1)
	}
}

// Entities returns the ordered candidate list. Callers must not
// mutate it; the solver copies before ranking.
func (r *Roster) Entities() []Entity {
	return r.entities
}

// Len returns the number of candidates, duplicates included.
func (r *Roster) Len() int {
	return len(r.entities)
}

// LookupPrefix returns up to limit candidates whose canonical name
// starts with prefix, in trie visit order. limit <= 0 means no cap.
// Duplicated names come back once with their multiplicity.
func (r *Roster) LookupPrefix(prefix string, limit int) []Match {
	var matches []Match
	err := r.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		name := string(p)
		matches = append(matches, Match{
			Name:  name,
			Count: item.(int),
			Mask:  mask.FromString(name),
		})
		if limit > 0 && len(matches) >= limit {
			return errStopWalk
		}
		return nil
	})
	if err != nil && err != errStopWalk {
		log.Errorf("Error visiting roster index: %v", err)
	}
	return matches
}
