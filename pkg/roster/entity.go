// Package roster holds the candidate list the solver draws teams from:
// normalization of raw names, loading from plain text lists, and a
// prefix-searchable index over the loaded names.
package roster

import (
	"strings"

	"github.com/bastiangx/teamcover/pkg/mask"
)

// Entity is a single selectable candidate. Name is the canonical
// (normalized) form; Mask is the set of letters it contributes.
// Entities are built once at load time and never mutated.
type Entity struct {
	Name string
	Mask mask.Mask
}

// Normalize lowercases raw and drops every rune that is not an ASCII
// letter. Digits, punctuation, whitespace and non-ASCII letters all go.
// Normalizing an already-canonical name returns it unchanged.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// NewEntity normalizes raw and computes its letter mask. A name that
// normalizes to the empty string is still a valid entity: it carries
// mask 0 and occupies a team slot without contributing coverage.
func NewEntity(raw string) Entity {
	canonical := Normalize(raw)
	return Entity{
		Name: canonical,
		Mask: mask.FromString(canonical),
	}
}
