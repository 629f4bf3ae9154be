// Package mask encodes sets of lowercase letters as 26-bit integers.
// All set algebra the solver needs (union, coverage counts, missing
// letters) reduces to single-word bit operations.
package mask

import "math/bits"

// Mask is a bit-set over the 26 lowercase letters.
// Bit 0 is 'a', bit 25 is 'z'.
type Mask uint32

// Full has every letter bit set.
const Full Mask = 1<<26 - 1

// FromString ORs in the bit for each lowercase letter in s.
// Anything outside 'a'..'z' is ignored; callers are expected to pass
// canonical (already normalized) names.
func FromString(s string) Mask {
	var m Mask
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			m |= 1 << (c - 'a')
		}
	}
	return m
}

// Coverage returns the number of distinct letters in the set.
func (m Mask) Coverage() int {
	return bits.OnesCount32(uint32(m))
}

// Union returns the combined letter set of m and other.
func (m Mask) Union(other Mask) Mask {
	return m | other
}

// Contains reports whether the letter c is in the set.
func (m Mask) Contains(c byte) bool {
	if c < 'a' || c > 'z' {
		return false
	}
	return m&(1<<(c-'a')) != 0
}

// Letters decodes the set bits back into their letters, in
// alphabetical order.
func (m Mask) Letters() string {
	buf := make([]byte, 0, m.Coverage())
	for c := byte('a'); c <= 'z'; c++ {
		if m&(1<<(c-'a')) != 0 {
			buf = append(buf, c)
		}
	}
	return string(buf)
}

// Missing returns the letters absent from the set, in alphabetical
// order.
func (m Mask) Missing() string {
	return (Full &^ m).Letters()
}

// String implements fmt.Stringer for debug output.
func (m Mask) String() string {
	return m.Letters()
}
