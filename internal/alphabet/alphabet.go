package alphabet

import (
	"fmt"
	"strings"
)

// Size is the number of symbols on every wheel.
const Size = 26

// Index returns the 0-based index of r, folding lowercase to uppercase.
// ok is false when r is not an ASCII letter.
func Index(r rune) (int, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	}
	return 0, false
}

// Letter returns the uppercase letter for index i. i is reduced mod Size.
func Letter(i int) rune {
	return rune('A' + Mod(i))
}

// Mod reduces i into [0, Size), wrapping negative values.
func Mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}

// Filter drops every non-letter from s and upper-cases the rest.
func Filter(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if i, ok := Index(r); ok {
			b.WriteRune(Letter(i))
		}
	}
	return b.String()
}

// Indices parses a string such as "AAA" or "bul" into letter indices.
// Unlike Filter it is strict: any non-letter is an error.
func Indices(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		i, ok := Index(r)
		if !ok {
			return nil, fmt.Errorf("%q is not a letter", r)
		}
		out = append(out, i)
	}
	return out, nil
}

// String renders indices as uppercase letters.
func String(indices []int) string {
	var b strings.Builder
	b.Grow(len(indices))
	for _, i := range indices {
		b.WriteRune(Letter(i))
	}
	return b.String()
}

// Permutation parses a 26-letter wiring string such as
// "EKMFLGDQVZNTOWYHXUSPAIBRCJ" into an index table.
func Permutation(wiring string) ([Size]int, error) {
	var p [Size]int
	idx, err := Indices(wiring)
	if err != nil {
		return p, err
	}
	if len(idx) != Size {
		return p, fmt.Errorf("wiring %q: want %d letters, got %d", wiring, Size, len(idx))
	}
	copy(p[:], idx)
	return p, nil
}
