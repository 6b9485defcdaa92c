package machine

import (
	"fmt"
	"strings"

	"enigma/internal/alphabet"
)

// MaxPlugboardPairs is the number of cables issued with the machine.
const MaxPlugboardPairs = 10

// Plugboard is a symmetric involution over the alphabet.
type Plugboard struct {
	wiring [alphabet.Size]int
}

// NewPlugboard wires the given letter pairs, e.g. []string{"AB", "cd"}.
// A letter may appear in at most one pair; reuse is rejected rather than
// letting a later pair overwrite an earlier one.
func NewPlugboard(pairs []string) (*Plugboard, error) {
	if len(pairs) > MaxPlugboardPairs {
		return nil, configError("plugboard", "", fmt.Errorf("%w: %d pairs, at most %d allowed", ErrInvalidPlugboardPair, len(pairs), MaxPlugboardPairs))
	}
	pb := &Plugboard{}
	for i := range pb.wiring {
		pb.wiring[i] = i
	}
	var used [alphabet.Size]bool
	for _, pair := range pairs {
		a, b, err := parsePair(pair)
		if err != nil {
			return nil, configError("plugboard", pair, err)
		}
		for _, x := range [2]int{a, b} {
			if used[x] {
				return nil, configError("plugboard", pair, fmt.Errorf("%w: letter %c already wired", ErrInvalidPlugboardPair, alphabet.Letter(x)))
			}
			used[x] = true
		}
		pb.wiring[a], pb.wiring[b] = b, a
	}
	return pb, nil
}

func parsePair(pair string) (int, int, error) {
	idx, err := alphabet.Indices(strings.TrimSpace(pair))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidPlugboardPair, err)
	}
	if len(idx) != 2 {
		return 0, 0, fmt.Errorf("%w: want two letters", ErrInvalidPlugboardPair)
	}
	if idx[0] == idx[1] {
		return 0, 0, fmt.Errorf("%w: letter %c paired with itself", ErrInvalidPlugboardPair, alphabet.Letter(idx[0]))
	}
	return idx[0], idx[1], nil
}

// Apply swaps i with its partner; unwired letters map to themselves.
func (p *Plugboard) Apply(i int) int {
	return p.wiring[i]
}

// Pairs returns the wired pairs in alphabetical order, e.g. ["AB", "CD"].
func (p *Plugboard) Pairs() []string {
	var out []string
	for i, j := range p.wiring {
		if i < j {
			out = append(out, string([]rune{alphabet.Letter(i), alphabet.Letter(j)}))
		}
	}
	return out
}
