package machine

import "enigma/internal/alphabet"

type rotor struct {
	forward [alphabet.Size]int
	inverse [alphabet.Size]int
	notch   [alphabet.Size]bool
	ring    int
}

func newRotor(spec RotorSpec, ring int) rotor {
	r := rotor{forward: spec.Wiring, ring: alphabet.Mod(ring)}
	for i, v := range spec.Wiring {
		r.inverse[v] = i
	}
	for _, n := range spec.Notches {
		r.notch[alphabet.Mod(n)] = true
	}
	return r
}

func (r *rotor) substitute(table *[alphabet.Size]int, x, pos int) int {
	shift := pos - r.ring
	return alphabet.Mod(table[alphabet.Mod(x+shift)] - shift)
}

// stack is the ordered rotor set; index 0 is leftmost, index 2 rightmost.
type stack struct {
	rotors    [RotorCount]rotor
	positions [RotorCount]int
	rule      SteppingRule
}

func (s *stack) onNotch(i int) bool {
	return s.rotors[i].notch[s.positions[i]]
}

func (s *stack) advance(i int) {
	s.positions[i] = alphabet.Mod(s.positions[i] + 1)
}

// step advances the rotors once, before a letter is enciphered.
func (s *stack) step() {
	switch s.rule {
	case DoubleStep:
		double := s.onNotch(1) || s.onNotch(2)
		s.advance(2)
		if double {
			s.advance(1)
			if s.onNotch(1) {
				s.advance(0)
			}
		}
	default:
		carry := true
		for i := RotorCount - 1; i >= 0 && carry; i-- {
			carry = s.onNotch(i)
			s.advance(i)
		}
	}
}

// forward runs x right to left through the rotors.
func (s *stack) forward(x int) int {
	for i := RotorCount - 1; i >= 0; i-- {
		x = s.rotors[i].substitute(&s.rotors[i].forward, x, s.positions[i])
	}
	return x
}

// backward runs x left to right through the inverse wirings.
func (s *stack) backward(x int) int {
	for i := 0; i < RotorCount; i++ {
		x = s.rotors[i].substitute(&s.rotors[i].inverse, x, s.positions[i])
	}
	return x
}
