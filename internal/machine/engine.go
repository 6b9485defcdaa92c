package machine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"enigma/internal/alphabet"
)

// Configuration is the operator-chosen setup of a machine.
type Configuration struct {
	Rotors       []string // labels, left to right
	RingSettings []int    // one per rotor, reduced mod 26
	Positions    []int    // one per rotor, reduced mod 26
	Reflector    string
	Plugboard    []string // letter pairs such as "AB"; at most MaxPlugboardPairs
}

// Engine enciphers letters. It is not safe for concurrent use.
type Engine struct {
	profile   *Profile
	plugboard *Plugboard
	reflector [alphabet.Size]int
	rotors    stack
	initial   [RotorCount]int
}

// New validates cfg against profile and returns a ready Engine. Errors are
// *ConfigError values wrapping ErrUnknownComponent,
// ErrInvalidConfigurationLength or ErrInvalidPlugboardPair.
func New(profile *Profile, cfg Configuration) (*Engine, error) {
	if profile == nil {
		return nil, configError("profile", "", ErrUnknownProfile)
	}
	if err := checkLength("rotors", len(cfg.Rotors)); err != nil {
		return nil, err
	}
	if err := checkLength("ring settings", len(cfg.RingSettings)); err != nil {
		return nil, err
	}
	if err := checkLength("positions", len(cfg.Positions)); err != nil {
		return nil, err
	}

	e := &Engine{profile: profile}
	e.rotors.rule = profile.Rule()
	for i, label := range cfg.Rotors {
		spec, err := profile.Rotor(label)
		if err != nil {
			return nil, err
		}
		e.rotors.rotors[i] = newRotor(spec, cfg.RingSettings[i])
		e.initial[i] = alphabet.Mod(cfg.Positions[i])
	}
	e.rotors.positions = e.initial

	refl, err := profile.Reflector(cfg.Reflector)
	if err != nil {
		return nil, err
	}
	e.reflector = refl

	pb, err := NewPlugboard(cfg.Plugboard)
	if err != nil {
		return nil, err
	}
	e.plugboard = pb
	return e, nil
}

func checkLength(field string, n int) error {
	if n != RotorCount {
		return configError(field, "", fmt.Errorf("%w: want %d values, got %d", ErrInvalidConfigurationLength, RotorCount, n))
	}
	return nil
}

// Profile returns the profile the engine was built from.
func (e *Engine) Profile() *Profile { return e.profile }

// EncodeIndex steps the rotors and enciphers one letter index in [0,26).
func (e *Engine) EncodeIndex(x int) int {
	x = e.plugboard.Apply(alphabet.Mod(x))
	e.rotors.step()
	x = e.rotors.forward(x)
	x = e.reflector[x]
	x = e.rotors.backward(x)
	return e.plugboard.Apply(x)
}

// EncodeRune enciphers r if it is a letter. Non-letters return ok=false and
// leave the rotors untouched.
func (e *Engine) EncodeRune(r rune) (rune, bool) {
	x, ok := alphabet.Index(r)
	if !ok {
		return 0, false
	}
	return alphabet.Letter(e.EncodeIndex(x)), true
}

// Encode filters text to letters, upper-cases it and enciphers each letter,
// continuing from the current rotor state.
func (e *Engine) Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if c, ok := e.EncodeRune(r); ok {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// EncodeStream reads runes from r lazily and writes one ciphertext letter to w
// per input letter. It returns the number of letters written.
func (e *Engine) EncodeStream(r io.Reader, w io.Writer) (int, error) {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)
	n := 0
	for {
		c, _, err := in.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
		enc, ok := e.EncodeRune(c)
		if !ok {
			continue
		}
		if _, err := out.WriteRune(enc); err != nil {
			return n, err
		}
		n++
	}
	return n, out.Flush()
}

// Positions returns the current rotor window letters, left to right.
func (e *Engine) Positions() string {
	return alphabet.String(e.rotors.positions[:])
}

// Reset returns the rotors to the positions the engine was built with.
func (e *Engine) Reset() {
	e.rotors.positions = e.initial
}
