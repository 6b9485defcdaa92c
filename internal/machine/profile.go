package machine

import (
	"fmt"
	"sort"
	"strings"

	"enigma/internal/alphabet"
)

// RotorCount is the number of rotor slots in both modeled machine families.
const RotorCount = 3

// SteppingRule selects how the rotor stack advances before each letter.
type SteppingRule int

const (
	// SingleNotch is odometer stepping: a rotor carries into its left
	// neighbour only when it advances off a notch.
	SingleNotch SteppingRule = iota
	// DoubleStep reproduces the middle rotor double-step anomaly.
	DoubleStep
)

func (r SteppingRule) String() string {
	switch r {
	case SingleNotch:
		return "single-notch"
	case DoubleStep:
		return "double-step"
	default:
		return fmt.Sprintf("SteppingRule(%d)", int(r))
	}
}

// RotorDef is catalog input for one rotor.
type RotorDef struct {
	Label   string
	Wiring  string // 26 letters, A maps to Wiring[0]
	Notches string // letters on which the rotor carries, e.g. "Q" or "MZ"
}

// ReflectorDef is catalog input for one reflector.
type ReflectorDef struct {
	Label  string
	Wiring string
}

// RotorSpec is a validated rotor catalog entry.
type RotorSpec struct {
	Label   string
	Wiring  [alphabet.Size]int
	Notches []int
}

// Profile is an immutable machine family: catalogs plus stepping rule.
type Profile struct {
	name       string
	rule       SteppingRule
	rotors     map[string]RotorSpec
	rotorOrder []string
	reflectors map[string][alphabet.Size]int
	reflOrder  []string
}

// NewProfile validates the catalogs and returns a Profile. Every rotor wiring
// must be a bijection; every reflector must also be a fixed-point-free
// involution.
func NewProfile(name string, rule SteppingRule, rotors []RotorDef, reflectors []ReflectorDef) (*Profile, error) {
	p := &Profile{
		name:       name,
		rule:       rule,
		rotors:     make(map[string]RotorSpec, len(rotors)),
		reflectors: make(map[string][alphabet.Size]int, len(reflectors)),
	}
	for _, d := range rotors {
		label := normalizeLabel(d.Label)
		perm, err := alphabet.Permutation(d.Wiring)
		if err != nil {
			return nil, fmt.Errorf("rotor %s: %w: %v", label, ErrInvalidWiring, err)
		}
		if !isBijection(perm) {
			return nil, fmt.Errorf("rotor %s: %w: not a bijection", label, ErrInvalidWiring)
		}
		notches, err := alphabet.Indices(d.Notches)
		if err != nil {
			return nil, fmt.Errorf("rotor %s notches: %w: %v", label, ErrInvalidWiring, err)
		}
		p.rotors[label] = RotorSpec{Label: label, Wiring: perm, Notches: notches}
		p.rotorOrder = append(p.rotorOrder, label)
	}
	for _, d := range reflectors {
		label := normalizeLabel(d.Label)
		perm, err := alphabet.Permutation(d.Wiring)
		if err != nil {
			return nil, fmt.Errorf("reflector %s: %w: %v", label, ErrInvalidWiring, err)
		}
		if !isReflection(perm) {
			return nil, fmt.Errorf("reflector %s: %w: not a fixed-point-free involution", label, ErrInvalidWiring)
		}
		p.reflectors[label] = perm
		p.reflOrder = append(p.reflOrder, label)
	}
	return p, nil
}

// Name returns the registry name of the profile.
func (p *Profile) Name() string { return p.name }

// Rule returns the stepping rule.
func (p *Profile) Rule() SteppingRule { return p.rule }

// RotorLabels lists rotor labels in catalog order.
func (p *Profile) RotorLabels() []string { return append([]string(nil), p.rotorOrder...) }

// ReflectorLabels lists reflector labels in catalog order.
func (p *Profile) ReflectorLabels() []string { return append([]string(nil), p.reflOrder...) }

// Rotor looks up a rotor by label, ignoring case.
func (p *Profile) Rotor(label string) (RotorSpec, error) {
	spec, ok := p.rotors[normalizeLabel(label)]
	if !ok {
		return RotorSpec{}, configError("rotor", label, fmt.Errorf("%w: not in profile %s", ErrUnknownComponent, p.name))
	}
	spec.Notches = append([]int(nil), spec.Notches...)
	return spec, nil
}

// Reflector looks up a reflector by label, ignoring case.
func (p *Profile) Reflector(label string) ([alphabet.Size]int, error) {
	perm, ok := p.reflectors[normalizeLabel(label)]
	if !ok {
		return perm, configError("reflector", label, fmt.Errorf("%w: not in profile %s", ErrUnknownComponent, p.name))
	}
	return perm, nil
}

func normalizeLabel(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func isBijection(perm [alphabet.Size]int) bool {
	var seen [alphabet.Size]bool
	for _, v := range perm {
		if v < 0 || v >= alphabet.Size || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func isReflection(perm [alphabet.Size]int) bool {
	if !isBijection(perm) {
		return false
	}
	for i, v := range perm {
		if v == i || perm[v] != i {
			return false
		}
	}
	return true
}

// Historical wirings shared by both families.
var (
	rotorI    = RotorDef{Label: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notches: "Q"}
	rotorII   = RotorDef{Label: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notches: "E"}
	rotorIII  = RotorDef{Label: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notches: "V"}
	rotorIV   = RotorDef{Label: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notches: "J"}
	rotorV    = RotorDef{Label: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notches: "Z"}
	rotorVI   = RotorDef{Label: "VI", Wiring: "JPGVOUMFYQBENHZRDKASXLICTW", Notches: "MZ"}
	rotorVII  = RotorDef{Label: "VII", Wiring: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Notches: "MZ"}
	rotorVIII = RotorDef{Label: "VIII", Wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Notches: "MZ"}

	reflectorA = ReflectorDef{Label: "A", Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"}
	reflectorB = ReflectorDef{Label: "B", Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"}
	reflectorC = ReflectorDef{Label: "C", Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"}
)

// Registry names of the built-in profiles.
const (
	ProfileEnigmaI = "enigma-i"
	ProfileM3      = "m3"
)

var (
	enigmaI = mustProfile(NewProfile(ProfileEnigmaI, SingleNotch,
		[]RotorDef{rotorI, rotorII, rotorIII, rotorIV, rotorV},
		[]ReflectorDef{reflectorA, reflectorB, reflectorC},
	))
	m3 = mustProfile(NewProfile(ProfileM3, DoubleStep,
		[]RotorDef{rotorI, rotorII, rotorIII, rotorIV, rotorV, rotorVI, rotorVII, rotorVIII},
		[]ReflectorDef{reflectorB, reflectorC},
	))
)

func mustProfile(p *Profile, err error) *Profile {
	if err != nil {
		panic(err)
	}
	return p
}

// EnigmaI returns the 3-of-5 single-notch profile.
func EnigmaI() *Profile { return enigmaI }

// M3 returns the 3-of-8 profile with multi-notch rotors VI–VIII.
func M3() *Profile { return m3 }

// Profiles returns the built-in profiles sorted by name.
func Profiles() []*Profile {
	out := []*Profile{enigmaI, m3}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// LookupProfile returns the built-in profile with the given name, ignoring
// case. An empty name selects EnigmaI.
func LookupProfile(name string) (*Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProfileEnigmaI, "i", "enigmai":
		return enigmaI, nil
	case ProfileM3:
		return m3, nil
	}
	return nil, configError("profile", name, ErrUnknownProfile)
}
