package config

import (
	"errors"
	"fmt"
	"strings"

	"enigma/internal/alphabet"
	"enigma/internal/domain"
	"enigma/internal/machine"
)

// NoPlugboard is the sentinel meaning "no plugboard pairs".
const NoPlugboard = "none"

// ErrInvalidSetting indicates a ring or position string containing non-letters.
var ErrInvalidSetting = errors.New("invalid setting")

// Default returns the settings used when the operator supplies nothing.
func Default() domain.Settings {
	return domain.Settings{
		Profile:   machine.ProfileEnigmaI,
		Reflector: "B",
		Rotors:    []string{"I", "II", "III"},
		Rings:     "AAA",
		Positions: "AAA",
	}
}

// ParseRotors splits "I II III" into labels.
func ParseRotors(s string) []string {
	return strings.Fields(s)
}

// ParsePlugboard splits "AB CD" into pairs. The empty string and "none"
// (any case) yield no pairs.
func ParsePlugboard(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, NoPlugboard) {
		return nil
	}
	return strings.Fields(s)
}

// Normalize upper-cases labels and letters and fills an empty profile name.
func Normalize(s domain.Settings) domain.Settings {
	out := domain.Settings{
		Profile:   strings.ToLower(strings.TrimSpace(s.Profile)),
		Reflector: strings.ToUpper(strings.TrimSpace(s.Reflector)),
		Rings:     strings.ToUpper(strings.TrimSpace(s.Rings)),
		Positions: strings.ToUpper(strings.TrimSpace(s.Positions)),
	}
	if out.Profile == "" {
		out.Profile = machine.ProfileEnigmaI
	}
	for _, r := range s.Rotors {
		out.Rotors = append(out.Rotors, strings.ToUpper(strings.TrimSpace(r)))
	}
	for _, p := range s.Plugboard {
		out.Plugboard = append(out.Plugboard, strings.ToUpper(strings.TrimSpace(p)))
	}
	return out
}

// Canonical renders settings as one stable line, e.g.
// "enigma-i B I-II-III AAA AAA AB.CD". Equal setups give equal strings.
func Canonical(s domain.Settings) string {
	n := Normalize(s)
	plug := NoPlugboard
	if len(n.Plugboard) > 0 {
		plug = strings.Join(n.Plugboard, ".")
	}
	return strings.Join([]string{
		n.Profile,
		n.Reflector,
		strings.Join(n.Rotors, "-"),
		n.Rings,
		n.Positions,
		plug,
	}, " ")
}

// Resolve looks up the profile and converts s into a machine.Configuration.
func Resolve(s domain.Settings) (*machine.Profile, machine.Configuration, error) {
	profile, err := machine.LookupProfile(s.Profile)
	if err != nil {
		return nil, machine.Configuration{}, err
	}
	rings, err := letters("rings", s.Rings)
	if err != nil {
		return nil, machine.Configuration{}, err
	}
	positions, err := letters("positions", s.Positions)
	if err != nil {
		return nil, machine.Configuration{}, err
	}
	return profile, machine.Configuration{
		Rotors:       append([]string(nil), s.Rotors...),
		RingSettings: rings,
		Positions:    positions,
		Reflector:    s.Reflector,
		Plugboard:    append([]string(nil), s.Plugboard...),
	}, nil
}

func letters(field, s string) ([]int, error) {
	idx, err := alphabet.Indices(strings.TrimSpace(s))
	if err != nil {
		return nil, &machine.ConfigError{Field: field, Value: s, Err: fmt.Errorf("%w: %v", ErrInvalidSetting, err)}
	}
	return idx, nil
}

// NewEngine validates s and builds an engine at its initial positions.
func NewEngine(s domain.Settings) (*machine.Engine, error) {
	profile, cfg, err := Resolve(s)
	if err != nil {
		return nil, err
	}
	return machine.New(profile, cfg)
}

// Validate reports whether s would build an engine.
func Validate(s domain.Settings) error {
	_, err := NewEngine(s)
	return err
}
