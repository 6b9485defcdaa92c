package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/config"
	"enigma/internal/domain"
)

// settingsFlags collects the machine setup flags shared by encode and sheet save.
type settingsFlags struct {
	file      string
	profile   string
	reflector string
	rotors    string
	rings     string
	positions string
	plugboard string
}

func (f *settingsFlags) bind(cmd *cobra.Command) {
	d := config.Default()
	fl := cmd.Flags()
	fl.StringVar(&f.file, "config", "", "YAML settings file")
	fl.StringVar(&f.profile, "profile", d.Profile, "machine family (enigma-i, m3)")
	fl.StringVar(&f.reflector, "reflector", d.Reflector, "reflector label (A, B, C)")
	fl.StringVar(&f.rotors, "rotors", "I II III", "rotor labels left to right, e.g. \"IV III II\"")
	fl.StringVar(&f.rings, "rings", d.Rings, "ring settings, one letter per rotor")
	fl.StringVar(&f.positions, "positions", d.Positions, "initial positions, one letter per rotor")
	fl.StringVar(&f.plugboard, "plugboard", config.NoPlugboard, "up to 10 letter pairs, e.g. \"AB CD\", or none")
}

// apply overlays explicitly set flags onto base.
func (f *settingsFlags) apply(cmd *cobra.Command, base domain.Settings) domain.Settings {
	fl := cmd.Flags()
	if fl.Changed("profile") {
		base.Profile = f.profile
	}
	if fl.Changed("reflector") {
		base.Reflector = f.reflector
	}
	if fl.Changed("rotors") {
		base.Rotors = config.ParseRotors(f.rotors)
	}
	if fl.Changed("rings") {
		base.Rings = f.rings
	}
	if fl.Changed("positions") {
		base.Positions = f.positions
	}
	if fl.Changed("plugboard") {
		base.Plugboard = config.ParsePlugboard(f.plugboard)
	}
	return config.Normalize(base)
}

// resolve builds settings from --config (or the defaults) plus overrides.
func (f *settingsFlags) resolve(cmd *cobra.Command) (domain.Settings, error) {
	base := config.Default()
	if f.file != "" {
		s, err := config.LoadFile(f.file)
		if err != nil {
			return domain.Settings{}, err
		}
		base = s
	}
	s := f.apply(cmd, base)
	if err := config.Validate(s); err != nil {
		return domain.Settings{}, fmt.Errorf("machine settings: %w", err)
	}
	return s, nil
}
