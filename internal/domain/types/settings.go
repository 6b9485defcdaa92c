package types

// Settings is the textual machine setup as an operator writes it down:
// profile name, reflector label, rotor labels left to right, ring and
// position letters (one per rotor) and plugboard pairs.
type Settings struct {
	Profile   string   `json:"profile" yaml:"profile"`
	Reflector string   `json:"reflector" yaml:"reflector"`
	Rotors    []string `json:"rotors" yaml:"rotors"`
	Rings     string   `json:"rings" yaml:"rings"`
	Positions string   `json:"positions" yaml:"positions"`
	Plugboard []string `json:"plugboard,omitempty" yaml:"plugboard,omitempty"`
}
