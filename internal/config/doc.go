// Package config turns the textual machine setup written by an operator into
// a validated machine.Configuration.
//
// Settings arrive from CLI flags, from YAML settings files or from stored key
// sheets. All three share the same grammar:
//
//	reflector  "B"
//	rotors     "I II III"     (space separated, left to right)
//	rings      "AAA"          (one letter per rotor)
//	positions  "AAA"          (one letter per rotor)
//	plugboard  "AB CD EF"     (or "none")
//
// Letters and labels are case-insensitive.
package config
