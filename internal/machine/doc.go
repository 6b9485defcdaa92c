// Package machine implements a three-rotor Enigma cipher engine.
//
// A Profile describes one machine family: its rotor catalog, reflector
// catalog and stepping rule. Two profiles are built in:
//
//   - EnigmaI  rotors I–V, reflectors A/B/C, single-notch odometer stepping
//   - M3       rotors I–VIII, reflectors B/C, double-step stepping
//
// An Engine is built from a Profile and a Configuration and encodes one letter
// at a time. Each letter first advances the rotor stack, then the signal runs
// plugboard → rotors right to left → reflector → rotors left to right →
// plugboard. Encoding is reciprocal: a fresh Engine with the same
// Configuration turns ciphertext back into plaintext.
//
// # Concurrency
//
// An Engine holds mutable rotor state and must not be shared between
// goroutines. Profiles are immutable and safe to share.
package machine
