package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home    string    // config directory, e.g. $HOME/.enigma
	KDF     string    // key derivation for newly written key sheet files: argon2id or scrypt
	Verbose bool      // log progress to LogOut
	LogOut  io.Writer // optional; defaults to io.Discard unless Verbose
}
