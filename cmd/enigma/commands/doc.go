// Package commands defines the enigma CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encode (decode)  Encipher text; deciphering is the same operation
//   - profiles         List machine families, rotors and reflectors
//   - sheet save       Store named settings encrypted under a passphrase
//   - sheet list       List stored key sheets
//   - sheet show       Print one key sheet (optionally as YAML)
//   - sheet delete     Remove a key sheet
//
// # Implementation
//
// The root command builds the dependency graph (key sheet store, services,
// logger) before any subcommand runs. Machine settings come from a stored key
// sheet (--sheet), a YAML file (--config) or the defaults, and individual
// flags such as --positions override whichever base was chosen.
package commands
