// Package app wires application dependencies for the CLI.
//
// It builds the key sheet store, the services and the logger from Config,
// exposing them via the Wire struct for commands to use.
package app
