// Package cipher runs messages through a freshly built rotor machine.
//
// Every call builds a new engine from the supplied settings, so encoding and
// decoding are the same operation and no rotor state leaks between messages.
package cipher
