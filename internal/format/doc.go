// Package format lays out cipher text for display in the traditional way:
// five-letter groups separated by spaces, five groups per line.
package format
