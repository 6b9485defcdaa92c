// Package store provides file-based persistence for stored key sheets.
//
// Key sheets are kept in a single file, keysheets.enc, under the configured
// home directory. The file is a versioned JSON blob holding KDF parameters, a
// salt and a ChaCha20-Poly1305 ciphertext of the sheet map. Writes go through
// a temp file and rename so a crash never leaves a torn file behind. All
// methods are concurrency-safe via internal locking.
//
// Only configuration is stored. Rotor state after encoding is never written.
package store
