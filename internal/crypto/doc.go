// Package crypto exposes the minimal primitives used to protect key sheets.
//
// Contents
//
//   - Passphrase key derivation with Argon2id or scrypt (DeriveKey)
//   - ChaCha20-Poly1305 sealing with random nonces (Seal, Open)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short fingerprints of machine settings for display/logging (Fingerprint)
//
// # Notes
//
// None of this is involved in enciphering letters; the rotor machine lives in
// internal/machine. Keys returned by DeriveKey are sensitive and should be
// wiped once the AEAD has been constructed.
package crypto
