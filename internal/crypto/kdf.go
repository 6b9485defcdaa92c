package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	KeyBytes  = chacha20poly1305.KeySize
	SaltBytes = 16
)

// Cost ceilings accepted from stored parameters.
const (
	maxKDFMemoryBytes = 1 << 30
	maxArgon2Time     = 64
	maxScryptP        = 16
)

// ErrBadKDFParams is returned for KDF parameters outside the accepted range.
var ErrBadKDFParams = errors.New("bad kdf parameters")

// Supported key derivation functions.
const (
	KDFArgon2id = "argon2id"
	KDFScrypt   = "scrypt"
)

// KDFParams selects a key derivation function and its cost. For scrypt, N, R
// and P are the usual parameters; for Argon2id, Time, MemoryKiB and Threads.
type KDFParams struct {
	KDF       string `json:"kdf"`
	N         int    `json:"scrypt_N,omitempty"`
	R         int    `json:"scrypt_r,omitempty"`
	P         int    `json:"scrypt_p,omitempty"`
	Time      uint32 `json:"argon2_t,omitempty"`
	MemoryKiB uint32 `json:"argon2_m,omitempty"`
	Threads   uint8  `json:"argon2_p,omitempty"`
}

// DefaultKDFParams returns the tunables used for new blobs.
func DefaultKDFParams(kdf string) (KDFParams, error) {
	switch kdf {
	case "", KDFArgon2id:
		return KDFParams{KDF: KDFArgon2id, Time: 1, MemoryKiB: 64 * 1024, Threads: 4}, nil
	case KDFScrypt:
		return KDFParams{KDF: KDFScrypt, N: 1 << 15, R: 8, P: 1}, nil
	}
	return KDFParams{}, fmt.Errorf("unsupported kdf %q", kdf)
}

// Validate reports whether p names a supported KDF with a cost that is
// usable and bounded to at most 1 GiB of memory.
func (p KDFParams) Validate() error {
	switch p.KDF {
	case KDFArgon2id:
		switch {
		case p.Time < 1 || p.Time > maxArgon2Time:
			return fmt.Errorf("%w: argon2 time %d", ErrBadKDFParams, p.Time)
		case p.Threads < 1:
			return fmt.Errorf("%w: argon2 threads %d", ErrBadKDFParams, p.Threads)
		case p.MemoryKiB < 8*uint32(p.Threads) || uint64(p.MemoryKiB)*1024 > maxKDFMemoryBytes:
			return fmt.Errorf("%w: argon2 memory %d KiB", ErrBadKDFParams, p.MemoryKiB)
		}
		return nil
	case KDFScrypt:
		switch {
		case p.N < 2 || p.N&(p.N-1) != 0:
			return fmt.Errorf("%w: scrypt N %d", ErrBadKDFParams, p.N)
		case p.R < 1 || p.P < 1 || p.P > maxScryptP:
			return fmt.Errorf("%w: scrypt r %d p %d", ErrBadKDFParams, p.R, p.P)
		case uint64(p.N)*uint64(p.R) > maxKDFMemoryBytes/128:
			return fmt.Errorf("%w: scrypt memory N=%d r=%d", ErrBadKDFParams, p.N, p.R)
		}
		return nil
	}
	return fmt.Errorf("%w: unsupported kdf %q", ErrBadKDFParams, p.KDF)
}

// NewSalt returns SaltBytes of randomness.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey stretches passphrase into a KeyBytes key.
func DeriveKey(passphrase string, salt []byte, p KDFParams) ([]byte, error) {
	if len(salt) != SaltBytes {
		return nil, fmt.Errorf("bad salt size %d", len(salt))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.KDF == KDFArgon2id {
		return argon2.IDKey([]byte(passphrase), salt, p.Time, p.MemoryKiB, p.Threads, KeyBytes), nil
	}
	return scrypt.Key([]byte(passphrase), salt, p.N, p.R, p.P, KeyBytes)
}
