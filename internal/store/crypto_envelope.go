package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"enigma/internal/crypto"
)

const (
	// The current supported version of the encrypted blob format stored on disk.
	keystoreFormatVersion = 1
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// ciphertext has been modified or corrupted.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key sheet file")

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int              `json:"v"`
	KDF    crypto.KDFParams `json:"kdf"`
	Salt   []byte           `json:"salt"`
	Cipher []byte           `json:"cipher"`
}

// encrypt derives a key from passphrase and seals raw into a JSON blob.
func encrypt(passphrase string, raw []byte, params crypto.KDFParams) ([]byte, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}
	key, err := crypto.DeriveKey(passphrase, salt, params)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	ct, err := crypto.Seal(key, raw, salt)
	if err != nil {
		return nil, err
	}
	return json.Marshal(blob{
		V:      keystoreFormatVersion,
		KDF:    params,
		Salt:   salt,
		Cipher: ct,
	})
}

// decrypt opens the JSON blob using a key derived from passphrase.
func decrypt(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}
	if bl.V > keystoreFormatVersion {
		return nil, fmt.Errorf("unsupported key sheet file version %d", bl.V)
	}
	key, err := crypto.DeriveKey(passphrase, bl.Salt, bl.KDF)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}
	defer crypto.Wipe(key)

	pt, err := crypto.Open(key, bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}
