package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"enigma/internal/crypto"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{7}, crypto.SaltBytes)
	for _, kdf := range []string{crypto.KDFArgon2id, crypto.KDFScrypt} {
		p, err := crypto.DefaultKDFParams(kdf)
		if err != nil {
			t.Fatalf("DefaultKDFParams(%s): %v", kdf, err)
		}
		a, err := crypto.DeriveKey("pass", salt, p)
		if err != nil {
			t.Fatalf("%s: %v", kdf, err)
		}
		b, _ := crypto.DeriveKey("pass", salt, p)
		c, _ := crypto.DeriveKey("other", salt, p)
		if len(a) != crypto.KeyBytes || !bytes.Equal(a, b) || bytes.Equal(a, c) {
			t.Fatalf("%s: unexpected derivation", kdf)
		}
	}
	if _, err := crypto.DefaultKDFParams("md5"); err == nil {
		t.Fatal("expected unsupported kdf error")
	}
}

func TestKDFParams_Validate(t *testing.T) {
	for _, kdf := range []string{crypto.KDFArgon2id, crypto.KDFScrypt} {
		p, _ := crypto.DefaultKDFParams(kdf)
		if err := p.Validate(); err != nil {
			t.Fatalf("default %s: %v", kdf, err)
		}
	}
	bad := []crypto.KDFParams{
		{KDF: crypto.KDFArgon2id},
		{KDF: crypto.KDFArgon2id, Time: 1, MemoryKiB: 1024},
		{KDF: crypto.KDFArgon2id, Time: 1, MemoryKiB: 2 << 20, Threads: 1},
		{KDF: crypto.KDFArgon2id, Time: 1000, MemoryKiB: 1024, Threads: 1},
		{KDF: crypto.KDFScrypt, N: 1000, R: 8, P: 1},
		{KDF: crypto.KDFScrypt, N: 1 << 10, R: 0, P: 1},
		{KDF: crypto.KDFScrypt, N: 1 << 24, R: 8, P: 1},
		{KDF: "md5"},
	}
	salt := bytes.Repeat([]byte{7}, crypto.SaltBytes)
	for _, p := range bad {
		if err := p.Validate(); !errors.Is(err, crypto.ErrBadKDFParams) {
			t.Fatalf("Validate(%+v) = %v", p, err)
		}
		if _, err := crypto.DeriveKey("pass", salt, p); !errors.Is(err, crypto.ErrBadKDFParams) {
			t.Fatalf("DeriveKey(%+v) = %v", p, err)
		}
	}
}

func TestSealOpen(t *testing.T) {
	key := bytes.Repeat([]byte{1}, crypto.KeyBytes)
	ct, err := crypto.Seal(key, []byte("ANX"), []byte("ad"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	pt, err := crypto.Open(key, ct, []byte("ad"))
	if err != nil || string(pt) != "ANX" {
		t.Fatalf("Open = %q, %v", pt, err)
	}
	if _, err := crypto.Open(key, ct, []byte("other")); !errors.Is(err, crypto.ErrOpen) {
		t.Fatalf("wrong ad: err = %v", err)
	}
	ct[len(ct)-1] ^= 1
	if _, err := crypto.Open(key, ct, []byte("ad")); !errors.Is(err, crypto.ErrOpen) {
		t.Fatalf("tampered: err = %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	a := crypto.Fingerprint([]byte("enigma-i B I-II-III AAA AAA none"))
	if len(a) != 20 || a == crypto.Fingerprint([]byte("x")) {
		t.Fatalf("Fingerprint = %q", a)
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	crypto.Wipe(b)
	if !bytes.Equal(b, []byte{0, 0, 0}) {
		t.Fatalf("Wipe left %v", b)
	}
}
