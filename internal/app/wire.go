package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"enigma/internal/crypto"
	"enigma/internal/domain"
	ciphersvc "enigma/internal/services/cipher"
	keysheetsvc "enigma/internal/services/keysheet"
	"enigma/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	KeySheets domain.KeySheetService
	Cipher    domain.CipherService
	Log       *log.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	out := io.Discard
	if cfg.Verbose {
		out = cfg.LogOut
		if out == nil {
			out = os.Stderr
		}
	}
	logger := log.New(out, "enigma: ", 0)

	params, err := crypto.DefaultKDFParams(cfg.KDF)
	if err != nil {
		return nil, fmt.Errorf("key sheet store: %w", err)
	}
	sheets := store.NewKeySheetFileStore(cfg.Home, params)

	return &Wire{
		KeySheets: keysheetsvc.New(sheets, logger),
		Cipher:    ciphersvc.New(logger),
		Log:       logger,
	}, nil
}
