package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"enigma/internal/crypto"
	"enigma/internal/domain"
)

const keySheetsFile = "keysheets.enc"

// KeySheetFileStore persists key sheets encrypted under a passphrase.
type KeySheetFileStore struct {
	dir    string
	params crypto.KDFParams
	mu     sync.Mutex
}

// NewKeySheetFileStore returns a KeySheetFileStore rooted at dir that seals
// new writes with params.
func NewKeySheetFileStore(dir string, params crypto.KDFParams) *KeySheetFileStore {
	return &KeySheetFileStore{dir: dir, params: params}
}

// SaveKeySheets replaces the stored sheet map.
func (s *KeySheetFileStore) SaveKeySheets(
	passphrase string,
	sheets map[domain.SheetName]domain.KeySheet,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sheets)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)

	b, err := encrypt(passphrase, raw, s.params)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, keySheetsFile), b, 0o600)
}

// LoadKeySheets returns the stored sheet map; a missing file yields an empty map.
func (s *KeySheetFileStore) LoadKeySheets(
	passphrase string,
) (map[domain.SheetName]domain.KeySheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheets := make(map[domain.SheetName]domain.KeySheet)
	b, err := readFile(filepath.Join(s.dir, keySheetsFile))
	if err != nil || b == nil {
		return sheets, err
	}
	raw, err := decrypt(passphrase, b)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(raw)

	if err := json.Unmarshal(raw, &sheets); err != nil {
		return nil, err
	}
	return sheets, nil
}

// Compile-time assertion that KeySheetFileStore implements domain.KeySheetStore.
var _ domain.KeySheetStore = (*KeySheetFileStore)(nil)
