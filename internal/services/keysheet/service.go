package keysheet

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"enigma/internal/config"
	"enigma/internal/domain"
)

var (
	// ErrSheetNotFound is returned when no key sheet has the requested name.
	ErrSheetNotFound = errors.New("key sheet not found")

	// ErrInvalidName is returned for an empty or whitespace-bearing name.
	ErrInvalidName = errors.New("key sheet name must be non-empty and contain no whitespace")
)

// Service stores and retrieves key sheets through a backing store.
type Service struct {
	store domain.KeySheetStore
	log   *log.Logger
	now   func() time.Time
}

// New returns a key sheet service backed by the given store. A nil logger
// discards output.
func New(s domain.KeySheetStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{store: s, log: logger, now: time.Now}
}

// SaveKeySheet validates settings and stores them under name, replacing any
// sheet with the same name. A replaced sheet keeps its ID and creation time.
func (s *Service) SaveKeySheet(
	passphrase string,
	name domain.SheetName,
	settings domain.Settings,
) (domain.KeySheet, error) {
	if err := checkName(name); err != nil {
		return domain.KeySheet{}, err
	}
	settings = config.Normalize(settings)
	if err := config.Validate(settings); err != nil {
		return domain.KeySheet{}, fmt.Errorf("key sheet %q: %w", name, err)
	}

	sheets, err := s.store.LoadKeySheets(passphrase)
	if err != nil {
		return domain.KeySheet{}, err
	}
	sheet := domain.KeySheet{
		ID:         domain.SheetID(uuid.NewString()),
		Name:       name,
		Settings:   settings,
		CreatedUTC: s.now().UTC().Unix(),
	}
	if prev, ok := sheets[name]; ok {
		sheet.ID = prev.ID
		sheet.CreatedUTC = prev.CreatedUTC
	}
	sheets[name] = sheet
	if err := s.store.SaveKeySheets(passphrase, sheets); err != nil {
		return domain.KeySheet{}, err
	}
	s.log.Printf("saved key sheet %s (%s)", name, sheet.ID)
	return sheet, nil
}

// LoadKeySheet returns the sheet stored under name.
func (s *Service) LoadKeySheet(passphrase string, name domain.SheetName) (domain.KeySheet, error) {
	sheets, err := s.store.LoadKeySheets(passphrase)
	if err != nil {
		return domain.KeySheet{}, err
	}
	sheet, ok := sheets[name]
	if !ok {
		return domain.KeySheet{}, fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	return sheet, nil
}

// ListKeySheets returns all sheets sorted by name.
func (s *Service) ListKeySheets(passphrase string) ([]domain.KeySheet, error) {
	sheets, err := s.store.LoadKeySheets(passphrase)
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeySheet, 0, len(sheets))
	for _, sheet := range sheets {
		out = append(out, sheet)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteKeySheet removes the sheet stored under name.
func (s *Service) DeleteKeySheet(passphrase string, name domain.SheetName) error {
	sheets, err := s.store.LoadKeySheets(passphrase)
	if err != nil {
		return err
	}
	if _, ok := sheets[name]; !ok {
		return fmt.Errorf("%w: %q", ErrSheetNotFound, name)
	}
	delete(sheets, name)
	if err := s.store.SaveKeySheets(passphrase, sheets); err != nil {
		return err
	}
	s.log.Printf("deleted key sheet %s", name)
	return nil
}

func checkName(name domain.SheetName) error {
	n := name.String()
	if n == "" || strings.IndexFunc(n, unicode.IsSpace) >= 0 {
		return ErrInvalidName
	}
	return nil
}

// Compile-time assertion that Service implements domain.KeySheetService.
var _ domain.KeySheetService = (*Service)(nil)
