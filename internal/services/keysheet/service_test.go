package keysheet

import (
	"errors"
	"testing"
	"time"

	"enigma/internal/domain"
	"enigma/internal/machine"
)

// memStore is an in-memory domain.KeySheetStore keyed by passphrase.
type memStore struct {
	data map[string]map[domain.SheetName]domain.KeySheet
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]map[domain.SheetName]domain.KeySheet)}
}

func (m *memStore) SaveKeySheets(pass string, sheets map[domain.SheetName]domain.KeySheet) error {
	cp := make(map[domain.SheetName]domain.KeySheet, len(sheets))
	for k, v := range sheets {
		cp[k] = v
	}
	m.data[pass] = cp
	return nil
}

func (m *memStore) LoadKeySheets(pass string) (map[domain.SheetName]domain.KeySheet, error) {
	out := make(map[domain.SheetName]domain.KeySheet)
	for k, v := range m.data[pass] {
		out[k] = v
	}
	return out, nil
}

func newTestService() *Service {
	s := New(newMemStore(), nil)
	s.now = func() time.Time { return time.Unix(1000, 0) }
	return s
}

func settings() domain.Settings {
	return domain.Settings{
		Profile:   "m3",
		Reflector: "c",
		Rotors:    []string{"vi", "ii", "v"},
		Rings:     "abc",
		Positions: "zzz",
		Plugboard: []string{"qw"},
	}
}

func TestSaveLoadList(t *testing.T) {
	s := newTestService()
	saved, err := s.SaveKeySheet("pw", "day-2", settings())
	if err != nil {
		t.Fatalf("SaveKeySheet: %v", err)
	}
	if saved.ID == "" || saved.CreatedUTC != 1000 {
		t.Fatalf("saved = %+v", saved)
	}
	if saved.Settings.Reflector != "C" || saved.Settings.Rotors[0] != "VI" {
		t.Fatalf("settings not normalized: %+v", saved.Settings)
	}
	if _, err := s.SaveKeySheet("pw", "day-1", settings()); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadKeySheet("pw", "day-2")
	if err != nil || got.ID != saved.ID {
		t.Fatalf("LoadKeySheet = %+v, %v", got, err)
	}

	list, err := s.ListKeySheets("pw")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != "day-1" || list[1].Name != "day-2" {
		t.Fatalf("ListKeySheets = %+v", list)
	}
}

func TestSaveKeepsIDOnReplace(t *testing.T) {
	s := newTestService()
	first, _ := s.SaveKeySheet("pw", "x", settings())
	next := settings()
	next.Positions = "AAA"
	s.now = func() time.Time { return time.Unix(2000, 0) }
	second, err := s.SaveKeySheet("pw", "x", next)
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID || second.Settings.Positions != "AAA" || second.CreatedUTC != 1000 {
		t.Fatalf("first %+v second %+v", first, second)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := newTestService()
	bad := settings()
	bad.Reflector = "A"
	if _, err := s.SaveKeySheet("pw", "x", bad); !errors.Is(err, machine.ErrUnknownComponent) {
		t.Fatalf("err = %v", err)
	}
	for _, name := range []domain.SheetName{"", "two words", "tab\there", "nbsp\u00a0name", "line\rbreak"} {
		if _, err := s.SaveKeySheet("pw", name, settings()); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("name %q: err = %v", name, err)
		}
	}
}

func TestDeleteAndNotFound(t *testing.T) {
	s := newTestService()
	if _, err := s.SaveKeySheet("pw", "x", settings()); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteKeySheet("pw", "x"); err != nil {
		t.Fatalf("DeleteKeySheet: %v", err)
	}
	if _, err := s.LoadKeySheet("pw", "x"); !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("load after delete: %v", err)
	}
	if err := s.DeleteKeySheet("pw", "x"); !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}
