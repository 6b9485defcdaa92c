package interfaces

import domaintypes "enigma/internal/domain/types"

// KeySheetStore persists key sheets encrypted under a passphrase.
type KeySheetStore interface {
	SaveKeySheets(passphrase string, sheets map[domaintypes.SheetName]domaintypes.KeySheet) error
	LoadKeySheets(passphrase string) (map[domaintypes.SheetName]domaintypes.KeySheet, error)
}
