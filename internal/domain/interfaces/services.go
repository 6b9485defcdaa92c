package interfaces

import (
	"io"

	domaintypes "enigma/internal/domain/types"
)

// KeySheetService creates, retrieves and removes named key sheets.
type KeySheetService interface {
	SaveKeySheet(
		passphrase string,
		name domaintypes.SheetName,
		settings domaintypes.Settings,
	) (domaintypes.KeySheet, error)
	LoadKeySheet(passphrase string, name domaintypes.SheetName) (domaintypes.KeySheet, error)
	ListKeySheets(passphrase string) ([]domaintypes.KeySheet, error)
	DeleteKeySheet(passphrase string, name domaintypes.SheetName) error
}

// CipherService runs text through a freshly built machine.
type CipherService interface {
	Encode(settings domaintypes.Settings, text string) (domaintypes.EncodeResult, error)
	EncodeStream(settings domaintypes.Settings, r io.Reader, w io.Writer) (domaintypes.EncodeResult, error)
}
