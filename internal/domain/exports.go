package domain

import (
	interfaces "enigma/internal/domain/interfaces"
	types "enigma/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SheetName    = types.SheetName
	SheetID      = types.SheetID
	Fingerprint  = types.Fingerprint
	Settings     = types.Settings
	KeySheet     = types.KeySheet
	EncodeResult = types.EncodeResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeySheetStore   = interfaces.KeySheetStore
	KeySheetService = interfaces.KeySheetService
	CipherService   = interfaces.CipherService
)
