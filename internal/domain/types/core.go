package types

// SheetName is the operator-chosen name of a stored key sheet.
type SheetName string

// String returns the string form of the name.
func (n SheetName) String() string { return string(n) }

// SheetID uniquely identifies a stored key sheet.
type SheetID string

// String returns the string form of the identifier.
func (id SheetID) String() string { return string(id) }

// Fingerprint is a short identifier for a machine setting presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
