package types

// KeySheet is a named, stored Settings value.
type KeySheet struct {
	ID         SheetID   `json:"id" yaml:"id"`
	Name       SheetName `json:"name" yaml:"name"`
	Settings   Settings  `json:"settings" yaml:"settings"`
	CreatedUTC int64     `json:"created_utc" yaml:"created_utc"`
}
