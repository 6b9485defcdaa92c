package machine

import (
	"errors"
	"fmt"
)

// Sentinel errors for machine construction. ConfigError wraps one of these.
var (
	// ErrUnknownComponent indicates a rotor or reflector label missing from the profile.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrInvalidConfigurationLength indicates a setting without exactly one value per rotor.
	ErrInvalidConfigurationLength = errors.New("invalid configuration length")

	// ErrInvalidPlugboardPair indicates a malformed, overlapping or excess plugboard pair.
	ErrInvalidPlugboardPair = errors.New("invalid plugboard pair")

	// ErrUnknownProfile indicates a profile name not present in the registry.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrInvalidWiring indicates catalog data that is not a valid permutation.
	ErrInvalidWiring = errors.New("invalid wiring")
)

// ConfigError reports which part of a configuration was rejected.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func configError(field, value string, err error) *ConfigError {
	return &ConfigError{Field: field, Value: value, Err: err}
}
