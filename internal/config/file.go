package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"enigma/internal/domain"
)

// FromYAML decodes a settings document and validates it. Unknown keys are
// rejected so a typo does not silently fall back to a default.
func FromYAML(data []byte) (domain.Settings, error) {
	var s domain.Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return domain.Settings{}, fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	s = Normalize(s)
	if err := Validate(s); err != nil {
		return domain.Settings{}, fmt.Errorf("settings are invalid: %w", err)
	}
	return s, nil
}

// ToYAML validates s and encodes it as a settings document.
func ToYAML(s domain.Settings) ([]byte, error) {
	s = Normalize(s)
	if err := Validate(s); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid settings: %w", err)
	}
	return yaml.Marshal(s)
}

// LoadFile reads and validates a YAML settings file.
func LoadFile(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Settings{}, err
	}
	s, err := FromYAML(data)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
