package declaration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses and validates a declaration file.
func Load(path string) (*Declaration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file: %w", err)
	}
	decl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decl, nil
}

// Parse unmarshals a YAML declaration, applies defaults and validates.
func Parse(data []byte) (*Declaration, error) {
	var decl Declaration
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return nil, fmt.Errorf("failed to parse YAML declaration: %w", err)
	}
	decl.applyDefaults()
	if err := decl.Validate(); err != nil {
		return nil, fmt.Errorf("declaration validation failed: %w", err)
	}
	return &decl, nil
}

// Marshal renders the declaration back to YAML, for storage snapshots.
func (d *Declaration) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal declaration: %w", err)
	}
	return data, nil
}
