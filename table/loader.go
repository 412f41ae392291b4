package table

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlTableFile is the top-level YAML structure for table files.
type yamlTableFile struct {
	Table Table `yaml:"table"`
}

// LoadFromFile reads and validates a single table YAML file.
//
// Precondition: path must point to a valid YAML table file.
// Postcondition: returns a validated Table or a non-nil error.
func LoadFromFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading table file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates a table from YAML bytes. Quantity
// bounds left at zero default to 1 before validation.
//
// Precondition: data must be valid YAML conforming to the table schema.
// Postcondition: returns a validated Table or a non-nil error.
func LoadFromBytes(data []byte) (*Table, error) {
	var file yamlTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing table YAML: %w", err)
	}

	t := file.Table
	for i := range t.Entries {
		if t.Entries[i].MinQty == 0 && t.Entries[i].MaxQty == 0 {
			t.Entries[i].MinQty = 1
			t.Entries[i].MaxQty = 1
		}
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validating table: %w", err)
	}
	return &t, nil
}
