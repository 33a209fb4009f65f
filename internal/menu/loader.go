package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type menuFile struct {
	Days []Day `yaml:"days"`
}

// LoadFile reads a YAML menu once at startup.
func LoadFile(path string) (*Catalog, error) {
	if err := ValidateFileExtension(path); err != nil {
		return nil, fmt.Errorf("menu file %s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(raw)
}

// Parse builds a catalog from YAML bytes.
func Parse(raw []byte) (*Catalog, error) {
	var doc menuFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid menu yaml: %w", err)
	}

	if err := ValidateDays(doc.Days); err != nil {
		return nil, err
	}

	return NewCatalog(doc.Days), nil
}
