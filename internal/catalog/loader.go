package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed names.yaml
var defaultDataset []byte

type dataset struct {
	Names []NameRecord `yaml:"names"`
}

// LoadFile reads a catalog YAML file. An empty path loads the embedded dataset.
func LoadFile(path string) ([]NameRecord, error) {
	if path == "" {
		return Parse(defaultDataset)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document. Unknown fields are
// rejected so typos in the data file surface at startup.
func Parse(data []byte) ([]NameRecord, error) {
	var ds dataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[Key]struct{}, len(ds.Names))
	for i, r := range ds.Names {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[r.Key()]; dup {
			return nil, fmt.Errorf("entry %d: %w: duplicate name %q (%s)", i, ErrValidationFailed, r.EnglishName, r.Gender)
		}
		seen[r.Key()] = struct{}{}
	}
	return ds.Names, nil
}
