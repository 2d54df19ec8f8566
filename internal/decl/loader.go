package decl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultVersion = "1"
	defaultKind    = "REAL64"
)

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read declaration file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
// Kinds cascade from file to routine to argument.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = defaultVersion
	}

	if f.Kind == "" {
		f.Kind = defaultKind
	}

	for i := range f.Routines {
		r := &f.Routines[i]
		if r.Kind == "" {
			r.Kind = f.Kind
		}

		for j := range r.Args {
			a := &r.Args[j]
			if a.Type == "" {
				a.Type = TypeReal
			}

			if a.Intent == "" {
				a.Intent = IntentIn
			}

			if a.Kind == "" && a.Type == TypeReal {
				a.Kind = r.Kind
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal declarations: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write declaration file %s: %w", path, err)
	}

	return nil
}
