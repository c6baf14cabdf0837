package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a theme from path, picking the decoder by extension.
func LoadFile(path string) (Theme, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".hcl":
	default:
		return Theme{}, fmt.Errorf("theme: %s: %w", path, ErrUnsupportedFormat)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	if ext == ".hcl" {
		return LoadHCL(path, src)
	}

	return LoadYAML(bytes.NewReader(src))
}

// LoadYAML decodes a YAML theme. Unknown fields are rejected; an empty
// document yields the zero Theme, which resolves to the defaults.
func LoadYAML(r io.Reader) (Theme, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Theme
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return Theme{}, nil
		}

		return Theme{}, fmt.Errorf("%w: yaml: %v", ErrDecode, err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}

	return t, nil
}
