package theme

import "errors"

var (
	// ErrUnsupportedFormat indicates a theme file with an unknown extension.
	ErrUnsupportedFormat = errors.New("theme: unsupported file format")
	// ErrDecode indicates a theme document that does not match the schema.
	ErrDecode = errors.New("theme: decode failed")
	// ErrInvalidTheme indicates a field with an unusable value.
	ErrInvalidTheme = errors.New("theme: invalid theme")
)
