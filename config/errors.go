package config

import "errors"

var (
	// ErrInvalidConfig indicates a document that failed validation.
	ErrInvalidConfig = errors.New("config: invalid document")

	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
)
