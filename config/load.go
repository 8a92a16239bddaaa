package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/refframe/frame"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Load reads, decodes and validates the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(b, format)
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidConfig, err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

var validate = validator.New()

// Validate checks the document structure and semantics without touching a
// graph: frame names and epochs parse, and every edge carries the parameters
// its type needs.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}

			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}

		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for i, r := range d.Roots {
		if _, err := frame.Parse(r); err != nil {
			return fmt.Errorf("%w: roots[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	for i, f := range d.Frames {
		where := fmt.Sprintf("frames[%d] %s", i, f.Name)
		if err := checkEndpoints(f.Parent, f.Name); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, where, err)
		}
		if err := checkEdge(f.Edge, f.Inverse); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, where, err)
		}
	}
	for i, l := range d.Links {
		where := fmt.Sprintf("links[%d] %s-%s", i, l.From, l.To)
		if err := checkEndpoints(l.From, l.To); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, where, err)
		}
		if err := checkEdge(l.Edge, l.Inverse); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, where, err)
		}
	}

	return nil
}

func checkEndpoints(names ...string) error {
	for _, n := range names {
		if _, err := frame.Parse(n); err != nil {
			return err
		}
	}

	return nil
}

func checkEdge(edge EdgeSpec, inverse *EdgeSpec) error {
	if err := edge.check(); err != nil {
		return fmt.Errorf("edge: %w", err)
	}
	if inverse != nil {
		if err := inverse.check(); err != nil {
			return fmt.Errorf("inverse: %w", err)
		}
	}

	return nil
}

// check validates the type-specific parameters.
func (s EdgeSpec) check() error {
	if s.ValidFrom != "" {
		from, err := parseEpoch("valid_from", s.ValidFrom)
		if err != nil {
			return err
		}
		to, err := parseEpoch("valid_to", s.ValidTo)
		if err != nil {
			return err
		}
		if to.Before(from) {
			return fmt.Errorf("valid_to %s is before valid_from %s", to, from)
		}
	}

	switch s.Type {
	case TypeRotation:
		if len(s.Axis) == 0 {
			return fmt.Errorf("%s edge needs an axis", s.Type)
		}
	case TypeTranslation:
		if len(s.Translation) == 0 {
			return fmt.Errorf("%s edge needs a translation", s.Type)
		}
	case TypeSpin:
		if len(s.Axis) == 0 {
			return fmt.Errorf("%s edge needs an axis", s.Type)
		}
		if _, err := parseEpoch("reference", s.Reference); err != nil {
			return err
		}
	case TypeHelmert:
		if s.Helmert == nil {
			return fmt.Errorf("%s edge needs helmert parameters", s.Type)
		}
		if s.Helmert.Reference != "" {
			if _, err := parseEpoch("reference", s.Helmert.Reference); err != nil {
				return err
			}
		}
	case TypeKinematic:
		if s.Kinematic == nil {
			return fmt.Errorf("%s edge needs kinematic parameters", s.Type)
		}
	}

	return nil
}
