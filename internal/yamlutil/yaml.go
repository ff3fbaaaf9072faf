// Package yamlutil decodes the two YAML inputs of a site: the configuration
// file, which must not carry unknown keys, and front-matter blocks, which may.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps a single YAML document (1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes a configuration document. Empty input and unknown
// fields are errors.
func UnmarshalStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	return decode(data, v, "yamlutil", yaml.Strict())
}

// UnmarshalFrontMatter decodes a front-matter block. An empty block is valid
// and leaves v untouched.
func UnmarshalFrontMatter(data []byte, v any) error {
	if v == nil {
		return ErrNilDestination
	}
	if len(data) == 0 {
		return nil
	}
	return decode(data, v, "yamlutil: front matter")
}

func decode(data []byte, v any, prefix string, opts ...yaml.DecodeOption) error {
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	return nil
}
