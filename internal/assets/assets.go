// Package assets provides the site stylesheet, embedded or overridden from disk.
package assets

import "fmt"

// DefaultStyle is the stylesheet published as css/styles.css.
const DefaultStyle = "default"

// AssetLoader returns a stylesheet by name, without the .css extension.
// Missing styles report ErrStyleNotFound and unsafe names ErrInvalidAssetName.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
}

// ValidateAssetName accepts names made of ASCII letters, digits, '-' and '_'.
// Anything else could address a file outside styles/ or change its extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
		}
	}
	return nil
}
