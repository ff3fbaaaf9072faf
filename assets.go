package portfolio

import (
	"errors"

	"github.com/matiasglessi/portfolio/internal/assets"
)

// DefaultStyle is the name of the built-in site stylesheet.
const DefaultStyle = assets.DefaultStyle

// AssetLoader defines the contract for loading the site stylesheet.
// Implementations may load from the filesystem, embedded assets or anything
// else.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for a theme directory.
// If themeDir is empty, returns a loader using only embedded assets.
// Otherwise themeDir/styles/{name}.css takes precedence with fallback to the
// embedded stylesheet.
//
// Returns ErrInvalidAssetPath if themeDir is set but not a readable directory.
func NewAssetLoader(themeDir string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(themeDir)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps the internal resolver to return public errors.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// themed reports whether loader reads stylesheets from a theme directory.
func themed(loader AssetLoader) bool {
	a, ok := loader.(*assetLoaderAdapter)
	return ok && a.resolver.HasCustomLoader()
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound), errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	default:
		return err
	}
}

// wrapError keeps the original message while matching the public sentinel.
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
