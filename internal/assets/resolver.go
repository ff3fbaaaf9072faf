package assets

import "errors"

// AssetResolver tries a theme directory first and falls back to the embedded
// stylesheets when the theme does not provide the requested style.
type AssetResolver struct {
	custom   AssetLoader // nil without a theme directory
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// An empty themeDir uses embedded assets only; an invalid one is an error.
func NewAssetResolver(themeDir string) (*AssetResolver, error) {
	resolver := &AssetResolver{embedded: NewEmbeddedLoader()}

	if themeDir != "" {
		fsLoader, err := NewFilesystemLoader(themeDir)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a CSS style, trying the theme directory first if configured.
// Validation and I/O errors from the theme directory are returned as-is; only
// ErrStyleNotFound falls through to the embedded copy.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadStyle(name)
	}

	content, err := r.custom.LoadStyle(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrStyleNotFound) {
		return "", err
	}
	return r.embedded.LoadStyle(name)
}

// HasCustomLoader returns true if a theme directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ AssetLoader = (*AssetResolver)(nil)
