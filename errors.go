package portfolio

import (
	"errors"

	"github.com/matiasglessi/portfolio/internal/siteerr"
)

// Error kinds shared with the build phases.
type (
	LoadError   = siteerr.LoadError
	ConfigError = siteerr.ConfigError
	RenderError = siteerr.RenderError
)

// Sentinel errors matched by the error kinds above.
var (
	ErrLoad   = siteerr.ErrLoad
	ErrConfig = siteerr.ErrConfig
	ErrRender = siteerr.ErrRender
)

// Sentinel errors for library operations.
var (
	ErrNilConfig      = errors.New("configuration is nil")
	ErrEmptyPath      = errors.New("content and output paths are required")
	ErrOutputOverlaps = errors.New("output directory overlaps the content directory")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
