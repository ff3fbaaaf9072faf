package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/matiasglessi/portfolio"
	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/emit"
)

// Exit codes for the portfolio CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built or served
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments or config
	ExitIO      = 3 // File not found, permission denied, unusable output
	ExitContent = 4 // Malformed content or markdown that failed to render
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrListen             = errors.New("cannot listen")
)

// usageError marks a flag or argument problem.
func usageError(err error) error {
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4) come first: a missing content root is a
	// LoadError wrapping os.ErrNotExist.
	if errors.Is(err, portfolio.ErrLoad) ||
		errors.Is(err, portfolio.ErrRender) {
		return ExitContent
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, portfolio.ErrConfig) ||
		errors.Is(err, portfolio.ErrNilConfig) ||
		errors.Is(err, portfolio.ErrEmptyPath) ||
		errors.Is(err, portfolio.ErrOutputOverlaps) ||
		errors.Is(err, portfolio.ErrStyleNotFound) ||
		errors.Is(err, portfolio.ErrInvalidAssetPath) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, emit.ErrUnsafeOutput) ||
		errors.Is(err, emit.ErrStaticDir) ||
		errors.Is(err, ErrListen) {
		return ExitIO
	}

	return ExitGeneral
}
