// Package siteerr defines the error kinds shared by every build phase.
//
// Each kind carries the offending path or field and matches its sentinel via
// errors.Is, so callers can map failures to exit codes without inspecting
// messages.
package siteerr

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below.
var (
	ErrLoad   = errors.New("content error")
	ErrConfig = errors.New("configuration error")
	ErrRender = errors.New("render error")
)

// LoadError reports a content file that cannot become part of the site:
// missing required fields, unparseable front matter, duplicate output paths
// or missing rendered content.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := e.Path + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports ErrLoad for every LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// ConfigError reports an invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := e.Field + ": " + e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Err)
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// RenderError reports a markdown body the renderer could not convert.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: rendering: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool { return target == ErrRender }

// Load is shorthand for a LoadError without a cause.
func Load(path, reason string) error {
	return &LoadError{Path: path, Reason: reason}
}

// Loadf builds a LoadError with a formatted reason.
func Loadf(path, format string, args ...any) error {
	return &LoadError{Path: path, Reason: fmt.Sprintf(format, args...)}
}
