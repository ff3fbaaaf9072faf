package main

// Notes:
// - exitCodeFor: we test the sentinel errors of each class, plus wrapped
//   errors to verify errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general, 2=usage)
//   and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/matiasglessi/portfolio"
	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/emit"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Content errors (exit 4)
		{"load error", &portfolio.LoadError{Path: "posts/a.md", Reason: "invalid date"}, ExitContent},
		{"render error", &portfolio.RenderError{Path: "posts/a.md", Err: errors.New("boom")}, ExitContent},
		{"missing content root", &portfolio.LoadError{Path: "content", Reason: "reading content root", Err: os.ErrNotExist}, ExitContent},
		{"wrapped load error", fmt.Errorf("building: %w", &portfolio.LoadError{Path: "a.md", Reason: "x"}), ExitContent},

		// Usage/config/validation errors (exit 2)
		{"usage", usageError(errors.New("unknown flag")), ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"config error", &portfolio.ConfigError{Field: "name", Reason: "required"}, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"output overlaps", portfolio.ErrOutputOverlaps, ExitUsage},
		{"style not found", portfolio.ErrStyleNotFound, ExitUsage},
		{"invalid asset path", portfolio.ErrInvalidAssetPath, ExitUsage},
		{"wrapped config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"unsafe output", emit.ErrUnsafeOutput, ExitIO},
		{"static dir", emit.ErrStaticDir, ExitIO},
		{"listen", &listenError{Addr: "localhost:1", Err: errors.New("in use")}, ExitIO},
		{"wrapped permission", fmt.Errorf("writing: %w", os.ErrPermission), ExitIO},

		// General errors (exit 1)
		{"unknown error", errors.New("something"), ExitGeneral},
		{"cancelled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitContent} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom exit code %d should be in (2, 126)", code)
		}
	}
}

// ---------------------------------------------------------------------------
// TestHintFor - Actionable hints per error kind
// ---------------------------------------------------------------------------

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"date", &portfolio.LoadError{Path: "a.md", Reason: "invalid date"}, "YYYY-MM-DD"},
		{"layout", &portfolio.LoadError{Path: "a.md", Reason: `unknown layout "x"`}, "layout is"},
		{"config not found", fmt.Errorf("%w: tried site.yaml", config.ErrConfigNotFound), "--config"},
		{"highlight style", &portfolio.ConfigError{Field: "highlightStyle", Reason: "unknown style"}, "available styles"},
		{"permission", fmt.Errorf("writing: %w", os.ErrPermission), "writable"},
		{"listen", &listenError{Addr: "localhost:8000", Err: errors.New("in use")}, "--addr"},
		{"none", errors.New("plain"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
