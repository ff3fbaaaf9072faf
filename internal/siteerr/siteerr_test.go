package siteerr_test

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/matiasglessi/portfolio/internal/siteerr"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	tests := []struct {
		name     string
		err      error
		sentinel error
		others   []error
		contains []string
	}{
		{
			name:     "load error",
			err:      &siteerr.LoadError{Path: "posts/a.md", Reason: "missing required field date"},
			sentinel: siteerr.ErrLoad,
			others:   []error{siteerr.ErrConfig, siteerr.ErrRender},
			contains: []string{"posts/a.md", "missing required field date"},
		},
		{
			name:     "load error with cause",
			err:      &siteerr.LoadError{Path: "about.md", Reason: "reading file", Err: fs.ErrPermission},
			sentinel: siteerr.ErrLoad,
			contains: []string{"about.md", "reading file", "permission denied"},
		},
		{
			name:     "config error",
			err:      &siteerr.ConfigError{Field: "url", Reason: "required"},
			sentinel: siteerr.ErrConfig,
			others:   []error{siteerr.ErrLoad},
			contains: []string{"url: required"},
		},
		{
			name:     "render error",
			err:      &siteerr.RenderError{Path: "posts/b.md", Err: cause},
			sentinel: siteerr.ErrRender,
			others:   []error{siteerr.ErrLoad, siteerr.ErrConfig},
			contains: []string{"posts/b.md", "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("building site: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
			for _, other := range tt.others {
				if errors.Is(wrapped, other) {
					t.Errorf("errors.Is(%v, %v) = true, want false", wrapped, other)
				}
			}
			for _, want := range tt.contains {
				if !strings.Contains(tt.err.Error(), want) {
					t.Errorf("Error() = %q, want containing %q", tt.err.Error(), want)
				}
			}
		})
	}
}

func TestUnwrapReachesCause(t *testing.T) {
	t.Parallel()

	err := &siteerr.RenderError{Path: "p.md", Err: fs.ErrNotExist}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
	}

	var le *siteerr.LoadError
	if !errors.As(fmt.Errorf("wrap: %w", siteerr.Loadf("x.md", "bad %s", "date")), &le) {
		t.Fatal("errors.As did not find LoadError")
	}
	if le.Path != "x.md" || le.Reason != "bad date" {
		t.Errorf("LoadError = %+v", le)
	}
}
