package hints

// Notes:
// - ForServeAddress tests cannot use t.Parallel() because they modify the
//   package-level IsInContainer variable.
// These are acceptable gaps: we test observable behavior through stubbing.

import (
	"strings"
	"testing"
)

func TestForServeAddress_InContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	hint := ForServeAddress("localhost:8000")

	if !strings.Contains(hint, "--addr") {
		t.Error("expected --addr suggestion")
	}
	if !strings.Contains(hint, "0.0.0.0") {
		t.Error("expected 0.0.0.0 suggestion inside a container")
	}
}

func TestForServeAddress_OnHost(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	hint := ForServeAddress("localhost:8000")

	if strings.Contains(hint, "0.0.0.0") {
		t.Errorf("unexpected container hint on host: %q", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"site.yaml", "/home/me/.config/portfolio/site.yaml"},
			contains: "create /home/me/.config/portfolio/site.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := ForConfigNotFound(tt.paths)

			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestForHighlightStyle(t *testing.T) {
	if hint := ForHighlightStyle(nil); hint != "" {
		t.Errorf("expected empty hint, got %q", hint)
	}
	hint := ForHighlightStyle([]string{"github", "monokai"})
	if !strings.Contains(hint, "github, monokai") {
		t.Errorf("expected style list, got %q", hint)
	}
}

func TestForFrontMatter(t *testing.T) {
	tests := []struct {
		reason   string
		contains string
	}{
		{reason: `invalid date "yesterday"`, contains: "YYYY-MM-DD"},
		{reason: `unknown layout "gallery"`, contains: `"about"`},
		{reason: "missing required field title", contains: "---"},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			hint := ForFrontMatter(tt.reason)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("ForFrontMatter(%q) = %q, want containing %q", tt.reason, hint, tt.contains)
			}
		})
	}

	if hint := ForFrontMatter("duplicate output path"); hint != "" {
		t.Errorf("expected no hint for unrelated reason, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	hints := []string{
		ForOutputDirectory(),
		ForConfigNotFound(nil),
		ForFrontMatter("bad date"),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
