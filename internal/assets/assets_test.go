package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		style       string
		wantErr     error
		wantContain string
	}{
		{
			name:        "default stylesheet",
			style:       DefaultStyle,
			wantContain: ".sidebar",
		},
		{
			name:    "unknown style",
			style:   "brutalist",
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "traversal rejected",
			style:   "../secret",
			wantErr: ErrInvalidAssetName,
		},
		{
			name:    "empty name rejected",
			style:   "",
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewEmbeddedLoader().LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.style, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadStyle(%q) missing %q", tt.style, tt.wantContain)
			}
		})
	}
}

// TestDefaultStyle_CoversComponents guards the class names the theme emits.
func TestDefaultStyle_CoversComponents(t *testing.T) {
	t.Parallel()

	css, err := NewEmbeddedLoader().LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	for _, class := range []string{
		".container", ".mobile-navbar", ".navbar", ".right-content", ".item-list",
		".tag-list", ".post-signature", ".presentation", ".experience-item", "a.current",
	} {
		if !strings.Contains(css, class) {
			t.Errorf("default stylesheet missing %s", class)
		}
	}
}

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "default"},
		{name: "hyphen and digits", input: "dark-2"},
		{name: "underscore", input: "my_theme"},
		{name: "empty", input: "", wantErr: true},
		{name: "forward slash", input: "styles/default", wantErr: true},
		{name: "backslash", input: `styles\default`, wantErr: true},
		{name: "extension", input: "default.css", wantErr: true},
		{name: "parent traversal", input: "..", wantErr: true},
		{name: "space", input: "my theme", wantErr: true},
		{name: "non-ascii", input: "thème", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}

func TestValidateAssetName_ErrorMessages(t *testing.T) {
	t.Parallel()

	err := ValidateAssetName("a/b")
	if err == nil || !strings.Contains(err.Error(), `"a/b"`) {
		t.Errorf("error should quote the rejected name, got %v", err)
	}
	err = ValidateAssetName("")
	if err == nil || !strings.Contains(err.Error(), "empty name") {
		t.Errorf("error should mention empty name, got %v", err)
	}
}
