package pipeline

// Notes:
// - ParseFragment/RenderFragment error branches are not exercised: the html
//   package does not fail on string input or in-memory writers.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRewriteSiteLinks - Base path resolution
// ---------------------------------------------------------------------------

func TestRewriteSiteLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		base     string
		contains []string
	}{
		{
			name:     "relative image at root site",
			html:     `<p><img src="images/logo.png" alt="x"/></p>`,
			base:     "/",
			contains: []string{`src="/images/logo.png"`, `alt="x"`},
		},
		{
			name:     "dot slash image under base",
			html:     `<img src="./images/logo.png">`,
			base:     "/blog/",
			contains: []string{`src="/blog/images/logo.png"`},
		},
		{
			name:     "root-absolute image under base",
			html:     `<img src="/images/logo.png">`,
			base:     "/blog",
			contains: []string{`src="/blog/images/logo.png"`},
		},
		{
			name:     "root-absolute link under base",
			html:     `<a href="/about/">About</a>`,
			base:     "/blog/",
			contains: []string{`href="/blog/about/"`},
		},
		{
			name:     "already prefixed link untouched",
			html:     `<a href="/blog/about/">About</a>`,
			base:     "/blog/",
			contains: []string{`href="/blog/about/"`},
		},
		{
			name:     "relative link untouched",
			html:     `<a href="../other/">Other</a>`,
			base:     "/blog/",
			contains: []string{`href="../other/"`},
		},
		{
			name:     "external urls untouched",
			html:     `<a href="https://example.com/x">x</a><img src="data:image/png;base64,AA"><a href="mailto:a@b.c">m</a>`,
			base:     "/blog/",
			contains: []string{`href="https://example.com/x"`, `src="data:image/png;base64,AA"`, `href="mailto:a@b.c"`},
		},
		{
			name:     "anchor and protocol-relative untouched",
			html:     `<a href="#fn:1">1</a><img src="//cdn.example.com/a.png">`,
			base:     "/blog/",
			contains: []string{`href="#fn:1"`, `src="//cdn.example.com/a.png"`},
		},
		{
			name:     "image climbing above root untouched",
			html:     `<img src="../../secret.png">`,
			base:     "/",
			contains: []string{`src="../../secret.png"`},
		},
		{
			name:     "nested elements rewritten",
			html:     `<ul><li><p><img src="a.png"></p></li></ul>`,
			base:     "/",
			contains: []string{`<ul><li><p><img src="/a.png"/></p></li></ul>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteSiteLinks(tt.html, tt.base)
			if err != nil {
				t.Fatalf("RewriteSiteLinks() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("RewriteSiteLinks() missing %q\ngot: %s", want, got)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseFragment - Detached nodes without document wrapper
// ---------------------------------------------------------------------------

func TestParseFragment(t *testing.T) {
	t.Parallel()

	nodes, err := ParseFragment("<h1>T</h1><p>a</p>")
	if err != nil {
		t.Fatalf("ParseFragment() error = %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("len(nodes) = %d, want 2", len(nodes))
	}
	for _, n := range nodes {
		if n.Parent != nil {
			t.Error("fragment nodes should be detached")
		}
	}
	out, err := RenderFragment(nodes)
	if err != nil {
		t.Fatalf("RenderFragment() error = %v", err)
	}
	if out != "<h1>T</h1><p>a</p>" {
		t.Errorf("RenderFragment() = %q", out)
	}
	if strings.Contains(out, "<body") {
		t.Error("fragment output should not contain a body wrapper")
	}
}
