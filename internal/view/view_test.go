package view

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func render(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// TestElement - Tree construction and rendering
// ---------------------------------------------------------------------------

func TestElement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node func() *html.Node
		want string
	}{
		{
			name: "text is escaped",
			node: func() *html.Node {
				return Element("p", Children(Text("<b> & \"q\"")))
			},
			want: `<p>&lt;b&gt; &amp; &#34;q&#34;</p>`,
		},
		{
			name: "attributes keep insertion order",
			node: func() *html.Node {
				return Element("a", Class("current"), Href("/about/"), Children(Text("About")))
			},
			want: `<a class="current" href="/about/">About</a>`,
		},
		{
			name: "class skips empty names",
			node: func() *html.Node {
				return Element("li", Class("", "github", " "))
			},
			want: `<li class="github"></li>`,
		},
		{
			name: "no class without names",
			node: func() *html.Node {
				return Element("div", Class(""))
			},
			want: `<div></div>`,
		},
		{
			name: "attr replaces an earlier value",
			node: func() *html.Node {
				return Element("img", Src("a.png"), Attr("alt", "x"), Src("b.png"))
			},
			want: `<img src="b.png" alt="x"/>`,
		},
		{
			name: "nil children are skipped",
			node: func() *html.Node {
				var missing *html.Node
				return Element("ul", Children(
					Element("li", Children(Text("a"))),
					missing,
					Element("li", Children(Text("b"))),
				))
			},
			want: `<ul><li>a</li><li>b</li></ul>`,
		},
		{
			name: "fragment flattens into children",
			node: func() *html.Node {
				return Element("div", Children(Fragment(Text("a"), nil, Text("b"))...))
			},
			want: `<div>ab</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := render(t, tt.node()); got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRaw - Fragments become appendable nodes
// ---------------------------------------------------------------------------

func TestRaw(t *testing.T) {
	t.Parallel()

	nodes, err := Raw(`<p>one</p><pre><code class="language-go">x</code></pre>`)
	if err != nil {
		t.Fatalf("Raw() error = %v", err)
	}
	div := Element("div", Class("content"), Children(nodes...))

	want := `<div class="content"><p>one</p><pre><code class="language-go">x</code></pre></div>`
	if got := render(t, div); got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestQuery - Find helpers
// ---------------------------------------------------------------------------

func TestQuery(t *testing.T) {
	t.Parallel()

	root := Element("nav", Children(
		Element("a", Class("item", "current"), Href("/"), Children(Text("Blog"))),
		Element("a", Class("item"), Href("/about/"), Children(Element("span", Children(Text("About"))))),
	))

	current := Find(root, ByClass("current"))
	if current == nil || AttrValue(current, "href") != "/" {
		t.Fatalf("Find(current) = %v", current)
	}
	if got := len(FindAll(root, ByClass("item"))); got != 2 {
		t.Errorf("FindAll(item) = %d nodes, want 2", got)
	}
	if got := len(FindAll(root, ByTag("span"))); got != 1 {
		t.Errorf("FindAll(span) = %d nodes, want 1", got)
	}
	if got := TextContent(root); got != "BlogAbout" {
		t.Errorf("TextContent() = %q, want %q", got, "BlogAbout")
	}
	if Find(root, ByClass("missing")) != nil {
		t.Error("Find(missing) should be nil")
	}
	if HasClass(Text("current"), "current") {
		t.Error("text nodes have no classes")
	}
	if AttrValue(root, "id") != "" {
		t.Error("AttrValue of a missing key should be empty")
	}
}
