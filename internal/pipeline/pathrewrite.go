package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteSiteLinks resolves site-internal references in a rendered fragment
// against basePath, the path the site is served under ("/" or "/blog/").
//
// Rewrites:
//   - img[src]: relative paths ("images/a.png") resolve from the site root,
//     since static files are copied to the root of the output
//   - img[src], a[href]: root-absolute paths ("/about/") gain the base path
//
// Left unchanged: URLs with a scheme, protocol-relative URLs, anchors,
// relative a[href] values and paths that climb above the site root.
func RewriteSiteLinks(fragment, basePath string) (string, error) {
	base := "/" + strings.Trim(basePath, "/")
	if base != "/" {
		base += "/"
	}

	nodes, err := ParseFragment(fragment)
	if err != nil {
		return "", err
	}
	for _, n := range nodes {
		rewriteNode(n, base)
	}
	return RenderFragment(nodes)
}

// ParseFragment parses HTML in <body> context and returns the detached
// top-level nodes.
func ParseFragment(fragment string) ([]*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(fragment), body)
}

// RenderFragment renders nodes back to HTML without a document wrapper.
func RenderFragment(nodes []*html.Node) (string, error) {
	var buf strings.Builder
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// rewriteNode traverses the tree and rewrites site-internal references.
func rewriteNode(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", base, true)
		case atom.A:
			rewriteAttr(n, "href", base, false)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, base)
	}
}

func rewriteAttr(n *html.Node, key, base string, resolveRelative bool) {
	for i, attr := range n.Attr {
		if attr.Key != key || isExternalRef(attr.Val) {
			continue
		}
		switch {
		case strings.HasPrefix(attr.Val, "/"):
			if base != "/" && !strings.HasPrefix(attr.Val, base) {
				n.Attr[i].Val = base + strings.TrimPrefix(attr.Val, "/")
			}
		case resolveRelative:
			cleaned := path.Clean(attr.Val)
			if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
				continue
			}
			n.Attr[i].Val = base + cleaned
		}
	}
}

// isExternalRef reports values that never point into the generated site.
func isExternalRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return true
	}
	// A scheme is letters followed by ':' before any '/', '?' or '#'.
	if i := strings.IndexAny(ref, ":/?#"); i > 0 && ref[i] == ':' {
		return true
	}
	return false
}
