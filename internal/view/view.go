// Package view builds HTML trees out of golang.org/x/net/html nodes.
//
// Components are plain functions returning *html.Node, composed with
// Element and its options:
//
//	view.Element("a", view.Class("current"), view.Href("/about/"),
//		view.Children(view.Text("About")))
//
// Nil children are skipped, so optional parts can be written inline.
package view

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures an element.
type Option func(n *html.Node)

// Element creates an element node.
func Element(tag string, opts ...Option) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Text creates a text node. Escaping happens at render time.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr sets an attribute, replacing an earlier value for the same key.
func Attr(key, value string) Option {
	return func(n *html.Node) {
		for i := range n.Attr {
			if n.Attr[i].Key == key {
				n.Attr[i].Val = value
				return
			}
		}
		n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
	}
}

// Class sets the class attribute from the non-empty names. Without any name
// no attribute is written.
func Class(names ...string) Option {
	var kept []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	return func(n *html.Node) {
		if len(kept) > 0 {
			Attr("class", strings.Join(kept, " "))(n)
		}
	}
}

// Href sets the href attribute.
func Href(url string) Option { return Attr("href", url) }

// Src sets the src attribute.
func Src(url string) Option { return Attr("src", url) }

// Children appends nodes in order, skipping nil.
func Children(nodes ...*html.Node) Option {
	return func(n *html.Node) {
		for _, c := range nodes {
			if c != nil {
				n.AppendChild(c)
			}
		}
	}
}

// Fragment collects sibling nodes, dropping nil, for use with Children.
func Fragment(nodes ...*html.Node) []*html.Node {
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Raw parses an HTML fragment in <body> context into detached nodes.
func Raw(fragment string) ([]*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	return html.ParseFragment(strings.NewReader(fragment), body)
}
