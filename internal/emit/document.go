package emit

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/fileutil"
	"github.com/matiasglessi/portfolio/internal/site"
	"github.com/matiasglessi/portfolio/internal/theme"
	v "github.com/matiasglessi/portfolio/internal/view"
)

// Site-relative paths of the generated stylesheets.
const (
	StylesPath = "css/styles.css"
	SyntaxPath = "css/syntax.css"
)

// ErrNoTree is returned when serializing a "no page" result.
var ErrNoTree = errors.New("emit: result has no tree")

// Rendered is one serialized page.
type Rendered struct {
	Path string // site-relative directory, "" for the index
	HTML []byte
}

// Head holds the document head shared by every page. Canonical is set per
// page.
type Head struct {
	Lang        string
	Canonical   string
	Stylesheets []config.Stylesheet // resolved hrefs, in order
	FeedHref    string   // empty when the feed is disabled
	FeedTitle   string
}

// NewHead derives the shared head from the model: configured stylesheets,
// then the site and syntax stylesheets, then the feed link.
func NewHead(m *site.Model) Head {
	cfg := m.Config
	h := Head{Lang: cfg.Language}
	for _, s := range cfg.Stylesheets {
		s.Href = linkHref(m, s.Href)
		h.Stylesheets = append(h.Stylesheets, s)
	}
	h.Stylesheets = append(h.Stylesheets,
		config.Stylesheet{Href: m.FileURL(StylesPath)},
		config.Stylesheet{Href: m.FileURL(SyntaxPath)},
	)
	if cfg.Feed.Enabled && len(m.Posts) > 0 {
		h.FeedHref = m.FileURL(FeedPath)
		h.FeedTitle = cfg.Name
	}
	return h
}

// Serialize wraps a composed tree in a complete HTML5 document.
func Serialize(res theme.Result, head Head) (Rendered, error) {
	if res.IsNone() {
		return Rendered{}, ErrNoTree
	}

	headNode := v.Element("head", v.Children(
		v.Element("meta", v.Attr("charset", "utf-8")),
		v.Element("meta", v.Attr("name", "viewport"), v.Attr("content", "width=device-width, initial-scale=1")),
		v.Element("title", v.Children(v.Text(res.Title))),
	))
	if res.Description != "" {
		headNode.AppendChild(v.Element("meta", v.Attr("name", "description"), v.Attr("content", res.Description)))
	}
	if head.Canonical != "" {
		headNode.AppendChild(v.Element("link", v.Attr("rel", "canonical"), v.Href(head.Canonical)))
	}
	for _, sheet := range head.Stylesheets {
		opts := []v.Option{v.Attr("rel", "stylesheet"), v.Href(sheet.Href)}
		if sheet.Integrity != "" {
			opts = append(opts, v.Attr("integrity", sheet.Integrity))
		}
		if sheet.CrossOrigin != "" {
			opts = append(opts, v.Attr("crossorigin", sheet.CrossOrigin))
		}
		headNode.AppendChild(v.Element("link", opts...))
	}
	if head.FeedHref != "" {
		headNode.AppendChild(v.Element("link",
			v.Attr("rel", "alternate"),
			v.Attr("type", "application/atom+xml"),
			v.Attr("title", head.FeedTitle),
			v.Href(head.FeedHref)))
	}

	lang := head.Lang
	if lang == "" {
		lang = "en"
	}
	// The tree is borrowed for rendering and detached again afterwards.
	body := v.Element("body", v.Children(res.Tree))
	defer body.RemoveChild(res.Tree)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(v.Element("html", v.Attr("lang", lang), v.Children(headNode, body)))

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return Rendered{}, fmt.Errorf("serializing %q: %w", res.Path, err)
	}
	buf.WriteByte('\n')
	return Rendered{Path: res.Path, HTML: buf.Bytes()}, nil
}

// linkHref keeps external stylesheet URLs and resolves site paths from the
// site root.
func linkHref(m *site.Model, ref string) string {
	if fileutil.IsURL(ref) || strings.HasPrefix(ref, "//") {
		return ref
	}
	return m.FileURL(ref)
}
