// Package content discovers markdown sources under a content root and turns
// them into documents (blog posts) and pages.
//
// Loading is all-or-nothing: the first malformed file aborts with a
// siteerr.LoadError naming it, and no partial corpus is returned.
package content

import (
	"fmt"
	"time"
)

// PageKind selects the layout a page is composed with. It is assigned at load
// time from the layout front-matter field.
type PageKind int

const (
	KindGeneric PageKind = iota
	KindAbout
)

func (k PageKind) String() string {
	switch k {
	case KindGeneric:
		return "page"
	case KindAbout:
		return "about"
	default:
		return fmt.Sprintf("PageKind(%d)", int(k))
	}
}

// Document is a dated blog post. Immutable after load.
type Document struct {
	ID         string // slash path below the posts dir, without extension
	SourcePath string
	Title      string
	Date       time.Time
	Tags       []string // as written, deduplicated later by the site model
	Body       string   // raw markdown
	Excerpt    string
	Metadata   map[string]any // front-matter keys not consumed above
	Draft      bool
	Order      int // discovery index among documents
}

// OutputPath is the site-relative directory the document is published under.
func (d *Document) OutputPath() string {
	return PostsRoute + "/" + d.ID
}

// MetaString returns a string metadata value, or "" when absent or not a string.
func (d *Document) MetaString(key string) string {
	s, _ := d.Metadata[key].(string)
	return s
}

// Page is a standalone page such as "about". Immutable after load.
type Page struct {
	ID          string // slash path without extension; "about/index.md" is "about"
	SourcePath  string
	Title       string
	Description string
	Body        string
	Kind        PageKind
	Metadata    map[string]any
	Order       int
}

// OutputPath is the site-relative directory the page is published under.
func (p *Page) OutputPath() string {
	return p.ID
}

// Corpus is everything loaded from one content root, in discovery order.
type Corpus struct {
	Root      string
	Documents []*Document
	Pages     []*Page
}

// Routes generated by the site itself; pages may not claim them.
const (
	PostsRoute   = "posts"
	TagsRoute    = "tags"
	CSSRoute     = "css"
	FeedFile     = "feed.xml"
	SitemapFile  = "sitemap.xml"
	indexBase    = "index"
	defaultPosts = "posts"
)

// reservedRoutes lists first path segments owned by generated output.
var reservedRoutes = map[string]bool{
	PostsRoute:  true,
	TagsRoute:   true,
	CSSRoute:    true,
	FeedFile:    true,
	SitemapFile: true,
}

// LoadOptions tunes discovery.
type LoadOptions struct {
	// PostsDir is the directory below the root holding documents (default "posts").
	PostsDir string
	// IncludeDrafts keeps documents and pages marked draft: true.
	IncludeDrafts bool
	// ExcerptLength bounds derived excerpts in runes (default 200).
	ExcerptLength int
	// Skip lists directories not scanned for markdown, such as static asset
	// and theme directories that live inside the root.
	Skip []string
}

// DefaultExcerptLength bounds excerpts derived from the first paragraph.
const DefaultExcerptLength = 200
