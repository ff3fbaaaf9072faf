// Package site builds the immutable model every page is composed from:
// rendered posts in publication order, tag groups, pages and navigation.
package site

import (
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/content"
)

// Post is a document with its rendered body and derived values.
type Post struct {
	Source      *content.Document
	Tags        []Tag // deduplicated, in the order first written
	HTML        string
	Words       int
	ReadingTime int // minutes, at least 1
}

// Path is the site-relative output directory of the post.
func (p *Post) Path() string { return p.Source.OutputPath() }

// Page is a standalone page with its rendered body.
type Page struct {
	Source *content.Page
	HTML   string
}

// Path is the site-relative output directory of the page.
func (p *Page) Path() string { return p.Source.OutputPath() }

// NavLink is one resolved navigation entry.
type NavLink struct {
	Title string
	Href  string
	// Path is the site-relative path the link points at; "" is the index.
	// Unused for external links.
	Path     string
	External bool
}

// Matches reports whether the link is the current section for a page
// published at outPath. The index link also covers posts.
func (l NavLink) Matches(outPath string) bool {
	if l.External {
		return false
	}
	if l.Path == "" {
		return outPath == "" || strings.HasPrefix(outPath, content.PostsRoute+"/")
	}
	return outPath == l.Path || strings.HasPrefix(outPath, l.Path+"/")
}

// Model is built once per run and shared read-only by the composer and the
// emitter.
type Model struct {
	Config   *config.Config
	Posts    []*Post // date descending, discovery order on ties
	Tags     []TagGroup
	Pages    map[string]*Page
	PageIDs  []string // sorted
	Nav      []NavLink
	Social   []config.Link
	BasePath string
	// Updated is the date of the newest post, zero without posts.
	Updated time.Time

	tagIndex map[string]int
}

// Tag returns the group for a tag key.
func (m *Model) Tag(key string) (*TagGroup, bool) {
	i, ok := m.tagIndex[key]
	if !ok {
		return nil, false
	}
	return &m.Tags[i], true
}

// URL returns the site-absolute link to a directory page such as
// "posts/hello" ("/blog/posts/hello/"). The empty path is the index.
func (m *Model) URL(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return m.BasePath
	}
	return m.BasePath + escapePath(p) + "/"
}

// FileURL returns the site-absolute link to a file such as "feed.xml".
func (m *Model) FileURL(p string) string {
	return m.BasePath + escapePath(strings.Trim(p, "/"))
}

// AbsURL is URL prefixed with the configured origin, for feeds, sitemaps and
// canonical links.
func (m *Model) AbsURL(p string) string {
	return m.Config.Origin() + m.URL(p)
}

// AbsFileURL is FileURL prefixed with the configured origin.
func (m *Model) AbsFileURL(p string) string {
	return m.Config.Origin() + m.FileURL(p)
}

// TagPath is the site-relative output directory of a tag detail page.
func (m *Model) TagPath(t Tag) string {
	return path.Join(content.TagsRoute, t.Slug)
}

// FooterYear is the configured footer year, else the year of the newest
// post, else zero.
func (m *Model) FooterYear() int {
	if m.Config.Footer.Year > 0 {
		return m.Config.Footer.Year
	}
	if !m.Updated.IsZero() {
		return m.Updated.Year()
	}
	return 0
}

func escapePath(p string) string {
	return (&url.URL{Path: p}).EscapedPath()
}
