// Package theme composes view trees for every page kind from the site model.
//
// Composition is pure: it reads the model and returns detached *html.Node
// trees. Serializing them into documents is the emitter's job.
package theme

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/matiasglessi/portfolio/internal/site"
)

// Kind is the page kind a request asks for.
type Kind int

const (
	KindIndex Kind = iota
	KindItem
	KindPage
	KindTagList
	KindTagDetail
)

func (k Kind) String() string {
	switch k {
	case KindIndex:
		return "index"
	case KindItem:
		return "item"
	case KindPage:
		return "page"
	case KindTagList:
		return "tag list"
	case KindTagDetail:
		return "tag detail"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors for malformed requests.
var (
	ErrUnknownKind   = errors.New("theme: unknown page kind")
	ErrMissingTarget = errors.New("theme: request has no post, page or tag")
)

// Request selects what to compose. Post, Page or Tag must be set for the
// kinds that need them.
type Request struct {
	Kind Kind
	Post *site.Post
	Page *site.Page
	Tag  *site.TagGroup
}

// Result is a composed page. The zero Result means "no page".
type Result struct {
	Path        string // site-relative output directory, "" for the index
	Title       string // document title
	Description string
	Tree        *html.Node // body content
}

// IsNone reports the explicit "no page" outcome of a disabled optional kind.
func (r Result) IsNone() bool { return r.Tree == nil }

// Compose builds the page for req.
func Compose(m *site.Model, req Request) (Result, error) {
	return newComposer(m).compose(req)
}

// ComposeAll composes every page of the site in a fixed order: index, posts,
// pages, tag list, tag details. Disabled kinds are left out.
func ComposeAll(m *site.Model) ([]Result, error) {
	c := newComposer(m)

	reqs := []Request{{Kind: KindIndex}}
	for _, p := range m.Posts {
		reqs = append(reqs, Request{Kind: KindItem, Post: p})
	}
	for _, id := range m.PageIDs {
		reqs = append(reqs, Request{Kind: KindPage, Page: m.Pages[id]})
	}
	reqs = append(reqs, Request{Kind: KindTagList})
	for i := range m.Tags {
		reqs = append(reqs, Request{Kind: KindTagDetail, Tag: &m.Tags[i]})
	}

	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		res, err := c.compose(req)
		if err != nil {
			return nil, err
		}
		if !res.IsNone() {
			results = append(results, res)
		}
	}
	return results, nil
}

func (c *composer) compose(req Request) (Result, error) {
	switch req.Kind {
	case KindIndex:
		return c.index()
	case KindItem:
		if req.Post == nil {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingTarget, req.Kind)
		}
		return c.item(req.Post)
	case KindPage:
		if req.Page == nil {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingTarget, req.Kind)
		}
		return c.page(req.Page)
	case KindTagList:
		return c.tagList()
	case KindTagDetail:
		if req.Tag == nil {
			return Result{}, fmt.Errorf("%w: %s", ErrMissingTarget, req.Kind)
		}
		return c.tagDetail(req.Tag)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownKind, req.Kind)
	}
}
