package site

import (
	"context"
	"errors"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/content"
	"github.com/matiasglessi/portfolio/internal/pipeline"
	"github.com/matiasglessi/portfolio/internal/siteerr"
)

// Renderer converts a markdown body to an HTML fragment.
type Renderer interface {
	ToHTML(ctx context.Context, markdown string) (string, error)
}

// BuildOptions tunes model construction.
type BuildOptions struct {
	// Workers bounds concurrent renders; values below 1 mean 1.
	Workers int
}

// ErrNilInput is returned when Build is called without a corpus, config or renderer.
var ErrNilInput = errors.New("site: nil corpus, config or renderer")

// Build renders every body and assembles the model. Rendering runs in
// parallel but results are stored by index, so the model never depends on
// scheduling. The first error cancels the remaining renders.
func Build(ctx context.Context, corpus *content.Corpus, cfg *config.Config, r Renderer, opts BuildOptions) (*Model, error) {
	if corpus == nil || cfg == nil || r == nil {
		return nil, ErrNilInput
	}

	posts, pages, err := render(ctx, corpus, cfg, r, max(opts.Workers, 1))
	if err != nil {
		return nil, err
	}

	registry := newTagRegistry()
	postKeys := make([][]string, len(posts))
	for i, p := range posts {
		postKeys[i] = registry.add(p.Source.Tags)
	}

	sortedKeys := slices.Clone(registry.order)
	slices.Sort(sortedKeys)
	slugByKey := slugs(sortedKeys)
	tagByKey := make(map[string]Tag, len(sortedKeys))
	for _, k := range sortedKeys {
		tagByKey[k] = Tag{Label: registry.labels[k], Key: k, Slug: slugByKey[k]}
	}
	for i, p := range posts {
		for _, k := range postKeys[i] {
			p.Tags = append(p.Tags, tagByKey[k])
		}
	}

	// Date descending; the stable sort keeps discovery order for equal dates.
	slices.SortStableFunc(posts, func(a, b *Post) int {
		return b.Source.Date.Compare(a.Source.Date)
	})

	m := &Model{
		Config:   cfg,
		Posts:    posts,
		Pages:    make(map[string]*Page, len(pages)),
		Social:   slices.Clone(cfg.Social),
		BasePath: cfg.BasePath(),
		tagIndex: make(map[string]int, len(sortedKeys)),
	}
	if len(posts) > 0 {
		m.Updated = posts[0].Source.Date
	}

	for i, k := range sortedKeys {
		m.Tags = append(m.Tags, TagGroup{Tag: tagByKey[k]})
		m.tagIndex[k] = i
	}
	for _, p := range posts {
		for _, t := range p.Tags {
			g := &m.Tags[m.tagIndex[t.Key]]
			g.Posts = append(g.Posts, p)
		}
	}

	for _, p := range pages {
		m.Pages[p.Source.ID] = p
		m.PageIDs = append(m.PageIDs, p.Source.ID)
	}
	sort.Strings(m.PageIDs)

	m.Nav = navigation(m, pages)
	return m, nil
}

// render converts all bodies with at most workers renders in flight.
func render(ctx context.Context, corpus *content.Corpus, cfg *config.Config, r Renderer, workers int) ([]*Post, []*Page, error) {
	posts := make([]*Post, len(corpus.Documents))
	pages := make([]*Page, len(corpus.Pages))
	base := cfg.BasePath()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range corpus.Documents {
		g.Go(func() error {
			if strings.TrimSpace(doc.Body) == "" {
				return siteerr.Load(doc.SourcePath, "missing post content")
			}
			html, err := renderBody(ctx, r, doc.SourcePath, doc.Body, base)
			if err != nil {
				return err
			}
			words := pipeline.WordCount(doc.Body)
			posts[i] = &Post{
				Source:      doc,
				HTML:        html,
				Words:       words,
				ReadingTime: pipeline.ReadingTime(words, cfg.WordsPerMinute),
			}
			return nil
		})
	}
	for i, page := range corpus.Pages {
		g.Go(func() error {
			html, err := renderBody(ctx, r, page.SourcePath, page.Body, base)
			if err != nil {
				return err
			}
			pages[i] = &Page{Source: page, HTML: html}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return posts, pages, nil
}

func renderBody(ctx context.Context, r Renderer, source, body, basePath string) (string, error) {
	if strings.TrimSpace(body) == "" {
		return "", nil
	}
	html, err := r.ToHTML(ctx, body)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &siteerr.RenderError{Path: source, Err: err}
	}
	if strings.TrimSpace(html) == "" {
		return "", siteerr.Load(source, "rendered content is empty")
	}
	html, err = pipeline.RewriteSiteLinks(html, basePath)
	if err != nil {
		return "", &siteerr.RenderError{Path: source, Err: err}
	}
	return html, nil
}
