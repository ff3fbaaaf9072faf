package emit

import (
	"fmt"

	"github.com/matiasglessi/portfolio/internal/assets"
	"github.com/matiasglessi/portfolio/internal/pipeline"
	"github.com/matiasglessi/portfolio/internal/site"
	"github.com/matiasglessi/portfolio/internal/theme"
)

// Assemble serializes composed pages and adds the stylesheets, feed and
// sitemap the configuration asks for. Nothing is written yet.
func Assemble(m *site.Model, results []theme.Result, styles assets.AssetLoader) (Site, error) {
	cfg := m.Config
	head := NewHead(m)

	s := Site{
		Pages:      make([]Rendered, 0, len(results)),
		StaticDirs: cfg.StaticDirs,
	}
	paths := make([]string, 0, len(results))
	for _, res := range results {
		if res.IsNone() {
			continue
		}
		h := head
		h.Canonical = m.AbsURL(res.Path)
		r, err := Serialize(res, h)
		if err != nil {
			return Site{}, err
		}
		s.Pages = append(s.Pages, r)
		paths = append(paths, res.Path)
	}

	css, err := styles.LoadStyle(assets.DefaultStyle)
	if err != nil {
		return Site{}, fmt.Errorf("loading stylesheet: %w", err)
	}
	syntax, err := pipeline.SyntaxCSS(cfg.HighlightStyle, cfg.HighlightPrefix)
	if err != nil {
		return Site{}, err
	}
	s.Files = append(s.Files,
		File{Path: StylesPath, Data: []byte(css)},
		File{Path: SyntaxPath, Data: []byte(syntax)},
	)

	if cfg.Feed.Enabled {
		feed, err := Feed(m)
		if err != nil {
			return Site{}, fmt.Errorf("generating feed: %w", err)
		}
		if feed != nil {
			s.Files = append(s.Files, File{Path: FeedPath, Data: feed})
		}
	}
	if cfg.Sitemap {
		sitemap, err := Sitemap(m, paths)
		if err != nil {
			return Site{}, fmt.Errorf("generating sitemap: %w", err)
		}
		s.Files = append(s.Files, File{Path: SitemapPath, Data: sitemap})
	}
	return s, nil
}
