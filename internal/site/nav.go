package site

import (
	"strings"

	"github.com/matiasglessi/portfolio/internal/content"
)

// defaultNavTitle labels the index link when no navigation is configured.
const defaultNavTitle = "Blog"

// navigation resolves the configured links, or falls back to the index plus
// one link per about page in discovery order.
func navigation(m *Model, pages []*Page) []NavLink {
	items := m.Config.Navigation
	if len(items) == 0 {
		links := []NavLink{{Title: defaultNavTitle, Href: m.URL(""), Path: ""}}
		for _, p := range pages {
			if p.Source.Kind == content.KindAbout {
				links = append(links, NavLink{Title: p.Source.Title, Href: m.URL(p.Path()), Path: p.Path()})
			}
		}
		return links
	}

	links := make([]NavLink, 0, len(items))
	for _, item := range items {
		if item.URL != "" {
			links = append(links, NavLink{Title: item.Title, Href: item.URL, External: true})
			continue
		}
		p := strings.Trim(item.Path, "/")
		links = append(links, NavLink{Title: item.Title, Href: m.URL(p), Path: p})
	}
	return links
}
