package emit

import (
	"encoding/xml"
	"time"

	"github.com/matiasglessi/portfolio/internal/site"
)

// SitemapPath is the site-relative path of the sitemap.
const SitemapPath = "sitemap.xml"

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap lists every published page path. Posts carry their date as
// lastmod and the index the newest post date.
func Sitemap(m *site.Model, paths []string) ([]byte, error) {
	dates := make(map[string]time.Time, len(m.Posts)+1)
	for _, p := range m.Posts {
		dates[p.Path()] = p.Source.Date
	}
	if !m.Updated.IsZero() {
		dates[""] = m.Updated
	}

	set := urlSet{NS: sitemapNS, URLs: make([]sitemapURL, 0, len(paths))}
	for _, p := range paths {
		u := sitemapURL{Loc: m.AbsURL(p)}
		if d, ok := dates[p]; ok {
			u.LastMod = d.Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, u)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}
