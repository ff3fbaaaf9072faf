package emit

import (
	atom "github.com/thomas11/atomgenerator"

	"github.com/matiasglessi/portfolio/internal/site"
)

// FeedPath is the site-relative path of the Atom feed.
const FeedPath = "feed.xml"

// Feed renders the Atom feed of the newest posts, up to cfg.Feed.Limit (0
// means all). The feed date is the newest post date, so unchanged content
// gives an unchanged feed. It returns nil without posts.
func Feed(m *site.Model) ([]byte, error) {
	if len(m.Posts) == 0 {
		return nil, nil
	}
	cfg := m.Config

	feed := atom.Feed{
		Title:   cfg.Name,
		Link:    m.AbsURL(""),
		PubDate: m.Updated,
	}
	author := atom.Author{Name: cfg.Author.Name, Uri: m.AbsURL("")}
	if author.Name == "" {
		author.Name = cfg.Name
	}
	feed.AddAuthor(author)

	posts := m.Posts
	if limit := cfg.Feed.Limit; limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	for _, p := range posts {
		summary := p.Source.Excerpt
		if summary == "" {
			summary = p.Source.Title
		}
		e := &atom.Entry{
			Title:       p.Source.Title,
			Description: summary,
			Link:        m.AbsURL(p.Path()),
			PubDate:     p.Source.Date,
			Content:     p.HTML,
		}
		for _, t := range p.Tags {
			e.AddCategory(atom.Category{Term: t.Label})
		}
		feed.AddEntry(e)
	}

	if errs := feed.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}
	return feed.GenXml()
}
