package theme

import (
	"strconv"

	"golang.org/x/net/html"

	"github.com/matiasglessi/portfolio/internal/content"
	"github.com/matiasglessi/portfolio/internal/site"
	"github.com/matiasglessi/portfolio/internal/siteerr"
	v "github.com/matiasglessi/portfolio/internal/view"
)

// Headings of the tag pages.
const (
	tagListTitle   = "Tags"
	tagDetailTitle = "Tagged with "
	allTagsLabel   = "Browse all tags"
)

// chrome wraps main in the shared layout: mobile navbar, sidebar and the
// right column with navbar and footer.
func (c *composer) chrome(current string, main ...*html.Node) *html.Node {
	right := make([]*html.Node, 0, len(main)+2)
	right = append(right, Navbar(c.m, current))
	right = append(right, main...)
	right = append(right, SiteFooter(c.m))

	return Wrapper("container",
		MobileNavbar(c.m, current),
		Sidebar(c.m),
		Wrapper("right-content", right...),
	)
}

func (c *composer) index() (Result, error) {
	list, err := c.ItemList(c.m.Posts)
	if err != nil {
		return Result{}, err
	}
	title := c.m.Config.Name
	if d := c.m.Config.Description; d != "" {
		title += " - " + d
	}
	return Result{
		Path:        "",
		Title:       title,
		Description: c.m.Config.Description,
		Tree:        c.chrome("", list),
	}, nil
}

func (c *composer) item(p *site.Post) (Result, error) {
	body, err := contentNodes(p.Source.SourcePath, p.HTML, "post")
	if err != nil {
		return Result{}, err
	}
	header, err := c.PostHeader(p)
	if err != nil {
		return Result{}, err
	}
	article := v.Element("article", v.Children(
		header,
		v.Element("div", v.Class("content"), v.Children(body...)),
		PostSignature(c.m, p),
	))

	desc := p.Source.Excerpt
	if desc == "" {
		desc = c.m.Config.Description
	}
	return Result{
		Path:        p.Path(),
		Title:       c.title(p.Source.Title),
		Description: desc,
		Tree:        c.chrome(p.Path(), article),
	}, nil
}

func (c *composer) page(p *site.Page) (Result, error) {
	body, err := contentNodes(p.Source.SourcePath, p.HTML, "page")
	if err != nil {
		return Result{}, err
	}

	var main []*html.Node
	switch p.Source.Kind {
	case content.KindAbout:
		main = append(main, Presentation(c.m, body))
		main = append(main, entryList(c.m, "Experience", "experience-list", c.m.Config.About.Experience)...)
		main = append(main, entryList(c.m, "Education", "education-list", c.m.Config.About.Education)...)
	default:
		main = append(main, v.Element("article", v.Children(
			v.Element("h1", v.Children(v.Text(p.Source.Title))),
			v.Element("div", v.Class("content"), v.Children(body...)),
		)))
	}

	desc := p.Source.Description
	if desc == "" {
		desc = c.m.Config.Description
	}
	return Result{
		Path:        p.Path(),
		Title:       c.title(p.Source.Title),
		Description: desc,
		Tree:        c.chrome(p.Path(), main...),
	}, nil
}

func (c *composer) tagList() (Result, error) {
	if !c.m.Config.Pages.TagList {
		return Result{}, nil
	}
	items := make([]*html.Node, 0, len(c.m.Tags))
	for _, g := range c.m.Tags {
		label := v.Text(g.Tag.Label)
		if c.m.Config.Pages.TagDetail {
			label = v.Element("a", v.Href(c.m.URL(c.m.TagPath(g.Tag))), v.Children(label))
		}
		items = append(items, v.Element("li", v.Children(
			label,
			v.Element("span", v.Class("count"), v.Children(v.Text(strconv.Itoa(len(g.Posts))))),
		)))
	}
	return Result{
		Path:        content.TagsRoute,
		Title:       c.title(tagListTitle),
		Description: c.m.Config.Description,
		Tree: c.chrome(content.TagsRoute,
			v.Element("h1", v.Children(v.Text(tagListTitle))),
			v.Element("ul", v.Class("tag-list"), v.Children(items...)),
		),
	}, nil
}

func (c *composer) tagDetail(g *site.TagGroup) (Result, error) {
	if !c.m.Config.Pages.TagDetail {
		return Result{}, nil
	}
	list, err := c.ItemList(g.Posts)
	if err != nil {
		return Result{}, err
	}
	var browse *html.Node
	if c.m.Config.Pages.TagList {
		browse = v.Element("p", v.Children(
			v.Element("a", v.Href(c.m.URL(content.TagsRoute)), v.Children(v.Text(allTagsLabel))),
		))
	}
	path := c.m.TagPath(g.Tag)
	heading := tagDetailTitle + g.Tag.Label
	return Result{
		Path:        path,
		Title:       c.title(heading),
		Description: c.m.Config.Description,
		Tree: c.chrome(path,
			v.Element("h1", v.Children(v.Text(heading))),
			browse,
			list,
		),
	}, nil
}

// title builds a document title such as "About | Ada".
func (c *composer) title(s string) string {
	return s + " | " + c.m.Config.Name
}

// contentNodes parses rendered HTML into nodes for the content div. Missing
// content is a LoadError for the source file.
func contentNodes(source, rendered, what string) ([]*html.Node, error) {
	if rendered == "" {
		return nil, siteerr.Loadf(source, "missing rendered %s content", what)
	}
	nodes, err := v.Raw(rendered)
	if err != nil {
		return nil, &siteerr.RenderError{Path: source, Err: err}
	}
	return nodes, nil
}
