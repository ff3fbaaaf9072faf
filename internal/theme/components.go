package theme

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/dateutil"
	"github.com/matiasglessi/portfolio/internal/fileutil"
	"github.com/matiasglessi/portfolio/internal/pipeline"
	"github.com/matiasglessi/portfolio/internal/site"
	v "github.com/matiasglessi/portfolio/internal/view"
)

// Fixed copy of the post signature.
const (
	signatureRule     = "---"
	signatureThanks   = "Hey! Thanks for getting this far! 😊"
	signatureQuestion = "Do you see something strange or wrong in this article? "
	signatureHosted   = "It's hosted "
	signaturePR       = ", you can open a Pull Request for discussion and request an edit."
	signatureContact  = " You can also contact me directly "
	signatureOnly     = "You can contact me directly "
	presentationTitle = "Hi 👋"
	generatedBy       = "Generated using portfolio."
)

// pullRequestKey is the post metadata field holding the edit link.
const pullRequestKey = "pullRequest"

// composer holds per-run state. Casers are not safe for concurrent use, so
// each composer owns its own.
type composer struct {
	m     *site.Model
	upper cases.Caser
}

func newComposer(m *site.Model) *composer {
	tag, err := language.Parse(m.Config.Language)
	if err != nil {
		tag = language.Und
	}
	return &composer{m: m, upper: cases.Upper(tag)}
}

// Wrapper is a div with a class, the basic layout block.
func Wrapper(class string, children ...*html.Node) *html.Node {
	return v.Element("div", v.Class(class), v.Children(children...))
}

// navList renders links as a mediaLinks-list, marking the section of
// current with the "current" class.
func navList(links []site.NavLink, current string) *html.Node {
	items := make([]*html.Node, 0, len(links))
	for _, l := range links {
		class := ""
		if l.Matches(current) {
			class = "current"
		}
		items = append(items, v.Element("li", v.Children(
			v.Element("a", v.Class(class), v.Href(l.Href), v.Children(v.Text(l.Title))),
		)))
	}
	return v.Element("ul", v.Class("mediaLinks-list"), v.Children(items...))
}

// MobileNavbar is the compact header shown on small screens.
func MobileNavbar(m *site.Model, current string) *html.Node {
	return Wrapper("mobile-navbar",
		v.Element("h1", v.Children(v.Text(displayName(m.Config)))),
		navList(m.Nav, current),
	)
}

// Navbar is the top navigation of the right column.
func Navbar(m *site.Model, current string) *html.Node {
	return Wrapper("navbar", navList(m.Nav, current))
}

// Sidebar shows the avatar, name, tagline and social links.
func Sidebar(m *site.Model) *html.Node {
	cfg := m.Config
	var avatar *html.Node
	if cfg.Author.Avatar != "" {
		avatar = v.Element("img", v.Class("avatar"),
			v.Src(assetURL(m, cfg.Author.Avatar)),
			v.Attr("alt", displayName(cfg)+"'s profile picture"))
	}
	var tagline *html.Node
	if cfg.Description != "" {
		tagline = v.Element("h2", v.Children(v.Text(cfg.Description)))
	}

	links := make([]*html.Node, 0, len(m.Social))
	for _, l := range m.Social {
		var icon *html.Node
		if l.Icon != "" {
			icon = v.Element("i", v.Class(l.Icon))
		}
		links = append(links, v.Element("li", v.Class(l.Class), v.Children(
			v.Element("a", v.Href(l.URL), v.Children(icon, v.Text(l.Title))),
		)))
	}
	var social *html.Node
	if len(links) > 0 {
		social = v.Element("ul", v.Class("mediaLinks-list"), v.Children(links...))
	}

	return Wrapper("sidebar",
		avatar,
		v.Element("h1", v.Children(v.Text(displayName(cfg)))),
		tagline,
		social,
	)
}

// ItemList lists posts newest first with date, title, excerpt, tags and
// reading time.
func (c *composer) ItemList(posts []*site.Post) (*html.Node, error) {
	if len(posts) == 0 {
		return v.Element("p", v.Class("empty"), v.Children(v.Text("No posts yet."))), nil
	}
	items := make([]*html.Node, 0, len(posts))
	for _, p := range posts {
		date, err := c.date(p.Source.Date)
		if err != nil {
			return nil, err
		}
		var excerpt *html.Node
		if p.Source.Excerpt != "" {
			excerpt = v.Element("p", v.Children(v.Text(p.Source.Excerpt)))
		}
		items = append(items, v.Element("li", v.Children(
			v.Element("article", v.Children(
				v.Element("h4", v.Children(v.Text(date))),
				v.Element("h1", v.Children(
					v.Element("a", v.Href(c.m.URL(p.Path())), v.Children(v.Text(p.Source.Title))),
				)),
				excerpt,
				ItemTagList(c.m, p.Tags),
				readingTime(p),
			)),
		)))
	}
	return v.Element("ul", v.Class("item-list"), v.Children(items...)), nil
}

// ItemTagList links each tag to its detail page, or lists plain labels when
// tag detail pages are disabled. Nil without tags.
func ItemTagList(m *site.Model, tags []site.Tag) *html.Node {
	if len(tags) == 0 {
		return nil
	}
	items := make([]*html.Node, 0, len(tags))
	for _, t := range tags {
		label := v.Text(t.Label)
		if m.Config.Pages.TagDetail {
			label = v.Element("a", v.Href(m.URL(m.TagPath(t))), v.Children(label))
		}
		items = append(items, v.Element("li", v.Children(label)))
	}
	return v.Element("ul", v.Class("tag-list"), v.Children(items...))
}

// PostHeader opens a post: date, title, tags and reading time.
func (c *composer) PostHeader(p *site.Post) (*html.Node, error) {
	date, err := c.date(p.Source.Date)
	if err != nil {
		return nil, err
	}
	return v.Element("header", v.Class("post-header"), v.Children(
		v.Element("h4", v.Children(v.Text(date))),
		v.Element("h1", v.Children(v.Text(p.Source.Title))),
		ItemTagList(c.m, p.Tags),
		readingTime(p),
	)), nil
}

// PostSignature closes a post with a thank-you note, the pull request link
// from the post metadata and the author's mail link, when available.
func PostSignature(m *site.Model, p *site.Post) *html.Node {
	pr := p.Source.MetaString(pullRequestKey)
	email := m.Config.Author.Email

	var invite *html.Node
	switch {
	case pr != "" && email != "":
		invite = v.Element("p", v.Children(
			v.Text(signatureQuestion+signatureHosted),
			v.Element("a", v.Href(pr), v.Children(v.Text("on Github"))),
			v.Text(signaturePR+signatureContact),
			mailLink(email),
			v.Text("."),
		))
	case pr != "":
		invite = v.Element("p", v.Children(
			v.Text(signatureQuestion+signatureHosted),
			v.Element("a", v.Href(pr), v.Children(v.Text("on Github"))),
			v.Text(signaturePR),
		))
	case email != "":
		invite = v.Element("p", v.Children(
			v.Text(signatureQuestion+signatureOnly),
			mailLink(email),
			v.Text("."),
		))
	}

	return Wrapper("post-signature",
		v.Element("p", v.Children(v.Text(signatureRule))),
		v.Element("p", v.Children(v.Text(signatureThanks))),
		invite,
	)
}

// Presentation opens the about page: greeting, avatar and the page body.
func Presentation(m *site.Model, body []*html.Node) *html.Node {
	var avatar *html.Node
	if m.Config.Author.Avatar != "" {
		avatar = v.Element("img", v.Class("about-avatar"),
			v.Src(assetURL(m, m.Config.Author.Avatar)),
			v.Attr("alt", displayName(m.Config)+"'s profile picture"))
	}
	return Wrapper("presentation",
		v.Element("h1", v.Children(v.Text(presentationTitle))),
		avatar,
		v.Element("div", v.Class("content"), v.Children(body...)),
	)
}

// ExperienceItem renders one experience or education entry.
func ExperienceItem(m *site.Model, e config.Entry) *html.Node {
	var logo *html.Node
	if e.Logo != "" {
		logo = v.Element("img", v.Src(assetURL(m, e.Logo)), v.Attr("alt", "Company Logo"))
	}
	var role *html.Node
	if e.Role != "" {
		role = v.Element("h3", v.Children(v.Text(e.Role)))
	}
	var company *html.Node
	if e.Company != "" {
		name := v.Text(e.Company)
		if e.URL != "" {
			name = v.Element("a", v.Href(e.URL), v.Children(name))
		}
		company = v.Element("h4", v.Children(name))
	}
	var period *html.Node
	if e.Period != "" {
		period = v.Element("h5", v.Children(v.Text(e.Period)))
	}
	return v.Element("article", v.Class("experience-item"), v.Children(logo, role, company, period))
}

// entryList renders a titled list of entries, or nil when empty.
func entryList(m *site.Model, title, class string, entries []config.Entry) []*html.Node {
	if len(entries) == 0 {
		return nil
	}
	items := make([]*html.Node, 0, len(entries))
	for _, e := range entries {
		items = append(items, v.Element("li", v.Children(ExperienceItem(m, e))))
	}
	return v.Fragment(
		v.Element("h2", v.Children(v.Text(title))),
		v.Element("ul", v.Class(class), v.Children(items...)),
	)
}

// SiteFooter shows the footer text and the copyright year.
func SiteFooter(m *site.Model) *html.Node {
	text := m.Config.Footer.Text
	if text == "" {
		text = generatedBy
	}
	var year *html.Node
	if y := m.FooterYear(); y > 0 {
		year = v.Element("p", v.Children(v.Text("© "+strconv.Itoa(y)+" "+displayName(m.Config))))
	}
	return v.Element("footer", v.Children(
		v.Element("p", v.Children(v.Text(text))),
		year,
	))
}

func readingTime(p *site.Post) *html.Node {
	return v.Element("p", v.Class("reading-time"),
		v.Children(v.Text(pipeline.FormatReadingTime(p.ReadingTime)+" read")))
}

func mailLink(email string) *html.Node {
	return v.Element("a", v.Href("mailto:"+email), v.Children(v.Text("here")))
}

// date formats t with the configured layout, uppercased for the site language.
func (c *composer) date(t time.Time) (string, error) {
	s, err := dateutil.FormatDate(t, c.m.Config.DateFormat)
	if err != nil {
		return "", err
	}
	return c.upper.String(s), nil
}

// displayName is the author name, falling back to the site name.
func displayName(cfg *config.Config) string {
	if cfg.Author.Name != "" {
		return cfg.Author.Name
	}
	return cfg.Name
}

// assetURL links a configured image. External references are kept; site
// paths, relative or not, resolve from the site root.
func assetURL(m *site.Model, ref string) string {
	if fileutil.IsURL(ref) || strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	return m.FileURL(ref)
}
