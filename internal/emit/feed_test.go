package emit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/site"
)

// ---------------------------------------------------------------------------
// TestFeed - Atom feed of the newest posts
// ---------------------------------------------------------------------------

func TestFeed(t *testing.T) {
	t.Parallel()

	m := testModel(t, nil)
	feed, err := Feed(m)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	s := string(feed)
	for _, want := range []string{
		"https://ada.example.com/blog/posts/new/",
		"https://ada.example.com/blog/posts/old/",
		"Swift",
		"2022-05-06",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("feed lacks %q:\n%s", want, s)
		}
	}
	if strings.Index(s, "posts/new/") > strings.Index(s, "posts/old/") {
		t.Error("entries should be newest first")
	}

	again, err := Feed(m)
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if !bytes.Equal(feed, again) {
		t.Error("feed should be reproducible")
	}

	t.Run("limit", func(t *testing.T) {
		t.Parallel()

		limited, err := Feed(testModel(t, func(cfg *config.Config) { cfg.Feed.Limit = 1 }))
		if err != nil {
			t.Fatalf("Feed() error = %v", err)
		}
		if strings.Contains(string(limited), "posts/old/") {
			t.Error("limit 1 should keep only the newest post")
		}
	})

	t.Run("no posts", func(t *testing.T) {
		t.Parallel()

		empty := &site.Model{Config: config.DefaultConfig(), BasePath: "/"}
		if feed, err := Feed(empty); feed != nil || err != nil {
			t.Errorf("Feed() = %q, %v, want nil, nil", feed, err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestSitemap - Absolute locations and post dates
// ---------------------------------------------------------------------------

func TestSitemap(t *testing.T) {
	t.Parallel()

	m := testModel(t, nil)
	out, err := Sitemap(m, []string{"", "posts/new", "about"})
	if err != nil {
		t.Fatalf("Sitemap() error = %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://ada.example.com/blog/</loc>
    <lastmod>2022-05-06</lastmod>
  </url>
  <url>
    <loc>https://ada.example.com/blog/posts/new/</loc>
    <lastmod>2022-05-06</lastmod>
  </url>
  <url>
    <loc>https://ada.example.com/blog/about/</loc>
  </url>
</urlset>
`
	if string(out) != want {
		t.Errorf("Sitemap() =\n%s\nwant\n%s", out, want)
	}

	empty := &site.Model{Config: m.Config, BasePath: m.BasePath, Updated: time.Time{}}
	out, err = Sitemap(empty, []string{""})
	if err != nil {
		t.Fatalf("Sitemap() error = %v", err)
	}
	if strings.Contains(string(out), "lastmod") {
		t.Error("index without posts should have no lastmod")
	}
}
