package portfolio

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Renderer converts a markdown body to an HTML fragment. The default is
// goldmark with chroma highlighting configured from Config.
type Renderer interface {
	ToHTML(ctx context.Context, markdown string) (string, error)
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for phase progress. The default discards logs.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithWorkers sets the number of concurrent renders and writes.
// Zero or less selects ResolveWorkers(0).
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.workers = ResolveWorkers(n)
	}
}

// WithDrafts includes posts and pages marked "draft: true".
func WithDrafts(include bool) Option {
	return func(b *Builder) {
		b.drafts = include
	}
}

// WithRenderer replaces the markdown renderer.
func WithRenderer(r Renderer) Option {
	return func(b *Builder) {
		b.renderer = r
	}
}

// WithAssetLoader replaces the stylesheet source. By default the embedded
// stylesheet is used, overridden by Config.ThemeDir when set.
func WithAssetLoader(l AssetLoader) Option {
	return func(b *Builder) {
		b.assetLoader = l
	}
}

// Report summarizes a successful build.
type Report struct {
	Posts    int
	Pages    int // standalone pages from content
	Tags     int
	Files    int // HTML documents written
	Output   string
	Duration time.Duration
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
