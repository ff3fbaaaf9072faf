package portfolio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/matiasglessi/portfolio/internal/assets"
	"github.com/matiasglessi/portfolio/internal/config"
	"github.com/matiasglessi/portfolio/internal/content"
	"github.com/matiasglessi/portfolio/internal/emit"
	"github.com/matiasglessi/portfolio/internal/logfields"
	"github.com/matiasglessi/portfolio/internal/pipeline"
	"github.com/matiasglessi/portfolio/internal/site"
	"github.com/matiasglessi/portfolio/internal/theme"
)

// Compile-time interface implementation checks.
var (
	_ Renderer           = (*pipeline.GoldmarkConverter)(nil)
	_ site.Renderer      = Renderer(nil)
	_ assets.AssetLoader = AssetLoader(nil)
)

// Builder runs the build pipeline for one configuration. A Builder holds no
// per-build state and may be reused, but not concurrently on the same output.
type Builder struct {
	cfg         *config.Config
	logger      *slog.Logger
	workers     int
	drafts      bool
	renderer    Renderer
	assetLoader AssetLoader
}

// New creates a Builder. The configuration is validated again so callers
// that build a Config in code get the same checks as LoadConfig.
func New(cfg *Config, opts ...Option) (*Builder, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:     cfg,
		logger:  discardLogger(),
		workers: ResolveWorkers(0),
	}
	for _, opt := range opts {
		opt(b)
	}

	if b.renderer == nil {
		b.renderer = pipeline.NewGoldmarkConverter(
			pipeline.WithHighlighter(pipeline.NewChromaHighlighter(cfg.HighlightPrefix, cfg.HighlightStyle)),
		)
	}
	return b, nil
}

// Build reads contentRoot and replaces outRoot with the generated site.
// Relative static and theme directories in the configuration resolve against
// contentRoot. On error outRoot is left as it was.
func (b *Builder) Build(ctx context.Context, contentRoot, outRoot string) (*Report, error) {
	start := time.Now()
	if contentRoot == "" || outRoot == "" {
		return nil, ErrEmptyPath
	}
	outRoot, err := checkOverlap(contentRoot, outRoot)
	if err != nil {
		return nil, err
	}
	cfg := b.resolveDirs(contentRoot)

	styles := b.assetLoader
	if styles == nil {
		loader, err := NewAssetLoader(cfg.ThemeDir)
		if err != nil {
			return nil, fmt.Errorf("theme directory %s: %w", cfg.ThemeDir, err)
		}
		if themed(loader) {
			b.logger.Debug("theme stylesheet override active", logfields.Path(cfg.ThemeDir))
		}
		styles = loader
	}

	b.logger.Info("loading content", logfields.Phase("load"), logfields.Path(contentRoot))
	corpus, err := content.Load(ctx, contentRoot, content.LoadOptions{
		PostsDir:      cfg.PostsDir,
		IncludeDrafts: b.drafts,
		Skip:          append(slices.Clone(cfg.StaticDirs), cfg.ThemeDir, outRoot),
	})
	if err != nil {
		return nil, err
	}
	b.logger.Debug("content loaded", logfields.Phase("load"), slog.String("corpus", corpus.String()))

	b.logger.Info("rendering", logfields.Phase("model"), logfields.Count(len(corpus.Documents)+len(corpus.Pages)), logfields.Workers(b.workers))
	model, err := site.Build(ctx, corpus, cfg, b.renderer, site.BuildOptions{Workers: b.workers})
	if err != nil {
		return nil, err
	}

	results, err := theme.ComposeAll(model)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("composed", logfields.Phase("compose"), logfields.Count(len(results)))

	out, err := emit.Assemble(model, results, styles)
	if err != nil {
		return nil, err
	}
	out.Workers = b.workers

	b.logger.Info("writing", logfields.Phase("emit"), logfields.Output(outRoot), logfields.Count(len(out.Pages)+len(out.Files)))
	if err := emit.Emit(ctx, outRoot, out); err != nil {
		return nil, err
	}

	report := &Report{
		Posts:    len(model.Posts),
		Pages:    len(model.Pages),
		Tags:     len(model.Tags),
		Files:    len(out.Pages),
		Output:   outRoot,
		Duration: time.Since(start),
	}
	b.logger.Info("build complete",
		logfields.Output(outRoot),
		logfields.Count(report.Files),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

// resolveDirs returns a copy of the configuration with relative static and
// theme directories joined to contentRoot.
func (b *Builder) resolveDirs(contentRoot string) *config.Config {
	cfg := *b.cfg
	cfg.StaticDirs = make([]string, len(b.cfg.StaticDirs))
	for i, dir := range b.cfg.StaticDirs {
		cfg.StaticDirs[i] = joinRelative(contentRoot, dir)
	}
	if cfg.ThemeDir != "" {
		cfg.ThemeDir = joinRelative(contentRoot, cfg.ThemeDir)
	}
	return &cfg
}

func joinRelative(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// checkOverlap returns outRoot as an absolute path. It rejects an output
// directory that is, or contains, the content root, since replacing it would
// delete the sources.
func checkOverlap(contentRoot, outRoot string) (string, error) {
	src, err := filepath.Abs(contentRoot)
	if err != nil {
		return "", err
	}
	out, err := filepath.Abs(outRoot)
	if err != nil {
		return "", err
	}
	if src == out || strings.HasPrefix(src, out+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrOutputOverlaps, outRoot)
	}
	return out, nil
}
