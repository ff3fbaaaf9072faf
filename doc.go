// Package portfolio generates a static portfolio and blog from a directory of
// markdown files.
//
// # Quick Start
//
// Load a configuration, create a builder and build the site:
//
//	cfg, err := portfolio.LoadConfig("site.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, err := portfolio.New(cfg, portfolio.WithLogger(slog.Default()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := b.Build(ctx, "content", "public")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Files, "pages written")
//
// # Build Pipeline
//
// A build runs these phases in order and stops at the first error:
//
//  1. Load: markdown files and their YAML front matter become posts and pages
//  2. Model: bodies are rendered with goldmark, posts sorted and tags grouped
//  3. Compose: every page kind is assembled as an HTML tree
//  4. Emit: documents, stylesheets, feed and sitemap are written to a staging
//     directory that replaces the output directory on success
//
// Nothing is written before the emit phase, so a malformed file leaves the
// previous output untouched.
//
// # Content Layout
//
// Files under the posts directory (default "posts") are blog posts and need a
// title and a date. Every other markdown file is a page and needs a title;
// "layout: about" selects the about page layout. The content root index.md
// is reserved for the generated post list.
//
// # Errors
//
// Failures are typed: LoadError for content, ConfigError for configuration
// and RenderError for markdown conversion. Match them with errors.Is against
// ErrLoad, ErrConfig and ErrRender, or errors.As for the offending path.
package portfolio
