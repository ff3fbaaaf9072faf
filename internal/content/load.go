package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/matiasglessi/portfolio/internal/fileutil"
	"github.com/matiasglessi/portfolio/internal/pipeline"
	"github.com/matiasglessi/portfolio/internal/siteerr"
)

// Load walks root in lexical order and parses every markdown file into the
// corpus. Files under opts.PostsDir become documents; any other markdown file
// becomes a page.
func Load(ctx context.Context, root string, opts LoadOptions) (*Corpus, error) {
	if root == "" {
		return nil, fileutil.ErrEmptyPath
	}
	opts = opts.withDefaults()

	info, err := os.Stat(root)
	if err != nil {
		return nil, &siteerr.LoadError{Path: root, Reason: "reading content root", Err: err}
	}
	if !info.IsDir() {
		return nil, siteerr.Load(root, "content root is not a directory")
	}

	l := &loader{
		root:   root,
		opts:   opts,
		corpus: &Corpus{Root: root},
		owners: make(map[string]string),
	}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &siteerr.LoadError{Path: p, Reason: "reading content", Err: walkErr}
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() && p != root && l.skipped(p) {
			return filepath.SkipDir
		}
		if d.IsDir() || !fileutil.IsMarkdown(d.Name()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		return l.loadFile(p)
	})
	if err != nil {
		return nil, err
	}
	return l.corpus, nil
}

// skipped reports whether dir is one of opts.Skip. Paths are compared in
// absolute form so relative and absolute spellings match.
func (l *loader) skipped(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	for _, s := range l.opts.Skip {
		if s == "" {
			continue
		}
		if skip, err := filepath.Abs(s); err == nil && skip == abs {
			return true
		}
	}
	return false
}

func (o LoadOptions) withDefaults() LoadOptions {
	o.PostsDir = strings.Trim(filepath.ToSlash(filepath.Clean(o.PostsDir)), "/")
	if o.PostsDir == "" || o.PostsDir == "." {
		o.PostsDir = defaultPosts
	}
	if o.ExcerptLength <= 0 {
		o.ExcerptLength = DefaultExcerptLength
	}
	return o
}

type loader struct {
	root   string
	opts   LoadOptions
	corpus *Corpus
	owners map[string]string // output path -> source file
}

func (l *loader) loadFile(p string) error {
	rel, err := filepath.Rel(l.root, p)
	if err != nil {
		return &siteerr.LoadError{Path: p, Reason: "resolving path", Err: err}
	}
	rel = filepath.ToSlash(rel)

	// #nosec G304 -- p comes from walking the content root
	data, err := os.ReadFile(p)
	if err != nil {
		return &siteerr.LoadError{Path: p, Reason: "reading file", Err: err}
	}

	meta, body, err := splitFrontMatter(data)
	if err != nil {
		if errors.Is(err, errMissingFrontMatter) {
			return siteerr.Load(p, err.Error())
		}
		return &siteerr.LoadError{Path: p, Reason: "invalid front matter", Err: err}
	}

	if postsRel, ok := strings.CutPrefix(rel, l.opts.PostsDir+"/"); ok {
		return l.addDocument(p, postsRel, meta, body)
	}
	return l.addPage(p, rel, meta, body)
}

func (l *loader) addDocument(p, rel string, meta map[string]any, body string) error {
	f := &fields{meta: meta}
	title, err := f.requiredString(keyTitle)
	if err != nil {
		return siteerr.Load(p, err.Error())
	}
	date, err := f.date()
	if err != nil {
		return &siteerr.LoadError{Path: p, Reason: "invalid date", Err: err}
	}
	tags, err := f.tags()
	if err != nil {
		return siteerr.Load(p, err.Error())
	}
	draft, err := f.draft()
	if err != nil {
		return siteerr.Load(p, err.Error())
	}
	excerpt := f.optionalString(keyExcerpt, keyDescription)
	if _, err := f.layout(); err != nil {
		return siteerr.Load(p, err.Error())
	}
	if draft && !l.opts.IncludeDrafts {
		return nil
	}

	id := sourceID(rel)
	if id == "" {
		return siteerr.Load(p, "index.md directly under the posts directory has no post path")
	}
	doc := &Document{
		ID:         id,
		SourcePath: p,
		Title:      title,
		Date:       date,
		Tags:       tags,
		Body:       body,
		Excerpt:    l.excerpt(excerpt, body),
		Metadata:   f.meta,
		Draft:      draft,
		Order:      len(l.corpus.Documents),
	}
	if err := l.claim(doc.OutputPath(), p); err != nil {
		return err
	}
	l.corpus.Documents = append(l.corpus.Documents, doc)
	return nil
}

func (l *loader) addPage(p, rel string, meta map[string]any, body string) error {
	id := sourceID(rel)
	if id == "" {
		// The site index is generated from the post list.
		return siteerr.Load(p, "index.md at the content root is reserved for the post list")
	}
	if first, _, _ := strings.Cut(id, "/"); reservedRoutes[first] {
		return siteerr.Loadf(p, "page path %q collides with the generated %q route", id, first)
	}

	f := &fields{meta: meta}
	title, err := f.requiredString(keyTitle)
	if err != nil {
		return siteerr.Load(p, err.Error())
	}
	kind, err := f.layout()
	if err != nil {
		return siteerr.Load(p, err.Error())
	}
	draft, err := f.draft()
	if err != nil {
		return siteerr.Load(p, err.Error())
	}
	if draft && !l.opts.IncludeDrafts {
		return nil
	}

	page := &Page{
		ID:          id,
		SourcePath:  p,
		Title:       title,
		Description: f.optionalString(keyDescription, keyExcerpt),
		Body:        body,
		Kind:        kind,
		Metadata:    f.meta,
		Order:       len(l.corpus.Pages),
	}
	if err := l.claim(page.OutputPath(), p); err != nil {
		return err
	}
	l.corpus.Pages = append(l.corpus.Pages, page)
	return nil
}

// claim records that source owns outPath, failing when another file already does.
func (l *loader) claim(outPath, source string) error {
	if prev, ok := l.owners[outPath]; ok {
		return siteerr.Loadf(source, "output path %q already produced by %s", outPath, prev)
	}
	l.owners[outPath] = source
	return nil
}

func (l *loader) excerpt(explicit, body string) string {
	if explicit != "" {
		return explicit
	}
	return pipeline.Truncate(pipeline.FirstParagraph(body), l.opts.ExcerptLength)
}

// sourceID maps "about.md" and "about/index.md" to "about". A bare
// "index.md" maps to "".
func sourceID(rel string) string {
	id := fileutil.TrimMarkdownExt(rel)
	if id == indexBase {
		return ""
	}
	if dir, base := path.Split(id); base == indexBase {
		return strings.TrimSuffix(dir, "/")
	}
	return id
}

// String summarizes the corpus for logs.
func (c *Corpus) String() string {
	return fmt.Sprintf("%d documents, %d pages", len(c.Documents), len(c.Pages))
}
