package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// GoldmarkConverter converts Markdown to HTML fragments using goldmark.
// A converter is safe for concurrent use.
type GoldmarkConverter struct {
	md           goldmark.Markdown
	preprocessor MarkdownPreprocessor
}

type converterOptions struct {
	highlighter  Highlighter
	preprocessor MarkdownPreprocessor
}

// ConverterOption configures a GoldmarkConverter.
type ConverterOption func(*converterOptions)

// WithHighlighter replaces the code block highlighter. Nil disables
// highlighting; fenced code then renders as plain <pre><code>.
func WithHighlighter(h Highlighter) ConverterOption {
	return func(o *converterOptions) {
		o.highlighter = h
	}
}

// WithPreprocessor replaces the markdown preprocessor.
func WithPreprocessor(p MarkdownPreprocessor) ConverterOption {
	return func(o *converterOptions) {
		o.preprocessor = p
	}
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM, footnotes, marks,
// heading IDs and chroma highlighting. Raw HTML in the source is escaped and
// shown as text.
func NewGoldmarkConverter(opts ...ConverterOption) *GoldmarkConverter {
	o := converterOptions{
		highlighter:  NewChromaHighlighter("", DefaultHighlightStyle),
		preprocessor: &CommonMarkPreprocessor{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	extensions := []goldmark.Extender{
		extension.GFM,      // Tables, strikethrough, autolinks, task lists
		extension.Footnote, // [^1] footnotes
		MarkExtension,      // ==highlight==
	}
	if o.highlighter != nil {
		extensions = append(extensions, o.highlighter)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			// WithUnsafe is not set: raw HTML goes through rawHTMLEscaper.
			renderer.WithNodeRenderers(util.Prioritized(&rawHTMLEscaper{}, 100)),
		),
	)
	return &GoldmarkConverter{md: md, preprocessor: o.preprocessor}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		source := content
		if c.preprocessor != nil {
			source = c.preprocessor.PreprocessMarkdown(ctx, source)
		}
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(source), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
