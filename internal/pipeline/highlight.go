package pipeline

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Highlighter plugs code block highlighting into the goldmark pipeline.
type Highlighter interface {
	goldmark.Extender
}

// NewChromaHighlighter highlights fenced code with chroma, emitting CSS
// classes carrying prefix instead of inline styles. Blocks in an unknown
// language fall back to a plain <pre><code class="language-x">.
func NewChromaHighlighter(prefix, style string) Highlighter {
	return highlighting.NewHighlighting(
		highlighting.WithStyle(style),
		highlighting.WithGuessLanguage(false),
		highlighting.WithFormatOptions(
			chromahtml.WithClasses(true),
			chromahtml.ClassPrefix(prefix),
		),
	)
}

// SyntaxCSS returns the stylesheet matching NewChromaHighlighter(prefix, style).
// Unknown styles resolve to chroma's fallback style.
func SyntaxCSS(style, prefix string) (string, error) {
	formatter := chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.ClassPrefix(prefix),
	)
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, styles.Get(style)); err != nil {
		return "", fmt.Errorf("writing syntax css for %q: %w", style, err)
	}
	return buf.String(), nil
}
