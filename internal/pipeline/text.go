package pipeline

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// textParser only parses; it never renders, so highlighting is irrelevant.
var textParser = goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote)).Parser()

// PlainText returns the readable text of a markdown document: prose, link
// labels and code, without markup. Blocks are separated by a blank line.
func PlainText(markdown string) string {
	source := []byte(normalizeLineEndings(markdown))
	doc := textParser.Parse(text.NewReader(source))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if s := strings.TrimSpace(nodeText(n, source)); s != "" {
			blocks = append(blocks, s)
		}
	}
	return strings.Join(blocks, "\n\n")
}

// FirstParagraph returns the plain text of the first top-level paragraph,
// or "" when the document has none.
func FirstParagraph(markdown string) string {
	source := []byte(normalizeLineEndings(markdown))
	doc := textParser.Parse(text.NewReader(source))

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.Kind() != ast.KindParagraph {
			continue
		}
		if s := strings.TrimSpace(nodeText(n, source)); s != "" {
			return s
		}
	}
	return ""
}

// Truncate shortens s to at most limit runes, cutting at the last word
// boundary and appending an ellipsis when anything was removed.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := string(runes[:limit])
	if i := strings.LastIndexAny(cut, " \t\n"); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " \t\n.,;:") + "…"
}

// WordCount counts whitespace-separated words in the plain text of markdown,
// code blocks included.
func WordCount(markdown string) int {
	return len(strings.Fields(PlainText(markdown)))
}

// ReadingTime returns ceil(words / wordsPerMinute), never less than one minute.
// A non-positive wordsPerMinute is treated as 1.
func ReadingTime(words, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 1
	}
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	return max(minutes, 1)
}

// FormatReadingTime renders minutes as "1 minute" or "N minutes".
func FormatReadingTime(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// nodeText collects the text below n. Raw HTML is skipped; soft line breaks
// become spaces.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if node.Type() == ast.TypeBlock && node != n {
				sb.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}
		switch v := node.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		case *ast.AutoLink:
			sb.Write(v.Label(source))
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				sb.Write(line.Value(source))
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
