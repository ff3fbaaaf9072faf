package pipeline

import (
	"context"
	"strings"
)

const byteOrderMark = "\uFEFF"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor normalizes source text before goldmark sees it.
// It never changes characters inside a line, so code comes through as written.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown strips a byte order mark and converts \r\n and \r to \n.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	content = strings.TrimPrefix(content, byteOrderMark)
	return lineEndings.Replace(content)
}

func normalizeLineEndings(s string) string { return lineEndings.Replace(s) }
