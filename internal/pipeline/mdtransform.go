package pipeline

import (
	"context"
	"regexp"
	"strings"
)

const utf8BOM = "\uFEFF"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor cleans up text coming from files and build scripts
// before CommonMark conversion.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown strips a leading BOM and normalizes line endings.
// Everything else, code blocks included, reaches Goldmark untouched.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = strings.TrimPrefix(content, utf8BOM)
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return content
}
