package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// ConversionError reports that the converter aborted on its input.
// It matches both ErrHTMLConversion and the underlying cause with errors.Is.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%v with error: %v", ErrHTMLConversion, e.Err)
}

func (e *ConversionError) Unwrap() []error {
	return []error{ErrHTMLConversion, e.Err}
}

// DefaultTitle is used when the document has no heading.
const DefaultTitle = "Document"

// DefaultHighlightStyle is the chroma style used for unknown style names.
const DefaultHighlightStyle = "github"

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="generator" content="viewdoc">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

// HTMLConverter abstracts markup to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// inline-styled syntax highlighting using the named chroma style.
func NewGoldmarkConverter(highlightStyle string) *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			MarkExtension,      // ==highlight==
			highlighting.NewHighlighting(
				highlighting.WithStyle(ResolveHighlightStyle(highlightStyle)),
				// Inline styles keep the page self-contained next to the source.
				highlighting.WithFormatOptions(chromahtml.WithClasses(false)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // anchors for in-page links
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ResolveHighlightStyle returns name if chroma knows it, DefaultHighlightStyle otherwise.
func ResolveHighlightStyle(name string) string {
	if _, ok := chromastyles.Registry[name]; ok {
		return name
	}
	return DefaultHighlightStyle
}

// ToHTML converts Markdown content to a standalone HTML5 document whose title
// is the first heading. A converter panic is reported as a ConversionError.
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
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: &ConversionError{Err: fmt.Errorf("converter aborted: %v", r)}}
			}
		}()

		source := []byte(content)
		doc := c.md.Parser().Parse(text.NewReader(source))

		var buf bytes.Buffer
		if err := c.md.Renderer().Render(&buf, source, doc); err != nil {
			done <- result{err: &ConversionError{Err: err}}
			return
		}
		title := headingTitle(doc, source)
		if title == "" {
			title = DefaultTitle
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, html.EscapeString(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// headingTitle returns the plain text of the first top-level level-one
// heading in doc, or "" if there is none. Headings inside code blocks,
// quotes and lists are not considered.
func headingTitle(doc gast.Node, source []byte) string {
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*gast.Heading)
		if !ok || h.Level != 1 {
			continue
		}
		var b strings.Builder
		_ = gast.Walk(h, func(c gast.Node, entering bool) (gast.WalkStatus, error) {
			if !entering {
				return gast.WalkContinue, nil
			}
			switch t := c.(type) {
			case *gast.Text:
				b.Write(t.Segment.Value(source))
				if t.SoftLineBreak() {
					b.WriteByte(' ')
				}
			case *gast.String:
				b.Write(t.Value)
			}
			return gast.WalkContinue, nil
		})
		return strings.TrimSpace(b.String())
	}
	return ""
}

// FirstHeading returns the text of the first level-one heading of markdown,
// or "" if there is none.
func (c *GoldmarkConverter) FirstHeading(markdown string) string {
	source := []byte(markdown)
	return headingTitle(c.md.Parser().Parse(text.NewReader(source)), source)
}
