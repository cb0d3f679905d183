package viewdoc

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/alnah/go-viewdoc/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.StyleInjector        = pipeline.HeadInjection{}
)

// filePermissions is used for artifacts: rw-r--r--.
const filePermissions = 0o644

// Renderer converts markup to styled HTML files.
type Renderer struct {
	highlightStyle string
	logger         zerolog.Logger
	preprocessor   pipeline.MarkdownPreprocessor
	htmlConverter  pipeline.HTMLConverter
	styleInjector  pipeline.StyleInjector
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithHighlightStyle selects the chroma style for fenced code blocks.
// Unknown names fall back to "github".
func WithHighlightStyle(name string) RendererOption {
	return func(r *Renderer) {
		r.highlightStyle = name
	}
}

// WithRendererLogger sets the logger used for debug output.
func WithRendererLogger(l zerolog.Logger) RendererOption {
	return func(r *Renderer) {
		r.logger = l
	}
}

// NewRenderer creates a Renderer backed by Goldmark.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		highlightStyle: pipeline.DefaultHighlightStyle,
		logger:         zerolog.Nop(),
		preprocessor:   &pipeline.CommonMarkPreprocessor{},
		styleInjector:  pipeline.HeadInjection{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.htmlConverter = pipeline.NewGoldmarkConverter(r.highlightStyle)
	return r
}

// Convert turns markup text into a standalone HTML document. Conversion
// failures are returned as *ConversionError.
func (r *Renderer) Convert(ctx context.Context, markup string) (string, error) {
	content := r.preprocessor.PreprocessMarkdown(ctx, markup)
	return r.htmlConverter.ToHTML(ctx, content)
}

// ApplyStyle inserts fragment right before the first "</head>" in html.
// HTML without that marker is returned unchanged.
func ApplyStyle(html, fragment string) string {
	return pipeline.ApplyStyle(html, fragment)
}

// RenderToFile converts markup, applies the style fragment and writes the
// result to outputPath, which it returns. A failed write may leave a partial
// file behind.
func (r *Renderer) RenderToFile(ctx context.Context, markup, outputPath, fragment string) (string, error) {
	html, err := r.Convert(ctx, markup)
	if err != nil {
		return "", err
	}
	html = r.styleInjector.InjectStyle(html, fragment)

	if err := os.WriteFile(outputPath, []byte(html), filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	r.logger.Debug().Str("output", outputPath).Int("bytes", len(html)).Msg("rendered")
	return outputPath, nil
}

// RenderFileToFile reads inputPath and renders it with RenderToFile.
func (r *Renderer) RenderFileToFile(ctx context.Context, inputPath, outputPath, fragment string) (string, error) {
	data, err := os.ReadFile(inputPath) // #nosec G304 -- path comes from the user
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	r.logger.Debug().Str("input", inputPath).Int("bytes", len(data)).Msg("read source")
	return r.RenderToFile(ctx, string(data), outputPath, fragment)
}
