package viewdoc

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/alnah/go-viewdoc/internal/fileutil"
	"github.com/alnah/go-viewdoc/internal/process"
	"github.com/alnah/go-viewdoc/internal/workdir"
)

// Fixed names used for package directories.
const (
	BuildScript         = "setup.py"
	LongDescriptionFlag = "--long-description"
	LongDescriptionFile = ".long-description.html"
	DefaultPython       = "python3"
)

// ProcessResult is the outcome of a build script run.
type ProcessResult = process.Result

// BuildRunner runs an interpreter in a directory and captures its stdout.
// A non-zero exit is reported in ProcessResult, not as an error.
type BuildRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) (ProcessResult, error)
}

// Compile-time interface implementation check.
var _ BuildRunner = (*process.Runner)(nil)

// Viewer renders a path argument to its HTML artifact.
type Viewer struct {
	renderer *Renderer
	runner   BuildRunner
	style    string
	python   string
	logger   zerolog.Logger
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithStyle sets the style fragment injected into every page.
func WithStyle(fragment string) Option {
	return func(v *Viewer) {
		v.style = fragment
	}
}

// WithPython sets the interpreter used to run the build script.
// An empty name keeps the default.
func WithPython(interpreter string) Option {
	return func(v *Viewer) {
		if interpreter != "" {
			v.python = interpreter
		}
	}
}

// WithRunner replaces the build script runner.
func WithRunner(r BuildRunner) Option {
	return func(v *Viewer) {
		v.runner = r
	}
}

// WithRenderer replaces the document renderer.
func WithRenderer(r *Renderer) Option {
	return func(v *Viewer) {
		v.renderer = r
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(v *Viewer) {
		v.logger = l
	}
}

// NewViewer creates a Viewer. Without options it renders unstyled pages and
// runs build scripts with python3 in the caller's environment.
func NewViewer(opts ...Option) *Viewer {
	v := &Viewer{
		python: DefaultPython,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.renderer == nil {
		v.renderer = NewRenderer(WithRendererLogger(v.logger))
	}
	if v.runner == nil {
		v.runner = process.NewRunner(nil)
	}
	return v
}

// RenderPath renders a markup file or a package's long description and
// returns the absolute artifact path. The working directory is the same
// before and after the call, whatever the outcome.
func (v *Viewer) RenderPath(ctx context.Context, path string) (string, error) {
	target, err := Classify(path)
	if err != nil {
		return "", err
	}
	v.logger.Debug().Str("target", target.Kind.String()).Str("path", target.Path).Msg("classified")

	switch target.Kind {
	case FileTarget:
		return v.renderFile(ctx, target.Path)
	case PackageTarget:
		return v.renderLongDescription(ctx, target.Path)
	default:
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
}

// renderFile renders absPath to .<name>.html in the same directory.
func (v *Viewer) renderFile(ctx context.Context, absPath string) (out string, err error) {
	dir, base := filepath.Split(absPath)

	name, err := fileutil.HiddenHTMLName(base)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, absPath)
	}

	guard, err := workdir.Enter(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	defer func() {
		if rerr := guard.Restore(); rerr != nil && err == nil {
			out, err = "", rerr
		}
	}()

	return v.renderer.RenderFileToFile(ctx, absPath, filepath.Join(dir, name), v.style)
}

// renderLongDescription runs the package's build script in dir and renders
// its standard output to .long-description.html.
func (v *Viewer) renderLongDescription(ctx context.Context, dir string) (out string, err error) {
	guard, err := workdir.Enter(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	defer func() {
		if rerr := guard.Restore(); rerr != nil && err == nil {
			out, err = "", rerr
		}
	}()

	if !fileutil.FileExists(BuildScript) {
		return "", fmt.Errorf("%w in %s", ErrNoBuildScript, dir)
	}

	res, err := v.runner.Run(ctx, dir, v.python, BuildScript, LongDescriptionFlag)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrBadBuildScript, err)
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("%w: %s exited with status %d", ErrBadBuildScript, BuildScript, res.ExitCode)
	}

	return v.renderer.RenderToFile(ctx, string(res.Output), filepath.Join(dir, LongDescriptionFile), v.style)
}
