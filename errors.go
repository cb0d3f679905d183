package viewdoc

import (
	"errors"

	"github.com/alnah/go-viewdoc/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrNotFound       = errors.New("no such file or directory")
	ErrNoBuildScript  = errors.New("no build script found")
	ErrBadBuildScript = errors.New("bad build script")
	ErrReadSource     = errors.New("cannot read source")
	ErrWriteOutput    = errors.New("cannot write output")

	// ErrHTMLConversion is matched by every *ConversionError.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)

// ConversionError reports that markup conversion aborted. Use errors.As to
// reach the underlying cause.
type ConversionError = pipeline.ConversionError
