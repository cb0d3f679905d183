package viewdoc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-viewdoc/internal/fileutil"
)

// TargetKind tells how a path argument is rendered.
type TargetKind int

const (
	InvalidTarget TargetKind = iota // missing or neither file nor directory
	FileTarget                      // markup file rendered directly
	PackageTarget                   // package directory with a build script
)

func (k TargetKind) String() string {
	switch k {
	case FileTarget:
		return "file"
	case PackageTarget:
		return "package"
	default:
		return "invalid"
	}
}

// Target is a classified path argument.
type Target struct {
	Kind TargetKind
	Arg  string // as given by the caller
	Path string // absolute, "~" expanded; empty for InvalidTarget
}

// Classify decides once whether path names a markup file or a package
// directory. Symlinks are followed. Missing paths and special files yield an
// InvalidTarget together with ErrNotFound.
func Classify(path string) (Target, error) {
	t := Target{Kind: InvalidTarget, Arg: path}

	expanded := fileutil.ExpandHome(path)
	info, err := os.Stat(expanded)
	if err != nil {
		return t, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return t, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	switch {
	case info.Mode().IsRegular():
		t.Kind = FileTarget
	case info.IsDir():
		t.Kind = PackageTarget
	default:
		return t, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	t.Path = abs
	return t, nil
}
