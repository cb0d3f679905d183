package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	viewdoc "github.com/alnah/go-viewdoc"
	"github.com/alnah/go-viewdoc/internal/config"
	"github.com/alnah/go-viewdoc/internal/hints"
)

// Exit codes for the viewdoc CLI. Every failure exits with 1.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ErrUsage indicates a malformed command line.
var ErrUsage = errors.New("usage error")

// exitCodeFor returns the exit code for an error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// hintFor returns an optional hint line for err.
func hintFor(err error, python, configPath string) string {
	switch {
	case errors.Is(err, config.ErrConfigParse):
		return hints.ForConfigParse(configPath)
	case errors.Is(err, viewdoc.ErrNoBuildScript):
		return hints.ForNoBuildScript()
	case errors.Is(err, viewdoc.ErrBadBuildScript):
		return hints.ForBadBuildScript(python)
	default:
		return ""
	}
}

// report prints the single diagnostic for err on w and returns the exit code.
func report(w io.Writer, err error, hint string) int {
	msg := err.Error()
	switch {
	case errors.Is(err, context.Canceled):
		msg = "interrupted"
	case errors.Is(err, ErrUsage):
		msg = strings.TrimPrefix(msg, ErrUsage.Error()+": ")
	}
	fmt.Fprintf(w, "viewdoc: %s%s\n", msg, hint)
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(w, usageHint)
	}
	return exitCodeFor(err)
}
