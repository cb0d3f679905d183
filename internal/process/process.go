// Package process runs external build scripts synchronously, capturing their
// standard output.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// SearchPathVar is the module search path variable handed to the interpreter.
const SearchPathVar = "PYTHONPATH"

// ErrStart indicates the command could not be started (missing binary,
// permission denied, bad working directory).
var ErrStart = errors.New("cannot start command")

// Result is the outcome of a finished command.
type Result struct {
	ExitCode int
	Output   []byte // standard output only
}

// Runner executes commands with a fixed environment.
type Runner struct {
	Env    []string
	Stderr io.Writer // child stderr; defaults to os.Stderr
	Logger zerolog.Logger
}

// NewRunner creates a Runner whose environment is the caller's, with
// PYTHONPATH set to the caller's entries followed by searchPath.
func NewRunner(searchPath []string) *Runner {
	return &Runner{
		Env:    WithSearchPath(os.Environ(), searchPath),
		Stderr: os.Stderr,
		Logger: zerolog.Nop(),
	}
}

// WithSearchPath returns a copy of environ where PYTHONPATH lists its current
// entries followed by extra, joined with the OS list separator. Duplicate
// entries keep their first position.
func WithSearchPath(environ, extra []string) []string {
	prefix := SearchPathVar + "="

	var current []string
	out := make([]string, 0, len(environ)+1)
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			current = filepath.SplitList(strings.TrimPrefix(kv, prefix))
			continue
		}
		out = append(out, kv)
	}

	seen := make(map[string]bool)
	var entries []string
	for _, dir := range append(current, extra...) {
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true
		entries = append(entries, dir)
	}
	if len(entries) == 0 {
		return out
	}
	return append(out, prefix+strings.Join(entries, string(os.PathListSeparator)))
}

// Run executes name with args in dir and blocks until it exits. The argument
// vector is passed as is, never through a shell. A non-zero exit status is
// reported in Result with a nil error; only a failure to start returns an
// error. Cancelling ctx kills the child's whole process group.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	var stdout bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = r.Env
	cmd.Stdout = &stdout
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		return KillProcessGroup(cmd.Process.Pid)
	}

	r.Logger.Debug().Str("dir", dir).Str("command", name).Strs("args", args).Msg("running build script")

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		// Exited on its own with a non-zero status.
	case ctx.Err() != nil:
		return Result{}, ctx.Err()
	default:
		return Result{}, fmt.Errorf("%w: %s: %v", ErrStart, name, err)
	}

	res := Result{ExitCode: cmd.ProcessState.ExitCode(), Output: stdout.Bytes()}
	r.Logger.Debug().Int("exit", res.ExitCode).Int("bytes", len(res.Output)).Msg("build script finished")
	return res, nil
}
