// Package workdir changes the process working directory for the duration of
// an operation and puts it back afterwards.
//
// The working directory is process-wide state. Every Enter must be paired
// with a deferred Restore on the same goroutine:
//
//	guard, err := workdir.Enter(dir)
//	if err != nil {
//	    return err
//	}
//	defer guard.Restore()
package workdir

import (
	"errors"
	"fmt"
	"os"
)

// ErrChdir indicates the working directory could not be changed.
var ErrChdir = errors.New("cannot change working directory")

// Guard remembers the directory that was current before Enter.
type Guard struct {
	saved    string
	restored bool
}

// Enter saves the current working directory and changes into dir.
// An empty dir keeps the current directory but still returns a usable Guard.
func Enter(dir string) (*Guard, error) {
	saved, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChdir, err)
	}

	if dir != "" {
		if err := os.Chdir(dir); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrChdir, err)
		}
	}

	return &Guard{saved: saved}, nil
}

// Restore changes back to the saved directory. Calling it more than once is
// a no-op.
func (g *Guard) Restore() error {
	if g == nil || g.restored {
		return nil
	}
	g.restored = true
	if err := os.Chdir(g.saved); err != nil {
		return fmt.Errorf("%w: %v", ErrChdir, err)
	}
	return nil
}
