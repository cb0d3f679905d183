// Package browser hands rendered pages to the user's default browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/go-rod/rod/lib/launcher"
)

// ErrNoBrowser indicates neither the system URL handler nor a
// Chromium-family browser could be started.
var ErrNoBrowser = errors.New("cannot open browser")

// Opener opens a URL for the user.
type Opener interface {
	Open(url string) error
}

// SystemOpener opens URLs with the operating system's URL handler: open on
// macOS, start on Windows, xdg-open elsewhere. When the handler itself is
// missing, a Chromium-family browser found by go-rod's launcher is started
// instead.
type SystemOpener struct {
	// GOOS selects the handler; empty means runtime.GOOS.
	GOOS string
	// LookBrowser finds a fallback browser; nil means launcher.LookPath.
	LookBrowser func() (string, bool)
}

// Open starts the handler on u without waiting for the browser to exit.
func (o SystemOpener) Open(u string) error {
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	name, args := handlerCommand(goos, u)
	err := start(name, args...)
	if err == nil {
		return nil
	}
	if !errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s: %v", ErrNoBrowser, name, err)
	}

	look := o.LookBrowser
	if look == nil {
		look = launcher.LookPath
	}
	bin, ok := look()
	if !ok {
		return fmt.Errorf("%w: %s not found and no Chromium-family browser installed", ErrNoBrowser, name)
	}
	if err := start(bin, u); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNoBrowser, bin, err)
	}
	return nil
}

// handlerCommand returns the argv of the system URL handler for goos.
func handlerCommand(goos, u string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{u}
	case "windows":
		return "cmd", []string{"/c", "start", u}
	default:
		return "xdg-open", []string{u}
	}
}

// start launches name detached from our stdio and reaps it in the background.
func start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// FileURL converts an absolute path to a file:// URL.
// Handles both Unix and Windows paths.
func FileURL(absPath string) string {
	p := filepath.ToSlash(absPath)
	if filepath.VolumeName(absPath) != "" {
		// C:/x must become file:///C:/x
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string) error

// Open calls f(u).
func (f OpenerFunc) Open(u string) error {
	return f(u)
}
