// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyName indicates an artifact name was requested for an empty base name.
var ErrEmptyName = errors.New("base name cannot be empty")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}


// ExpandHome replaces a leading "~" or "~/" with the user's home directory.
// Other forms ("~user") and paths without a tilde are returned unchanged, as
// is the input when the home directory cannot be determined.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// HiddenHTMLName returns the dot-prefixed HTML sibling name for a source file:
// "report.txt" becomes ".report.txt.html".
func HiddenHTMLName(base string) (string, error) {
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "", ErrEmptyName
	}
	return "." + base + ".html", nil
}
