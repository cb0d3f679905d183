// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForNoBuildScript returns a hint for package directories without setup.py.
func ForNoBuildScript() string {
	return format("pass a markup file, or run viewdoc from the package root")
}

// ForBadBuildScript returns hints for build scripts that failed to run or
// exited with an error.
func ForBadBuildScript(python string) string {
	return formatHints([]string{
		"run '" + python + " setup.py --long-description' to see the error",
		"set VIEWDOC_PYTHON to use another interpreter",
	})
}

// ForConfigParse returns a hint for malformed configuration files.
func ForConfigParse(path string) string {
	if path == "" {
		return format("fix the YAML syntax of the config file")
	}
	return format("fix the YAML syntax or delete " + path + " to restore defaults")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
