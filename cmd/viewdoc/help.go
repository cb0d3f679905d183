package main

import (
	"fmt"
	"io"
)

// usageHint follows every usage error.
const usageHint = "Try 'viewdoc --help' for more information"

// printUsage prints the help message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: viewdoc [options] [markup-file|package-dir]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Documentation viewer")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -s, --style <name>    Select the custom styles added to the HTML output.")
	fmt.Fprintln(w, "                        Overrides VIEWDOC_STYLE and the config file setting.")
	fmt.Fprintln(w, "                        Unknown names render without styles.")
	fmt.Fprintln(w, "      --list-styles     Print the configured style names and exit.")
	fmt.Fprintln(w, "  -n, --no-browser      Print the output path instead of opening a browser.")
	fmt.Fprintln(w, "  -c, --config <path>   Config file (default: $XDG_CONFIG_HOME/viewdoc/config.yaml)")
	fmt.Fprintln(w, "      --verbose         Log debug details to stderr.")
	fmt.Fprintln(w, "  -h, --help            Print this help message and exit.")
	fmt.Fprintln(w, "  -v, --version         Print the version string and exit.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  markup-file           Markdown file to view.")
	fmt.Fprintln(w, "  package-dir           Package whose long description to view.")
	fmt.Fprintln(w, "                        Defaults to the current working directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  VIEWDOC_CONFIG        Config file path")
	fmt.Fprintln(w, "  VIEWDOC_PYTHON        Interpreter used to run setup.py")
	fmt.Fprintln(w, "  VIEWDOC_STYLE         Style name")
}

// printVersion prints the version string.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "viewdoc %s\n", Version)
}
