package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	style      string
	styleSet   bool
	config     string
	help       bool
	version    bool
	listStyles bool
	noBrowser  bool
	verbose    bool
}

// parseFlags parses args (without the program name) and returns the
// positional arguments. Parse failures wrap ErrUsage.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("viewdoc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &cliFlags{}

	fs.StringVarP(&f.style, "style", "s", "", "style added to the HTML output")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")
	fs.BoolVarP(&f.help, "help", "h", false, "print help and exit")
	fs.BoolVarP(&f.version, "version", "v", false, "print version and exit")
	fs.BoolVar(&f.listStyles, "list-styles", false, "print configured style names and exit")
	fs.BoolVarP(&f.noBrowser, "no-browser", "n", false, "print the output path instead of opening it")
	fs.BoolVar(&f.verbose, "verbose", false, "debug logging on stderr")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	f.styleSet = fs.Changed("style")

	return f, fs.Args(), nil
}
