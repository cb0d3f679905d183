package main

import (
	"context"
	"fmt"

	viewdoc "github.com/alnah/go-viewdoc"
	"github.com/alnah/go-viewdoc/internal/browser"
	"github.com/alnah/go-viewdoc/internal/config"
	"github.com/alnah/go-viewdoc/internal/logging"
	"github.com/alnah/go-viewdoc/internal/process"
)

// defaultTarget is rendered when no path argument is given.
const defaultTarget = "."

// run executes one invocation and returns the process exit code.
// The command line is fully validated before the filesystem is touched.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		return report(env.Stderr, err, "")
	}
	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		printVersion(env.Stdout)
		return ExitSuccess
	}
	if len(positional) > 1 {
		return report(env.Stderr, fmt.Errorf("%w: too many arguments", ErrUsage), "")
	}

	logger := logging.New(env.Stderr, flags.verbose)
	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(logger, env.Environ())

	configPath := resolveConfigPath(flags.config, envCfg)
	cfg, err := config.Load(configPath, logging.Component(logger, "config"))
	if err != nil {
		return report(env.Stderr, err, hintFor(err, "", configPath))
	}

	if flags.listStyles {
		for _, name := range cfg.StyleNames() {
			fmt.Fprintln(env.Stdout, name)
		}
		return ExitSuccess
	}

	python := resolvePython(cfg, envCfg)
	runner := process.NewRunner(cfg.Viewdoc.SearchPath)
	runner.Stderr = env.Stderr
	runner.Logger = logging.Component(logger, "process")

	renderer := viewdoc.NewRenderer(
		viewdoc.WithHighlightStyle(cfg.Viewdoc.Highlight),
		viewdoc.WithRendererLogger(logging.Component(logger, "renderer")),
	)
	viewer := viewdoc.NewViewer(
		viewdoc.WithStyle(resolveFragment(cfg, flags, envCfg)),
		viewdoc.WithPython(python),
		viewdoc.WithRunner(runner),
		viewdoc.WithRenderer(renderer),
		viewdoc.WithLogger(logging.Component(logger, "viewer")),
	)

	target := defaultTarget
	if len(positional) == 1 {
		target = positional[0]
	}

	out, err := viewer.RenderPath(ctx, target)
	if err != nil {
		return report(env.Stderr, err, hintFor(err, python, configPath))
	}

	if flags.noBrowser {
		fmt.Fprintln(env.Stdout, out)
		return ExitSuccess
	}

	u := browser.FileURL(out)
	logger.Debug().Str("url", u).Msg("opening browser")
	if err := env.Opener.Open(u); err != nil {
		return report(env.Stderr, fmt.Errorf("opening %s: %w", u, err), "")
	}
	return ExitSuccess
}
