package main

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-viewdoc/internal/config"
	"github.com/alnah/go-viewdoc/internal/fileutil"
)

// envPrefix marks the variables read by viewdoc.
const envPrefix = "VIEWDOC_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // VIEWDOC_CONFIG: config file path
	Python     string // VIEWDOC_PYTHON: interpreter for setup.py
	Style      string // VIEWDOC_STYLE: selected style name
	styleSet   bool
}

// knownEnvVars lists valid VIEWDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"VIEWDOC_CONFIG": true,
	"VIEWDOC_PYTHON": true,
	"VIEWDOC_STYLE":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("VIEWDOC_CONFIG"),
		Python:     strings.TrimSpace(getenv("VIEWDOC_PYTHON")),
		Style:      strings.TrimSpace(getenv("VIEWDOC_STYLE")),
	}
	cfg.styleSet = cfg.Style != ""
	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized VIEWDOC_* variables.
// Helps catch typos like VIEWDOC_STYEL.
func warnUnknownEnvVars(logger zerolog.Logger, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			logger.Warn().Str("name", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// resolveConfigPath applies flag > env > default precedence to the config
// file location.
func resolveConfigPath(flagPath string, env *envConfig) string {
	switch {
	case flagPath != "":
		return fileutil.ExpandHome(flagPath)
	case env.ConfigPath != "":
		return fileutil.ExpandHome(env.ConfigPath)
	default:
		return config.DefaultPath()
	}
}

// resolveFragment picks the style fragment: --style, then VIEWDOC_STYLE,
// then the config file selection. Unknown names yield an empty fragment.
func resolveFragment(cfg *config.Config, f *cliFlags, env *envConfig) string {
	switch {
	case f.styleSet:
		return cfg.StyleFragment(f.style)
	case env.styleSet:
		return cfg.StyleFragment(env.Style)
	default:
		return cfg.SelectedFragment()
	}
}

// resolvePython applies env > config precedence to the interpreter.
func resolvePython(cfg *config.Config, env *envConfig) string {
	if env.Python != "" {
		return env.Python
	}
	return cfg.Viewdoc.Python
}
