package main

// Notes:
// - The environment is injected as a map lookup, so these tests run in
//   parallel without t.Setenv.

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-viewdoc/internal/config"
	"github.com/alnah/go-viewdoc/internal/logging"
)

func mapGetenv(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment variable loading
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	cfg := loadEnvConfig(mapGetenv(map[string]string{
		"VIEWDOC_CONFIG": "/etc/viewdoc.yaml",
		"VIEWDOC_PYTHON": " python3.11 ",
		"VIEWDOC_STYLE":  "plain",
	}))

	if cfg.ConfigPath != "/etc/viewdoc.yaml" {
		t.Errorf("ConfigPath = %q", cfg.ConfigPath)
	}
	if cfg.Python != "python3.11" {
		t.Errorf("Python = %q, want trimmed python3.11", cfg.Python)
	}
	if cfg.Style != "plain" || !cfg.styleSet {
		t.Errorf("Style = %q (set=%v), want plain", cfg.Style, cfg.styleSet)
	}

	empty := loadEnvConfig(mapGetenv(nil))
	if empty.styleSet || empty.Python != "" || empty.ConfigPath != "" {
		t.Errorf("empty environment gave %+v", *empty)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(&buf, false)

	warnUnknownEnvVars(logger, []string{
		"VIEWDOC_STYEL=plain",
		"VIEWDOC_STYLE=pypi",
		"VIEWDOC_PYTHON=python3",
		"HOME=/root",
	})

	out := buf.String()
	if !strings.Contains(out, "VIEWDOC_STYEL") {
		t.Errorf("expected warning for VIEWDOC_STYEL, got %q", out)
	}
	for _, known := range []string{"VIEWDOC_STYLE", "VIEWDOC_PYTHON", "HOME"} {
		if strings.Contains(out, known+" ") || strings.Contains(out, "="+known) {
			t.Errorf("unexpected warning for %s: %q", known, out)
		}
	}
	if strings.Count(out, "unknown environment variable") != 1 {
		t.Errorf("expected exactly one warning, got %q", out)
	}
}

// ---------------------------------------------------------------------------
// TestResolveConfigPath - Flag > env > default
// ---------------------------------------------------------------------------

func TestResolveConfigPath(t *testing.T) {
	t.Parallel()

	env := &envConfig{ConfigPath: "/env/config.yaml"}

	if got := resolveConfigPath("/flag/config.yaml", env); got != "/flag/config.yaml" {
		t.Errorf("flag path = %q", got)
	}
	if got := resolveConfigPath("", env); got != "/env/config.yaml" {
		t.Errorf("env path = %q", got)
	}
	if got := resolveConfigPath("", &envConfig{}); got != config.DefaultPath() {
		t.Errorf("default path = %q, want %q", got, config.DefaultPath())
	}
	if got := resolveConfigPath("~/c.yaml", env); !filepath.IsAbs(got) {
		t.Errorf("home path not expanded: %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestResolveFragment - Style precedence
// ---------------------------------------------------------------------------

func TestResolveFragment(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte("viewdoc:\n  style: plain\nstyles:\n  plain: \"<style>plain</style>\"\n  dark: \"<style>dark</style>\"\n"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		flags cliFlags
		env   envConfig
		want  string
	}{
		{name: "config selection", want: "<style>plain</style>\n"},
		{name: "env overrides config", env: envConfig{Style: "dark", styleSet: true}, want: "<style>dark</style>\n"},
		{
			name:  "flag overrides env",
			flags: cliFlags{style: "pypi", styleSet: true},
			env:   envConfig{Style: "dark", styleSet: true},
			want:  cfg.StyleFragment("pypi"),
		},
		{name: "unknown flag style is unstyled", flags: cliFlags{style: "nope", styleSet: true}, want: ""},
		{name: "unknown env style is unstyled", env: envConfig{Style: "nope", styleSet: true}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveFragment(cfg, &tt.flags, &tt.env); got != tt.want {
				t.Errorf("resolveFragment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolvePython(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	if got := resolvePython(cfg, &envConfig{}); got != config.DefaultPython {
		t.Errorf("resolvePython() = %q, want %q", got, config.DefaultPython)
	}
	if got := resolvePython(cfg, &envConfig{Python: "pypy3"}); got != "pypy3" {
		t.Errorf("resolvePython() = %q, want pypy3", got)
	}
}
