package config

// Notes:
// - Unreadable-file handling relies on permission bits and is skipped when
//   running as root, where chmod 000 does not prevent reads.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alnah/go-viewdoc/internal/assets"
)

func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).Level(zerolog.DebugLevel)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Built-in configuration
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Viewdoc.Style != DefaultStyle {
		t.Errorf("Style = %q, want %q", cfg.Viewdoc.Style, DefaultStyle)
	}
	if cfg.Viewdoc.Python != DefaultPython {
		t.Errorf("Python = %q, want %q", cfg.Viewdoc.Python, DefaultPython)
	}
	if cfg.Viewdoc.Highlight != DefaultHighlight {
		t.Errorf("Highlight = %q, want %q", cfg.Viewdoc.Highlight, DefaultHighlight)
	}
	if got := cfg.SelectedFragment(); got != assets.PyPIStyle() {
		t.Errorf("SelectedFragment() = %q, want built-in pypi", got)
	}
}

// ---------------------------------------------------------------------------
// TestLoad_MissingFile - Default file creation
// ---------------------------------------------------------------------------

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "viewdoc", "config.yaml")
	var logs bytes.Buffer

	cfg, err := Load(path, newTestLogger(&logs))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
	if !bytes.Equal(written, assets.ConfigTemplate()) {
		t.Error("written config should equal the embedded template")
	}

	names := cfg.StyleNames()
	if strings.Join(names, ",") != "plain,pypi" {
		t.Errorf("StyleNames() = %v, want [plain pypi]", names)
	}
	if cfg.Viewdoc.Style != "pypi" {
		t.Errorf("Style = %q, want %q", cfg.Viewdoc.Style, "pypi")
	}
}

func TestLoad_MissingFileWriteFailure(t *testing.T) {
	t.Parallel()

	// A regular file where the parent directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(blocker, "config.yaml")
	var logs bytes.Buffer

	cfg, err := Load(path, newTestLogger(&logs))
	if err != nil {
		t.Fatalf("Load() should not fail when the default cannot be written: %v", err)
	}
	if !strings.Contains(logs.String(), `"level":"warn"`) {
		t.Errorf("expected a warning, got logs %q", logs.String())
	}
	if !strings.Contains(logs.String(), path) {
		t.Errorf("warning should name the path %q, got %q", path, logs.String())
	}
	if cfg.StyleFragment("plain") == "" {
		t.Error("in-memory defaults should still provide the plain style")
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}

	path := writeConfig(t, "viewdoc:\n  style: plain\n")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer

	cfg, err := Load(path, newTestLogger(&logs))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Viewdoc.Style != DefaultStyle {
		t.Errorf("Style = %q, want built-in %q", cfg.Viewdoc.Style, DefaultStyle)
	}
	if !strings.Contains(logs.String(), `"level":"warn"`) {
		t.Errorf("expected a warning, got logs %q", logs.String())
	}
}

// ---------------------------------------------------------------------------
// TestLoad - Existing files
// ---------------------------------------------------------------------------

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "no styles section still has pypi",
			content: "viewdoc:\n  style: plain\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.StyleFragment("pypi") != assets.PyPIStyle() {
					t.Error("pypi fragment should be the built-in one")
				}
				if cfg.Viewdoc.Style != "plain" {
					t.Errorf("Style = %q, want %q", cfg.Viewdoc.Style, "plain")
				}
				if cfg.SelectedFragment() != "" {
					t.Errorf("SelectedFragment() = %q, want empty for undefined style", cfg.SelectedFragment())
				}
			},
		},
		{
			name:    "empty file uses defaults",
			content: "",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Viewdoc.Style != DefaultStyle {
					t.Errorf("Style = %q, want %q", cfg.Viewdoc.Style, DefaultStyle)
				}
			},
		},
		{
			name:    "user pypi is not replaced",
			content: "styles:\n  pypi: <style>mine</style>\n",
			check: func(t *testing.T, cfg *Config) {
				if got := cfg.StyleFragment("pypi"); got != "<style>mine</style>\n" {
					t.Errorf("pypi = %q, want user fragment", got)
				}
			},
		},
		{
			name:    "fragments are trimmed and end with one newline",
			content: "styles:\n  dark: \"\\n  <style>body{}</style>\\n\\n\"\n",
			check: func(t *testing.T, cfg *Config) {
				if got := cfg.StyleFragment("dark"); got != "<style>body{}</style>\n" {
					t.Errorf("dark = %q, want %q", got, "<style>body{}</style>\n")
				}
			},
		},
		{
			name:    "build script settings",
			content: "viewdoc:\n  python: /usr/bin/python3.12\n  searchPath: [/opt/lib, /srv/lib]\n  highlight: monokai\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Viewdoc.Python != "/usr/bin/python3.12" {
					t.Errorf("Python = %q", cfg.Viewdoc.Python)
				}
				if strings.Join(cfg.Viewdoc.SearchPath, ",") != "/opt/lib,/srv/lib" {
					t.Errorf("SearchPath = %v", cfg.Viewdoc.SearchPath)
				}
				if cfg.Viewdoc.Highlight != "monokai" {
					t.Errorf("Highlight = %q", cfg.Viewdoc.Highlight)
				}
			},
		},
		{
			name:    "malformed file",
			content: "viewdoc: [unclosed\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "search path with list separator",
			content: "viewdoc:\n  searchPath: [\"/a" + string(os.PathListSeparator) + "/b\"]\n",
			wantErr: ErrInvalidSearchPath,
		},
		{
			name:    "empty search path entry",
			content: "viewdoc:\n  searchPath: [\"\"]\n",
			wantErr: ErrInvalidSearchPath,
		},
		{
			name:    "style name too long",
			content: "viewdoc:\n  style: " + strings.Repeat("s", MaxNameLength+1) + "\n",
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			var logs bytes.Buffer

			cfg, err := Load(path, newTestLogger(&logs))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				if !strings.Contains(err.Error(), path) {
					t.Errorf("error %q should name the path", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

// ---------------------------------------------------------------------------
// TestStyleFragment - Unknown names degrade to no style
// ---------------------------------------------------------------------------

func TestStyleFragment_UnknownName(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	for _, name := range []string{"", "nonexistent", "PYPI", "../pypi", "plain"} {
		if got := cfg.StyleFragment(name); got != "" {
			t.Errorf("StyleFragment(%q) = %q, want empty", name, got)
		}
	}
}

func TestStyleNames_Sorted(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("styles:\n  zeta: z\n  alpha: a\n"))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	got := strings.Join(cfg.StyleNames(), ",")
	if got != "alpha,pypi,zeta" {
		t.Errorf("StyleNames() = %s, want alpha,pypi,zeta", got)
	}
}

// ---------------------------------------------------------------------------
// TestDefaultPath - XDG location
// ---------------------------------------------------------------------------

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	got := DefaultPath()
	if filepath.Base(got) != "config.yaml" {
		t.Errorf("DefaultPath() = %q, want config.yaml file", got)
	}
	if filepath.Base(filepath.Dir(got)) != "viewdoc" {
		t.Errorf("DefaultPath() = %q, want viewdoc directory", got)
	}
}
