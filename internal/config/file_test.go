package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lcolorado/bresenham/internal/core"
)

func TestParseFile(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		expFile *File
		expErr  string
	}{
		{
			name: "successful parse",
			config: `
				width = 100
				glyph = #`,
			expFile: &File{
				Global: &Config{
					isFile: true,
					Glyph:  core.PointerTo('#'),
					Width:  core.PointerTo(100),
				},
				Path: "test/config",
			},
		},
		{
			name: "successful parse with sections",
			config: `
				# This is a comment
				color = off
				trace-format = yaml

				[fill]
				glyph = █
				glyph-color = cyan

				[outline]
				glyph = o`,
			expFile: &File{
				Global: &Config{
					isFile:      true,
					Color:       core.ColorOff,
					TraceFormat: core.TraceYAML,
				},
				Fill: &Config{
					isFile:     true,
					Glyph:      core.PointerTo('█'),
					GlyphColor: core.PointerTo(core.Cyan),
				},
				Outline: &Config{
					isFile: true,
					Glyph:  core.PointerTo('o'),
				},
				Path: "test/config",
			},
		},
		{
			name:   "empty section",
			config: `[ ]`,
			expErr: "line 1: section name cannot be empty",
		},
		{
			name:   "unknown section",
			config: `[example.com]`,
			expErr: "line 1: unknown section 'example.com'",
		},
		{
			name: "duplicate section",
			config: `
				[fill]
				glyph = #
				[fill]`,
			expErr: "line 4: duplicate section 'fill'",
		},
		{
			name:   "unterminated section",
			config: `[fill`,
			expErr: "line 1: invalid key/value pair '[fill'",
		},
		{
			name: "invalid key and value pair",
			config: `
				color = off
				invalidline`,
			expErr: "line 3: invalid key/value pair 'invalidline'",
		},
		{
			name:   "unknown key",
			config: `radius = 4`,
			expErr: "line 1: invalid option: 'radius'",
		},
		{
			name:   "invalid value",
			config: `width = wide`,
			expErr: "line 1: invalid value 'wide' for option 'width'",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, err := parseFile("test/config", test.config)
			if err != nil {
				if test.expErr == "" {
					t.Fatalf("unexpected error: %s", err.Error())
				}
				if !strings.Contains(err.Error(), test.expErr) {
					t.Fatalf("unexpected error: %s", err.Error())
				}
				return
			}
			if test.expErr != "" {
				t.Fatalf("expected error %q, got nil", test.expErr)
			}

			if !reflect.DeepEqual(f, test.expFile) {
				t.Fatalf("unexpected file: %+v\n", *f)
			}
		})
	}
}

func TestFileModeConfig(t *testing.T) {
	fill := &Config{isFile: true, Glyph: core.PointerTo('#')}
	f := &File{Global: &Config{isFile: true}, Fill: fill}

	if got := f.ModeConfig(true); got != fill {
		t.Fatalf("ModeConfig(true) = %v, want %v", got, fill)
	}
	if got := f.ModeConfig(false); got != nil {
		t.Fatalf("ModeConfig(false) = %v, want nil", got)
	}
}

func TestGetFile(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config")
		if err := os.WriteFile(path, []byte("fill = true\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		f, err := GetFile(path)
		if err != nil {
			t.Fatalf("GetFile() error = %v", err)
		}
		if f == nil || f.Global.Fill == nil || !*f.Global.Fill {
			t.Fatalf("unexpected file: %+v", f)
		}
		if f.Path != path {
			t.Fatalf("path = %q, want %q", f.Path, path)
		}
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := GetFile(filepath.Join(t.TempDir(), "missing"))
		if err == nil {
			t.Fatal("expected error for missing config file")
		}
	})

	t.Run("xdg config home", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "bresenham"), 0o755); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(dir, "bresenham", "config")
		if err := os.WriteFile(path, []byte("trace = true\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("XDG_CONFIG_HOME", dir)
		t.Setenv("HOME", t.TempDir())
		t.Setenv("AppData", dir)

		f, err := GetFile("")
		if err != nil {
			t.Fatalf("GetFile() error = %v", err)
		}
		if f == nil || f.Global.Trace == nil || !*f.Global.Trace {
			t.Fatalf("unexpected file: %+v", f)
		}
	})

	t.Run("no file found", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("AppData", t.TempDir())

		f, err := GetFile("")
		if err != nil {
			t.Fatalf("GetFile() error = %v", err)
		}
		if f != nil {
			t.Fatalf("expected no file, got %+v", f)
		}
	})
}

func TestSearchPaths(t *testing.T) {
	env := map[string]string{
		"XDG_CONFIG_HOME": "/xdg",
		"HOME":            "/home/user",
		"AppData":         `C:\Users\user\AppData\Roaming`,
	}
	getenv := func(key string) string { return env[key] }

	got := searchPaths("linux", getenv)
	want := []string{
		filepath.Join("/xdg", "bresenham", "config"),
		filepath.Join("/home/user", ".config", "bresenham", "config"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("linux paths = %q, want %q", got, want)
	}

	got = searchPaths("windows", getenv)
	want = []string{filepath.Join(env["AppData"], "bresenham", "config")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("windows paths = %q, want %q", got, want)
	}

	if got := searchPaths("darwin", func(string) string { return "" }); len(got) != 0 {
		t.Fatalf("unexpected paths without environment: %q", got)
	}
}
