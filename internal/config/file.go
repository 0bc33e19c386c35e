package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/lcolorado/bresenham/internal/core"
)

// File is a parsed config file. Settings before the first section apply to
// both modes; the [fill] and [outline] sections override them for one mode.
type File struct {
	Global  *Config
	Fill    *Config
	Outline *Config
	Path    string
}

// ModeConfig returns the section for the provided mode, or nil if the file
// has no such section.
func (f *File) ModeConfig(fill bool) *Config {
	if fill {
		return f.Fill
	}
	return f.Outline
}

// GetFile reads and parses the config file at path. With an empty path the
// default locations are searched, and a nil File is returned if none of
// them exist.
func GetFile(path string) (*File, error) {
	if path != "" {
		path, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parseFile(path, string(buf))
	}

	for _, path := range searchPaths(runtime.GOOS, os.Getenv) {
		buf, err := os.ReadFile(path)
		if err == nil {
			return parseFile(path, string(buf))
		}
	}
	return nil, nil
}

// expandPath makes path absolute, expanding a leading '~' to the home
// directory.
func expandPath(path string) (string, error) {
	if rest, ok := strings.CutPrefix(path, "~"+string(os.PathSeparator)); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}

// searchPaths returns the default config file locations in order of
// preference.
func searchPaths(goos string, getenv func(string) string) []string {
	if goos == "windows" {
		if dir := getenv("AppData"); dir != "" {
			return []string{filepath.Join(dir, "bresenham", "config")}
		}
		return nil
	}

	var paths []string
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, "bresenham", "config"))
	}
	if home := getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "bresenham", "config"))
	}
	return paths
}

// parseFile parses the "key = value" lines of a config file.
func parseFile(path, s string) (*File, error) {
	f := File{Global: &Config{isFile: true}, Path: path}

	cfg := f.Global
	var num int
	for line := range strings.Lines(s) {
		num++
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}

		if name, ok := sectionName(line); ok {
			section, err := f.section(name)
			if err != nil {
				return nil, newFileError(path, num, err)
			}
			cfg = section
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, newFileError(path, num, fmt.Errorf("invalid key/value pair '%s'", line))
		}
		if err := cfg.Set(strings.TrimSpace(key), strings.TrimSpace(val)); err != nil {
			return nil, newFileError(path, num, err)
		}
	}

	return &f, nil
}

// sectionName returns the name of a "[name]" header line.
func sectionName(line string) (string, bool) {
	name, ok := strings.CutPrefix(line, "[")
	if !ok {
		return "", false
	}
	name, ok = strings.CutSuffix(name, "]")
	return strings.TrimSpace(name), ok
}

// section starts the mode section with the provided name. Each mode may
// only appear once.
func (f *File) section(name string) (*Config, error) {
	var target **Config
	switch name {
	case "fill":
		target = &f.Fill
	case "outline":
		target = &f.Outline
	case "":
		return nil, errors.New("section name cannot be empty")
	default:
		return nil, fmt.Errorf("unknown section '%s': must be one of [fill, outline]", name)
	}
	if *target != nil {
		return nil, fmt.Errorf("duplicate section '%s'", name)
	}
	*target = &Config{isFile: true}
	return *target, nil
}

// fileError is an error on a specific line of a config file.
type fileError struct {
	file string
	line int
	err  error
}

func newFileError(file string, line int, err error) fileError {
	return fileError{file: file, line: line, err: err}
}

func (err fileError) Error() string {
	return fmt.Sprintf("config file '%s': line %d: %s", err.file, err.line, err.err.Error())
}

func (err fileError) Unwrap() error {
	return err.err
}

func (err fileError) PrintTo(p *core.Printer) {
	p.WriteString("config file '")
	p.Set(core.Dim)
	p.WriteString(err.file)
	p.Reset()
	p.WriteString("': line " + strconv.Itoa(err.line) + ": ")

	if pt, ok := err.err.(core.PrinterTo); ok {
		pt.PrintTo(p)
	} else {
		p.WriteString(err.err.Error())
	}
}
