package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/dshills/brz/internal/input/keymap"
)

// KeymapFiles returns the configured keymap files as absolute or
// config-relative paths.
func (c *Config) KeymapFiles() []string {
	return c.resolve(c.Keymap.Files)
}

// KeymapDirs returns the configured keymap directories, resolved like
// KeymapFiles.
func (c *Config) KeymapDirs() []string {
	return c.resolve(c.Keymap.Dirs)
}

func (c *Config) resolve(paths []string) []string {
	dir := filepath.Dir(c.path)
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) && c.path != "" {
			p = filepath.Join(dir, p)
		}
		out = append(out, p)
	}
	return out
}

// Keymaps builds the user keymaps: first every file in the keymap
// directories, then every keymap file in order, then one keymap per mode
// from the inline bindings. Later keymaps take precedence when registered
// in order. Files that fail to load are reported in a joined error
// alongside the keymaps that loaded. Missing directories are skipped.
func (c *Config) Keymaps() ([]*keymap.Keymap, error) {
	var errs []error

	loader := keymap.NewLoader()
	for _, dir := range c.KeymapDirs() {
		loader.AddSearchPath(dir)
	}
	out, err := loader.LoadAll()
	if err != nil {
		errs = append(errs, err)
	}

	for _, path := range c.KeymapFiles() {
		km, err := loader.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, km)
	}

	source := c.path
	if source == "" {
		source = "config"
	}
	modes := make([]string, 0, len(c.Keymap.Bindings))
	for mode := range c.Keymap.Bindings {
		modes = append(modes, mode)
	}
	slices.Sort(modes)

	for _, mode := range modes {
		bindings := c.Keymap.Bindings[mode]
		keys := make([]string, 0, len(bindings))
		for k := range bindings {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		km := keymap.NewKeymap("config-" + mode).ForMode(mode).WithSource(source)
		for _, k := range keys {
			km.Add(k, bindings[k])
		}
		if err := km.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, km)
	}

	return out, errors.Join(errs...)
}

// WatchDirs returns the keymap directories that exist. Any change to a
// file directly inside them should trigger a reload.
func (c *Config) WatchDirs() []string {
	var dirs []string
	for _, d := range c.KeymapDirs() {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// WatchPaths returns the files whose changes should trigger a reload.
func (c *Config) WatchPaths() []string {
	var paths []string
	if c.path != "" {
		paths = append(paths, c.path)
	}
	return append(paths, c.KeymapFiles()...)
}
