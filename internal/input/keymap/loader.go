package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat indicates a keymap file extension that no decoder handles.
var ErrUnknownFormat = errors.New("unknown keymap file format")

// Format identifies a keymap file encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor returns the format implied by path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Loader loads keymaps from configuration files.
type Loader struct {
	// searchPaths are directories to search for keymap files.
	searchPaths []string
}

// NewLoader creates a new keymap loader.
func NewLoader() *Loader {
	return &Loader{}
}

// AddSearchPath adds a directory to search for keymap files.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// LoadFile loads a keymap from a file, choosing the decoder by extension.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	km, err := l.LoadReader(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if km.Name == "" {
		km.Name = filepath.Base(path)
	}
	if km.Source == "" {
		km.Source = path
	}
	return km, nil
}

// LoadReader loads a keymap encoded in format from r.
func (l *Loader) LoadReader(r io.Reader, format Format) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var config keymapConfig
	switch format {
	case FormatJSON:
		err = json.NewDecoder(bytes.NewReader(data)).Decode(&config)
	case FormatYAML:
		err = yaml.Unmarshal(data, &config)
	case FormatTOML:
		err = toml.Unmarshal(data, &config)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	km := &Keymap{
		Name:     config.Name,
		Mode:     config.Mode,
		Source:   config.Source,
		Bindings: make([]Binding, 0, len(config.Bindings)),
	}
	for _, bc := range config.Bindings {
		km.Bindings = append(km.Bindings, Binding(bc))
	}

	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}

// LoadAll loads all keymap files found in the search paths.
// Files that fail to load are returned as a joined error alongside the
// keymaps that did load.
func (l *Loader) LoadAll() ([]*Keymap, error) {
	var keymaps []*Keymap
	var errs []error

	for _, dir := range l.searchPaths {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				errs = append(errs, err)
			}
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			path := filepath.Join(dir, e.Name())
			if _, err := FormatFor(path); err != nil {
				continue
			}
			km, err := l.LoadFile(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			keymaps = append(keymaps, km)
		}
	}

	return keymaps, errors.Join(errs...)
}

// keymapConfig is the on-disk structure for keymap files.
type keymapConfig struct {
	Name     string          `json:"name" yaml:"name" toml:"name"`
	Mode     string          `json:"mode" yaml:"mode" toml:"mode"`
	Source   string          `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Bindings []bindingConfig `json:"bindings" yaml:"bindings" toml:"bindings"`
}

type bindingConfig struct {
	Keys        string `json:"keys" yaml:"keys" toml:"keys"`
	Action      string `json:"action" yaml:"action" toml:"action"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}
