package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every brz setting.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	History   HistoryConfig   `toml:"history"`
	Keymap    KeymapConfig    `toml:"keymap"`

	// path is the file the configuration was loaded from, if any.
	path string
}

// LogConfig controls the log file.
type LogConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
}

// ClipboardConfig controls mirroring of the register to the system clipboard.
type ClipboardConfig struct {
	System bool `toml:"system"`
}

// HistoryConfig controls undo history.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// KeymapConfig lists user key bindings.
type KeymapConfig struct {
	// Files are keymap files (JSON, YAML or TOML). Relative paths are
	// resolved against the config file's directory.
	Files []string `toml:"files"`

	// Dirs are directories whose keymap files are all loaded, in name
	// order, before Files. Relative paths resolve like Files.
	Dirs []string `toml:"dirs"`

	// Bindings maps mode name to key spec to action name.
	Bindings map[string]map[string]string `toml:"bindings"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			File:       defaultLogFile(),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		History: HistoryConfig{MaxEntries: 1000},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "brz", "config.toml")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "brz", "brz.log")
}

// Load reads the config file at path on top of the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := cfg.decode(path, data); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data on top of the defaults without consulting the
// environment. source names the data in errors.
func Parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(source, data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode parses TOML data into c. Unknown keys are rejected.
func (c *Config) decode(source string, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(c)
	if err == nil {
		return nil
	}

	perr := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	var serr *toml.StrictMissingError
	switch {
	case errors.As(err, &derr):
		perr.Line, perr.Column = derr.Position()
	case errors.As(err, &serr):
		keys := make([]string, len(serr.Errors))
		for i, e := range serr.Errors {
			keys[i] = strings.Join(e.Key(), ".")
		}
		perr.Message = "unknown setting " + strings.Join(keys, ", ")
		if len(serr.Errors) > 0 {
			perr.Line, perr.Column = serr.Errors[0].Position()
		}
	}
	return perr
}

// Validate checks every setting.
func (c *Config) Validate() error {
	var errs []error
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{Setting: "log.level", Value: c.Log.Level, Message: "unknown level"})
	}
	if c.Log.MaxSizeMB < 0 {
		errs = append(errs, &ValidationError{Setting: "log.max_size_mb", Value: c.Log.MaxSizeMB, Message: "must not be negative"})
	}
	if c.Log.MaxBackups < 0 {
		errs = append(errs, &ValidationError{Setting: "log.max_backups", Value: c.Log.MaxBackups, Message: "must not be negative"})
	}
	if c.Log.MaxAgeDays < 0 {
		errs = append(errs, &ValidationError{Setting: "log.max_age_days", Value: c.Log.MaxAgeDays, Message: "must not be negative"})
	}
	if c.History.MaxEntries <= 0 {
		errs = append(errs, &ValidationError{Setting: "history.max_entries", Value: c.History.MaxEntries, Message: "must be positive"})
	}
	return errors.Join(errs...)
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// ParseLevel converts a level name such as "debug" or "WARN" to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", name, ErrInvalidValue)
	}
	return level, nil
}

// LogLevel returns the configured log level, or info if it is invalid.
func (c *Config) LogLevel() slog.Level {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}
