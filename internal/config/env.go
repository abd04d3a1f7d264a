package config

import (
	"fmt"
	"strconv"
)

// Environment variables that override file settings.
const (
	EnvLogLevel        = "BRZ_LOG_LEVEL"
	EnvLogFile         = "BRZ_LOG_FILE"
	EnvClipboardSystem = "BRZ_CLIPBOARD_SYSTEM"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// applyEnv overrides settings from the environment.
// Empty values are treated as set.
func (c *Config) applyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Log.File = v
	}
	if v, ok := lookup(EnvClipboardSystem); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvClipboardSystem, v, ErrInvalidValue)
		}
		c.Clipboard.System = b
	}
	return nil
}
