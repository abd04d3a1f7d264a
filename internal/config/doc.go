// Package config loads the brz configuration.
//
// Configuration comes from three places, later ones overriding earlier:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← BRZ_LOG_LEVEL, BRZ_LOG_FILE, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/brz/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │
//	└─────────────────────────────┘
//
// Command line flags are applied by the caller on top of the result.
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	keymaps, err := cfg.Keymaps()
//
// # Sub-packages
//
//   - watcher: notifies when the config file or a keymap file changes
package config
