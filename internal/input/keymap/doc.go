// Package keymap maps keys to action names, per mode.
//
// # Key Concepts
//
// Keymap: A named collection of bindings for one mode.
//
// Binding: Maps a single key to an action name.
//
// Registry: Holds the bindings of every registered keymap and answers
// "which action does this key trigger in this mode".
//
// # Binding Precedence
//
// Keymaps are registered in order: built-in defaults first, then user
// keymaps. A later binding for the same mode and key replaces an earlier
// one.
//
// # Files
//
// Loader reads keymaps from JSON, YAML or TOML files, chosen by file
// extension:
//
//	mode: normal
//	bindings:
//	  - keys: "<C-s>"
//	    action: quit
package keymap
