// Package key defines the key values delivered to the mode interpreter.
//
// A Key is one of four variants:
//
//   - a printable character ("a", "%", " ")
//   - a named key (Esc, Enter, Left, ...)
//   - a Ctrl-modified character (Ctrl-p)
//   - an Alt-modified character (Alt-;)
//
// Keys are plain comparable values and can be used directly as map keys
// or in switch statements.
//
// # Key Specifications
//
// Keymap files refer to keys with the notation accepted by Parse:
//
//   - Simple keys: "a", "A", "%", "Space", "Esc", "Left"
//   - With modifiers: "Ctrl+P", "Alt+;"
//   - Vim-style: "<C-p>", "<A-;>", "<CR>", "<Esc>"
package key
