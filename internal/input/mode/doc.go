// Package mode provides the modal editing system for brz.
//
// The mode system implements Kakoune-style modal editing:
//   - Normal mode: selection motions and commands
//   - Insert mode: text input
//   - Command mode: a ":" command line
//   - Find mode: a buffer picker
//   - Goto mode: one-key jumps
//
// # Architecture
//
// Mode is a closed set: only the types in this package implement it.
// State owns the active mode together with the repeat count, the
// clipboard register, the open buffers and the keymaps, and is passed
// explicitly to every handler. State.Dispatch delivers one key to the
// active mode and returns once the key has been fully handled.
//
// # Key Resolution
//
// Each mode first checks its built-in keys. Anything else is resolved
// through the keymap registry to an action name and then through the
// mode's action table. A key that resolves to nothing runs
// ActionNotFound, which does nothing.
//
// In Normal mode digits always extend the repeat count, whatever the
// keymaps say.
//
// # Undo Boundaries
//
// Every non-digit key handled in Normal mode is surrounded by undo
// boundaries, so one keystroke (with its count) is one undo step.
// Insert mode closes its undo step when it returns to Normal.
package mode
