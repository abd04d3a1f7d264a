package mode

import (
	"github.com/dshills/brz/internal/input/keymap"
)

// Mode names.
const (
	ModeNormal  = "normal"
	ModeInsert  = "insert"
	ModeCommand = "command"
	ModeFind    = "find"
	ModeGoto    = "goto"
)

// Mode is one of *Normal, *Insert, *Command, *Find or *Goto.
// The set is closed; State.Dispatch switches over it exhaustively.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	// Actions returns the actions keys can be mapped to in this mode.
	Actions() Actions

	// DefaultKeymap returns the built-in key mappings for this mode.
	DefaultKeymap() *keymap.Keymap

	mode()
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Action is something a key can be mapped to.
type Action interface {
	Execute(s *State)
}

// ActionFunc adapts a function to Action.
type ActionFunc func(s *State)

// Execute calls f(s).
func (f ActionFunc) Execute(s *State) { f(s) }

// Actions maps action names to actions.
type Actions map[string]Action

// ActionNotFound is run for keys that resolve to no action. It does nothing.
var ActionNotFound Action = ActionFunc(func(*State) {})

// Modes returns a fresh value of every mode, in a fixed order.
func Modes() []Mode {
	return []Mode{NewNormal(), NewInsert(InsertBefore), NewCommand(), NewFind(), NewGoto()}
}

// DefaultKeymaps returns the built-in keymap of every mode.
func DefaultKeymaps() []*keymap.Keymap {
	modes := Modes()
	out := make([]*keymap.Keymap, len(modes))
	for i, m := range modes {
		out[i] = m.DefaultKeymap()
	}
	return out
}

// NewRegistry builds a keymap registry holding the built-in keymaps
// followed by user, so user bindings take precedence.
func NewRegistry(user ...*keymap.Keymap) (*keymap.Registry, error) {
	r := keymap.NewRegistry()
	for _, km := range DefaultKeymaps() {
		if err := r.Register(km); err != nil {
			return nil, err
		}
	}
	for _, km := range user {
		if err := r.Register(km); err != nil {
			return nil, err
		}
	}
	return r, nil
}
