package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/brz/internal/input/key"
)

// Validation errors
var (
	ErrNoMode      = errors.New("keymap has no mode")
	ErrEmptyKeys   = errors.New("empty keys")
	ErrEmptyAction = errors.New("empty action")
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key that triggers this binding, in key.Parse notation.
	Keys string

	// Action is the name of the action to execute, e.g. "quit".
	Action string

	// Description documents the binding.
	Description string
}

// Keymap holds key bindings for a mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to, e.g. "normal".
	Mode string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Source indicates where this keymap was defined.
	// Examples: "default", "config", a file path.
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{Name: name}
}

// ForMode sets the mode for this keymap.
func (k *Keymap) ForMode(mode string) *Keymap {
	k.Mode = mode
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{Keys: keys, Action: action})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(b Binding) *Keymap {
	k.Bindings = append(k.Bindings, b)
	return k
}

// Validate checks that the keymap names a mode and every binding parses.
func (k *Keymap) Validate() error {
	_, err := k.parse()
	return err
}

// parsedBinding is a binding whose keys have been parsed.
type parsedBinding struct {
	Binding
	key key.Key
}

func (k *Keymap) parse() ([]parsedBinding, error) {
	if k.Mode == "" {
		return nil, fmt.Errorf("keymap %q: %w", k.Name, ErrNoMode)
	}
	out := make([]parsedBinding, 0, len(k.Bindings))
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return nil, fmt.Errorf("binding %d: %w", i, ErrEmptyKeys)
		}
		if b.Action == "" {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Keys, ErrEmptyAction)
		}
		parsed, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d: %w", i, err)
		}
		out = append(out, parsedBinding{Binding: b, key: parsed})
	}
	return out, nil
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	c := *k
	c.Bindings = append([]Binding(nil), k.Bindings...)
	return &c
}
