package keymap

import (
	"fmt"
	"sort"

	"github.com/dshills/brz/internal/input/key"
)

// Match is the result of a successful lookup.
type Match struct {
	Key     key.Key
	Binding Binding
	Keymap  string // name of the keymap that supplied the binding
}

// Registry resolves keys to actions per mode.
// A Registry is not safe for concurrent use; replace it wholesale to
// apply new keymaps.
type Registry struct {
	modes   map[string]map[key.Key]Match
	keymaps []*Keymap
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modes: make(map[string]map[key.Key]Match)}
}

// Register adds every binding of km, replacing earlier bindings of the
// same key in the same mode. Nothing is registered if any binding is invalid.
func (r *Registry) Register(km *Keymap) error {
	parsed, err := km.parse()
	if err != nil {
		return fmt.Errorf("registering keymap %q: %w", km.Name, err)
	}

	m := r.modes[km.Mode]
	if m == nil {
		m = make(map[key.Key]Match)
		r.modes[km.Mode] = m
	}
	for _, pb := range parsed {
		m[pb.key] = Match{Key: pb.key, Binding: pb.Binding, Keymap: km.Name}
	}
	r.keymaps = append(r.keymaps, km)
	return nil
}

// Lookup returns the binding for k in mode.
func (r *Registry) Lookup(mode string, k key.Key) (Match, bool) {
	m, ok := r.modes[mode][k]
	return m, ok
}

// ActionFor returns the action name bound to k in mode, or "".
func (r *Registry) ActionFor(mode string, k key.Key) string {
	m, _ := r.Lookup(mode, k)
	return m.Binding.Action
}

// Keymaps returns the registered keymaps in registration order.
func (r *Registry) Keymaps() []*Keymap {
	return append([]*Keymap(nil), r.keymaps...)
}

// Bindings returns every effective binding for mode, sorted by key.
func (r *Registry) Bindings(mode string) []Match {
	out := make([]Match, 0, len(r.modes[mode]))
	for _, m := range r.modes[mode] {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}
