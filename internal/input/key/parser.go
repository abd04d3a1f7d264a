package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// namedSpecs maps lower-cased key names (including Vim aliases) to keys.
var namedSpecs = map[string]Key{
	"esc":       Esc,
	"escape":    Esc,
	"enter":     Enter,
	"return":    Enter,
	"cr":        Enter,
	"tab":       Tab,
	"bs":        Backspace,
	"backspace": Backspace,
	"del":       Delete,
	"delete":    Delete,
	"insert":    Named(NameInsert),
	"left":      Left,
	"right":     Right,
	"up":        Up,
	"down":      Down,
	"home":      Home,
	"end":       End,
	"pageup":    PageUp,
	"pgup":      PageUp,
	"pagedown":  PageDown,
	"pgdn":      PageDown,
	"space":     Space,
	"lt":        Char('<'),
	"gt":        Char('>'),
	"minus":     Char('-'),
}

// Parse parses a key specification string into a Key.
//
// Supported formats:
//   - Single character: "a", "A", "1", "%"
//   - Named keys: "Enter", "Esc", "Tab", "Backspace", "Space", "Left"
//   - With a modifier: "Ctrl+P", "Alt+;"
//   - Vim-style: "<C-p>", "<A-;>", "<M-;>", "<CR>", "<Esc>", "<lt>"
//
// Only a single Ctrl or Alt modifier applied to a character is supported.
func Parse(spec string) (Key, error) {
	if spec == "" {
		return Key{}, ErrEmptySpec
	}
	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return Char(r), nil
	}

	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Key{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec, spec[1:len(spec)-1])
	}

	if i := strings.LastIndex(spec[:len(spec)-1], "+"); i > 0 {
		return parseModified(spec, spec[:i], spec[i+1:])
	}

	return parseSingle(spec, spec)
}

// MustParse is like Parse but panics on error.
// Intended for built-in tables and tests.
func MustParse(spec string) Key {
	k, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return k
}

// parseVimStyle parses the inside of "<...>", e.g. "C-p", "A-;", "CR".
func parseVimStyle(spec, inner string) (Key, error) {
	if inner == "" {
		return Key{}, fmt.Errorf("%q: %w", spec, ErrInvalidSpec)
	}
	if len(inner) > 2 && inner[1] == '-' {
		return parseModified(spec, inner[:1], inner[2:])
	}
	return parseSingle(spec, inner)
}

// parseModified builds a Ctrl or Alt key from a modifier name and a key part.
func parseModified(spec, mod, rest string) (Key, error) {
	base, err := parseSingle(spec, rest)
	if err != nil {
		return Key{}, err
	}
	if base.Kind != KindChar {
		return Key{}, fmt.Errorf("%q: modifier on named key: %w", spec, ErrInvalidSpec)
	}

	switch strings.ToLower(mod) {
	case "c", "ctrl", "control":
		return Ctrl(base.Rune), nil
	case "a", "m", "alt", "meta":
		return Alt(base.Rune), nil
	default:
		return Key{}, fmt.Errorf("%q: unsupported modifier %q: %w", spec, mod, ErrInvalidSpec)
	}
}

// parseSingle parses one character or one key name.
func parseSingle(spec, s string) (Key, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return Char(r), nil
	}
	if k, ok := namedSpecs[strings.ToLower(s)]; ok {
		return k, nil
	}
	return Key{}, fmt.Errorf("%q: %w", spec, ErrInvalidSpec)
}
