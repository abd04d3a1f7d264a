package key

import "fmt"

// Kind identifies which variant a Key holds.
type Kind uint8

const (
	// KindNone is the zero Key.
	KindNone Kind = iota
	// KindChar is a printable character without modifiers.
	KindChar
	// KindNamed is a non-printable named key.
	KindNamed
	// KindCtrl is a character pressed with Ctrl.
	KindCtrl
	// KindAlt is a character pressed with Alt.
	KindAlt
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindChar:
		return "Char"
	case KindNamed:
		return "Named"
	case KindCtrl:
		return "Ctrl"
	case KindAlt:
		return "Alt"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Name identifies a named key.
type Name uint8

const (
	NameNone Name = iota
	NameEsc
	NameEnter
	NameTab
	NameBackspace
	NameDelete
	NameInsert
	NameLeft
	NameRight
	NameUp
	NameDown
	NameHome
	NameEnd
	NamePageUp
	NamePageDown
)

var nameStrings = map[Name]string{
	NameNone:      "None",
	NameEsc:       "Esc",
	NameEnter:     "Enter",
	NameTab:       "Tab",
	NameBackspace: "Backspace",
	NameDelete:    "Delete",
	NameInsert:    "Insert",
	NameLeft:      "Left",
	NameRight:     "Right",
	NameUp:        "Up",
	NameDown:      "Down",
	NameHome:      "Home",
	NameEnd:       "End",
	NamePageUp:    "PageUp",
	NamePageDown:  "PageDown",
}

// String returns the canonical name of the key.
func (n Name) String() string {
	if s, ok := nameStrings[n]; ok {
		return s
	}
	return fmt.Sprintf("Name(%d)", uint8(n))
}

// Key is a single key press as seen by the modes.
// Exactly one of Rune (Char, Ctrl, Alt) or Name (Named) is meaningful,
// selected by Kind. The zero value is "no key".
type Key struct {
	Kind Kind
	Rune rune
	Name Name
}

// Char returns the key for a printable character.
func Char(r rune) Key {
	return Key{Kind: KindChar, Rune: r}
}

// Ctrl returns the key for r pressed with Ctrl.
// Letters are stored lower case so Ctrl-P and Ctrl-p compare equal.
func Ctrl(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return Key{Kind: KindCtrl, Rune: r}
}

// Alt returns the key for r pressed with Alt.
func Alt(r rune) Key {
	return Key{Kind: KindAlt, Rune: r}
}

// Named returns the key for a named key.
func Named(n Name) Key {
	return Key{Kind: KindNamed, Name: n}
}

// Frequently used named keys.
var (
	Esc       = Named(NameEsc)
	Enter     = Named(NameEnter)
	Tab       = Named(NameTab)
	Backspace = Named(NameBackspace)
	Delete    = Named(NameDelete)
	Left      = Named(NameLeft)
	Right     = Named(NameRight)
	Up        = Named(NameUp)
	Down      = Named(NameDown)
	Home      = Named(NameHome)
	End       = Named(NameEnd)
	PageUp    = Named(NamePageUp)
	PageDown  = Named(NamePageDown)
	Space     = Char(' ')
)

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool {
	return k.Kind == KindNone
}

// IsChar reports whether k is an unmodified printable character.
func (k Key) IsChar() bool {
	return k.Kind == KindChar
}

// Digit returns the numeric value of an unmodified '0'..'9' key.
func (k Key) Digit() (int, bool) {
	if k.Kind != KindChar || k.Rune < '0' || k.Rune > '9' {
		return 0, false
	}
	return int(k.Rune - '0'), true
}

// String returns the key in the notation accepted by Parse.
func (k Key) String() string {
	switch k.Kind {
	case KindChar:
		switch k.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(k.Rune)
	case KindNamed:
		return "<" + k.Name.String() + ">"
	case KindCtrl:
		return "<C-" + runeSpec(k.Rune) + ">"
	case KindAlt:
		return "<A-" + runeSpec(k.Rune) + ">"
	default:
		return "<None>"
	}
}

func runeSpec(r rune) string {
	switch r {
	case ' ':
		return "Space"
	case '-':
		return "minus"
	case '>':
		return "gt"
	case '<':
		return "lt"
	}
	return string(r)
}
