package key

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Key
	}{
		{"a", Char('a')},
		{"A", Char('A')},
		{"%", Char('%')},
		{"'", Char('\'')},
		{"+", Char('+')},
		{"<", Char('<')},
		{"é", Char('é')},
		{"Space", Space},
		{"Esc", Esc},
		{"escape", Esc},
		{"Enter", Enter},
		{"<CR>", Enter},
		{"<Esc>", Esc},
		{"<BS>", Backspace},
		{"<lt>", Char('<')},
		{"<Space>", Space},
		{"<C-p>", Ctrl('p')},
		{"<C-P>", Ctrl('p')},
		{"<A-;>", Alt(';')},
		{"<M-;>", Alt(';')},
		{"<A-minus>", Alt('-')},
		{"Ctrl+P", Ctrl('p')},
		{"ctrl+q", Ctrl('q')},
		{"Alt+;", Alt(';')},
		{"Ctrl++", Ctrl('+')},
		{"  Left  ", Left},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmptySpec},
		{"   ", ErrEmptySpec},
		{"Bogus", ErrInvalidSpec},
		{"<>", ErrInvalidSpec},
		{"<C-Left>", ErrInvalidSpec},
		{"Shift+a", ErrInvalidSpec},
		{"Ctrl+Alt+x", ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := Parse(tt.spec)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	keys := []Key{
		Char('x'), Char('<'), Char('>'), Space, Esc, Enter, Tab, Backspace,
		Left, Right, Up, Down, Home, End, PageUp, PageDown,
		Ctrl('p'), Ctrl(' '), Alt(';'), Alt('-'), Alt('>'),
	}
	for _, k := range keys {
		got, err := Parse(k.String())
		if err != nil {
			t.Errorf("Parse(%q) error = %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("Parse(%q) = %v, want %v", k.String(), got, k)
		}
	}
}
