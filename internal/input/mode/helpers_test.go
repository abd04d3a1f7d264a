package mode

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/engine/cursor"
	"github.com/dshills/brz/internal/input/key"
)

// newTestState returns a controller with one buffer holding text.
func newTestState(t *testing.T, text string, sels ...cursor.Selection) (*State, *engine.BufferState) {
	t.Helper()
	s := NewState()
	buf := s.Buffers().Open("test", text)
	if len(sels) > 0 {
		buf.SetSelections(sels)
	}
	return s, buf
}

// typeKeys dispatches every key in spec. Characters are sent as-is and
// "<...>" groups are parsed with key.Parse.
func typeKeys(s *State, spec string) {
	for len(spec) > 0 {
		if spec[0] == '<' {
			if end := strings.IndexByte(spec, '>'); end > 0 {
				s.Dispatch(key.MustParse(spec[:end+1]))
				spec = spec[end+1:]
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(spec)
		s.Dispatch(key.Char(r))
		spec = spec[size:]
	}
}

func assertSelections(t *testing.T, buf *engine.BufferState, want ...cursor.Selection) {
	t.Helper()
	got := buf.Selections()
	if len(got) != len(want) {
		t.Fatalf("Selections() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selections()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func assertText(t *testing.T, buf *engine.BufferState, want string) {
	t.Helper()
	if got := buf.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func assertMode(t *testing.T, s *State, want string) {
	t.Helper()
	if got := s.Mode().Name(); got != want {
		t.Errorf("Mode() = %q, want %q", got, want)
	}
}
