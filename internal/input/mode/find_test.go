package mode

import (
	"testing"

	"github.com/dshills/brz/internal/input/key"
)

func newFindState(t *testing.T) *State {
	t.Helper()
	s := NewState()
	s.Buffers().Open("alpha.go", "a")
	s.Buffers().Open("beta.go", "b")
	s.Buffers().Open("gamma.txt", "c")
	s.Dispatch(key.Ctrl('p'))
	return s
}

func findMode(t *testing.T, s *State) *Find {
	t.Helper()
	f, ok := s.Mode().(*Find)
	if !ok {
		t.Fatalf("Mode() = %T, want *Find", s.Mode())
	}
	return f
}

func TestFindListsAllBuffers(t *testing.T) {
	s := newFindState(t)
	f := findMode(t, s)

	matches := f.Matches()
	if len(matches) != 3 {
		t.Fatalf("len(Matches()) = %d, want 3", len(matches))
	}
	for i, want := range []string{"alpha.go", "beta.go", "gamma.txt"} {
		if matches[i].Name != want {
			t.Errorf("Matches()[%d].Name = %q, want %q", i, matches[i].Name, want)
		}
	}
}

func TestFindQuery(t *testing.T) {
	s := newFindState(t)
	f := findMode(t, s)

	typeKeys(s, "bet")
	if got := f.Query(); got != "bet" {
		t.Errorf("Query() = %q, want %q", got, "bet")
	}
	matches := f.Matches()
	if len(matches) != 1 || matches[0].Name != "beta.go" {
		t.Fatalf("Matches() = %v, want [beta.go]", matches)
	}
	if got := len(matches[0].Indexes); got != 3 {
		t.Errorf("len(Indexes) = %d, want 3", got)
	}

	typeKeys(s, "<BS><BS><BS>")
	if got := len(f.Matches()); got != 3 {
		t.Errorf("len(Matches()) after clearing = %d, want 3", got)
	}

	typeKeys(s, "bet<CR>")
	assertMode(t, s, ModeNormal)
	if got := s.CurrentBuffer().Name(); got != "beta.go" {
		t.Errorf("CurrentBuffer().Name() = %q, want beta.go", got)
	}
}

func TestFindNoMatch(t *testing.T) {
	s := newFindState(t)
	f := findMode(t, s)

	typeKeys(s, "zzz")
	if got := len(f.Matches()); got != 0 {
		t.Errorf("len(Matches()) = %d, want 0", got)
	}

	s.Dispatch(key.Enter)
	assertMode(t, s, ModeNormal)
	if got := s.CurrentBuffer().Name(); got != "gamma.txt" {
		t.Errorf("CurrentBuffer().Name() = %q, want gamma.txt", got)
	}
}

func TestFindCursorWraps(t *testing.T) {
	s := newFindState(t)
	f := findMode(t, s)

	tests := []struct {
		key  key.Key
		want int
	}{
		{key.Up, 2},
		{key.Down, 0},
		{key.Down, 1},
		{key.Ctrl('n'), 2},
		{key.Tab, 0},
		{key.Ctrl('p'), 2},
	}
	for _, tt := range tests {
		s.Dispatch(tt.key)
		if got := f.Cursor(); got != tt.want {
			t.Errorf("after %s Cursor() = %d, want %d", tt.key, got, tt.want)
		}
	}

	s.Dispatch(key.Enter)
	if got := s.CurrentBuffer().Name(); got != "gamma.txt" {
		t.Errorf("CurrentBuffer().Name() = %q, want gamma.txt", got)
	}
}

func TestFindCancel(t *testing.T) {
	for _, k := range []key.Key{key.Esc, key.Ctrl('c')} {
		t.Run(k.String(), func(t *testing.T) {
			s := newFindState(t)
			typeKeys(s, "al")
			s.Dispatch(k)
			assertMode(t, s, ModeNormal)
			if got := s.CurrentBuffer().Name(); got != "gamma.txt" {
				t.Errorf("CurrentBuffer().Name() = %q, want gamma.txt", got)
			}
		})
	}
}

func TestFindWithoutBuffers(t *testing.T) {
	s := NewState()
	s.Dispatch(key.Ctrl('p'))
	f := findMode(t, s)

	typeKeys(s, "x<Down><CR>")
	if len(f.Matches()) != 0 {
		t.Errorf("Matches() = %v, want none", f.Matches())
	}
	assertMode(t, s, ModeNormal)
}
