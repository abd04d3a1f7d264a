package mode

import (
	"testing"

	"github.com/dshills/brz/internal/engine/cursor"
	"github.com/dshills/brz/internal/input/key"
)

func TestInsertEnter(t *testing.T) {
	tests := []struct {
		name string
		kind InsertKind
		want cursor.Selection
	}{
		{"before", InsertBefore, cursor.NewCursorSelection(1)},
		{"after", InsertAfter, cursor.NewCursorSelection(4)},
		{"replace", InsertReplace, cursor.NewSelection(4, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf := newTestState(t, "hello", cursor.NewSelection(4, 1))
			s.SetMode(NewInsert(tt.kind))
			assertSelections(t, buf, tt.want)
			if got := s.Mode().CursorStyle(); got != CursorBar {
				t.Errorf("CursorStyle() = %v, want %v", got, CursorBar)
			}
		})
	}
}

func TestInsertTyping(t *testing.T) {
	s, buf := newTestState(t, "hello")

	typeKeys(s, "iab<CR>c<Tab>d")
	assertText(t, buf, "ab\nc\tdhello")
	assertSelections(t, buf, cursor.NewCursorSelection(6))
	assertMode(t, s, ModeInsert)

	typeKeys(s, "<BS><BS>")
	assertText(t, buf, "ab\nchello")

	s.Dispatch(key.Esc)
	assertMode(t, s, ModeNormal)
	if got := buf.History().UndoCount(); got != 1 {
		t.Errorf("UndoCount() = %d, want 1", got)
	}

	s.Dispatch(key.Char('u'))
	assertText(t, buf, "hello")
}

func TestInsertDigitsAreText(t *testing.T) {
	s, buf := newTestState(t, "")

	typeKeys(s, "i42<Esc>")
	assertText(t, buf, "42")
	if _, ok := s.Count(); ok {
		t.Error("digits typed in insert mode set the count")
	}
}

func TestInsertReplace(t *testing.T) {
	s, buf := newTestState(t, "hello world", cursor.NewSelection(0, 5))

	s.SetMode(NewInsert(InsertReplace))
	typeKeys(s, "bye")
	assertText(t, buf, "bye world")
}

func TestInsertMultipleSelections(t *testing.T) {
	s, buf := newTestState(t, "ab\ncd", cursor.NewCursorSelection(0), cursor.NewCursorSelection(3))

	typeKeys(s, "i-<Esc>")
	assertText(t, buf, "-ab\n-cd")
	assertSelections(t, buf, cursor.NewCursorSelection(1), cursor.NewCursorSelection(5))
}

func TestInsertActions(t *testing.T) {
	s, buf := newTestState(t, "abc\ndef", cursor.NewCursorSelection(1))

	typeKeys(s, "i<Right>")
	assertSelections(t, buf, cursor.NewCursorSelection(2))

	typeKeys(s, "<Down>")
	assertSelections(t, buf, cursor.NewCursorSelection(6))

	typeKeys(s, "<Left><Up>")
	assertSelections(t, buf, cursor.NewCursorSelection(1))

	typeKeys(s, "<Delete>")
	assertText(t, buf, "ac\ndef")

	s.Dispatch(key.Ctrl('c'))
	assertMode(t, s, ModeNormal)
	if got := buf.History().UndoCount(); got != 1 {
		t.Errorf("UndoCount() = %d, want 1", got)
	}
}

func TestInsertWithoutBuffer(t *testing.T) {
	s := NewState()
	s.SetMode(NewInsert(InsertBefore))

	s.Dispatch(key.Char('a'))
	assertMode(t, s, ModeNormal)
}
