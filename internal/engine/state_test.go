package engine

import (
	"math"
	"testing"

	"github.com/dshills/brz/internal/engine/buffer"
	"github.com/dshills/brz/internal/engine/cursor"
)

func newState(text string, sels ...Selection) *BufferState {
	s := NewBufferState("test", text)
	if len(sels) > 0 {
		s.SetSelections(sels)
	}
	return s
}

func assertSelections(t *testing.T, s *BufferState, want ...Selection) {
	t.Helper()
	got := s.Selections()
	if len(got) != len(want) {
		t.Fatalf("Selections() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Selections()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMoveVersusExtend(t *testing.T) {
	const text = "alpha beta\ngamma delta\nepsilon"
	start := cursor.NewSelection(2, 4)

	tests := []struct {
		name   string
		op     func(s *BufferState)
		extend bool
		head   ByteOffset
	}{
		{"forward", func(s *BufferState) { s.MoveCursorForward(2) }, false, 6},
		{"extend forward", func(s *BufferState) { s.ExtendCursorForward(2) }, true, 6},
		{"backward", func(s *BufferState) { s.MoveCursorBackward(3) }, false, 1},
		{"extend backward", func(s *BufferState) { s.ExtendCursorBackward(3) }, true, 1},
		{"down", func(s *BufferState) { s.MoveCursorDown(1) }, false, 15},
		{"extend down", func(s *BufferState) { s.ExtendCursorDown(1) }, true, 15},
		{"up at top", func(s *BufferState) { s.MoveCursorUp(1) }, false, 4},
		{"word", func(s *BufferState) { s.MoveCursor2(buffer.ForwardWord, 1) }, false, 6},
		{"extend word", func(s *BufferState) { s.ExtendCursor2(buffer.ForwardWord, 1) }, true, 6},
		{"word back", func(s *BufferState) { s.MoveCursor2(buffer.BackwardWord, 1) }, false, 0},
		{"extend word back", func(s *BufferState) { s.ExtendCursor2(buffer.BackwardWord, 1) }, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newState(text, start)
			tt.op(s)
			want := cursor.NewSelection(start.Head, tt.head)
			if tt.extend {
				want = cursor.NewSelection(start.Anchor, tt.head)
			}
			assertSelections(t, s, want)
		})
	}
}

func TestMotionKeepsGraphemeColumn(t *testing.T) {
	// Line 0 has a two-byte character before the head.
	s := newState("éab\nxyz", cursor.NewCursorSelection(3))
	s.MoveCursorDown(1)
	assertSelections(t, s, cursor.NewSelection(3, 7))

	s.MoveCursorUp(1)
	assertSelections(t, s, cursor.NewSelection(7, 3))
}

func TestMotionShortLineClamps(t *testing.T) {
	s := newState("hello\nab\nworld", cursor.NewCursorSelection(4))
	s.MoveCursorDown(1)
	assertSelections(t, s, cursor.NewSelection(4, 8))
}

func TestHugeCountStops(t *testing.T) {
	s := newState("abc")
	s.MoveCursorForward(math.MaxInt)
	assertSelections(t, s, cursor.NewSelection(0, 3))

	s.MoveCursorDown(math.MaxInt)
	assertSelections(t, s, cursor.NewCursorSelection(3))

	s.MoveLine(math.MaxInt)
	assertSelections(t, s, cursor.NewSelection(0, 3))
}

func TestMoveLine(t *testing.T) {
	s := newState("one\ntwo\nthree", cursor.NewCursorSelection(5))
	s.MoveLine(1)
	assertSelections(t, s, cursor.NewSelection(4, 8))

	// Repeating selects the next line.
	s.MoveLine(1)
	assertSelections(t, s, cursor.NewSelection(8, 13))

	s = newState("one\ntwo\nthree", cursor.NewCursorSelection(1))
	s.MoveLine(2)
	assertSelections(t, s, cursor.NewSelection(0, 8))
}

func TestExtendLine(t *testing.T) {
	s := newState("one\ntwo\nthree", cursor.NewCursorSelection(1))
	s.ExtendLine(1)
	assertSelections(t, s, cursor.NewSelection(1, 4))

	s.ExtendLine(1)
	assertSelections(t, s, cursor.NewSelection(1, 8))
}

func TestMoveCursorCoord(t *testing.T) {
	s := newState("one\ntwo\nthree", cursor.NewCursorSelection(1))
	s.MoveCursorCoord(func(p Point, b *buffer.Buffer) Point {
		return p.SetLine(2, b)
	})
	assertSelections(t, s, cursor.NewSelection(1, 9))

	s.MoveCursorCoord(func(p Point, b *buffer.Buffer) Point {
		return p.SetLine(100, b)
	})
	assertSelections(t, s, cursor.NewSelection(9, 9))
}

func TestSelectionCommands(t *testing.T) {
	s := newState("hello world", cursor.NewSelection(2, 5))

	s.ReverseSelections()
	assertSelections(t, s, cursor.NewSelection(5, 2))

	s.Collapse()
	assertSelections(t, s, cursor.NewCursorSelection(2))

	s.SelectAll()
	assertSelections(t, s, cursor.NewSelection(0, 11))

	s.CollapseToStart()
	assertSelections(t, s, cursor.NewCursorSelection(0))

	s.SelectAll()
	s.CollapseToEnd()
	assertSelections(t, s, cursor.NewCursorSelection(11))
}

func TestMultipleSelectionsMove(t *testing.T) {
	s := newState("ab\ncd", cursor.NewCursorSelection(0), cursor.NewCursorSelection(3))
	s.ExtendCursorForward(1)
	assertSelections(t, s, cursor.NewSelection(0, 1), cursor.NewSelection(3, 4))
}
