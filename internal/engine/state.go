package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/brz/internal/engine/buffer"
	"github.com/dshills/brz/internal/engine/cursor"
	"github.com/dshills/brz/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// ByteOffset is a byte position in the buffer.
	ByteOffset = buffer.ByteOffset

	// Point represents a line/column position.
	Point = buffer.Point

	// Range represents a byte range in the buffer.
	Range = buffer.Range

	// Selection represents a cursor selection.
	Selection = cursor.Selection

	// WordFunc computes a word boundary.
	WordFunc = buffer.WordFunc
)

// CoordFunc maps the head's point to a new point.
type CoordFunc func(p Point, b *buffer.Buffer) Point

// BufferState is one open buffer: its text, selections and undo history.
type BufferState struct {
	id   uuid.UUID
	name string
	path string

	buf  *buffer.Buffer
	sels *cursor.SelectionSet
	hist *history.History

	maxUndoEntries int
}

// NewBufferState creates a buffer named name holding text, with a point
// selection at the start.
func NewBufferState(name, text string, opts ...Option) *BufferState {
	s := &BufferState{
		id:             uuid.New(),
		name:           name,
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.buf = buffer.New(text)
	s.sels = cursor.NewSelectionSet(0)
	s.hist = history.New(s.maxUndoEntries)
	return s
}

// ID returns the buffer's unique identity.
func (s *BufferState) ID() uuid.UUID { return s.id }

// Name returns the display name.
func (s *BufferState) Name() string { return s.name }

// Path returns the file the buffer was read from, if any.
func (s *BufferState) Path() string { return s.path }

// Buffer returns the underlying text buffer for reading.
func (s *BufferState) Buffer() *buffer.Buffer { return s.buf }

// Text returns the buffer content.
func (s *BufferState) Text() string { return s.buf.Text() }

// Selections returns a copy of the current selections.
func (s *BufferState) Selections() []Selection { return s.sels.All() }

// SetSelections replaces the selections, clamped to the buffer.
func (s *BufferState) SetSelections(sels []Selection) {
	s.sels.SetAll(sels)
	s.sels.Clamp(s.buf.Len())
}

// History returns the undo history.
func (s *BufferState) History() *history.History { return s.hist }

// step advances from pos at most n times, stopping when step makes no progress.
func step(pos ByteOffset, n int, next func(ByteOffset) ByteOffset) ByteOffset {
	for i := 0; i < n; i++ {
		p := next(pos)
		if p == pos {
			break
		}
		pos = p
	}
	return pos
}

// motion moves the head of every selection n steps.
func (s *BufferState) motion(n int, next func(ByteOffset) ByteOffset, extend bool) {
	s.sels.Map(func(_ int, sel Selection) Selection {
		head := step(sel.Head, n, next)
		if extend {
			return sel.Extend(head)
		}
		return sel.MoveTo(head)
	})
}

// lineStep returns a step function moving delta lines, keeping the
// grapheme column where the target line allows.
func (s *BufferState) lineStep(delta int) func(ByteOffset) ByteOffset {
	return func(off ByteOffset) ByteOffset {
		p := s.buf.OffsetToPoint(off)
		line := p.Line + delta
		if line < 0 || line >= s.buf.LineCount() {
			return off
		}
		return s.buf.PointToOffset(Point{Line: line, Column: p.Column})
	}
}

func (s *BufferState) wordStep(fn WordFunc) func(ByteOffset) ByteOffset {
	return func(off ByteOffset) ByteOffset { return fn(s.buf, off) }
}

// MoveCursorForward moves every head n grapheme clusters forward.
func (s *BufferState) MoveCursorForward(n int) { s.motion(n, s.buf.NextGrapheme, false) }

// MoveCursorBackward moves every head n grapheme clusters backward.
func (s *BufferState) MoveCursorBackward(n int) { s.motion(n, s.buf.PrevGrapheme, false) }

// MoveCursorUp moves every head n lines up.
func (s *BufferState) MoveCursorUp(n int) { s.motion(n, s.lineStep(-1), false) }

// MoveCursorDown moves every head n lines down.
func (s *BufferState) MoveCursorDown(n int) { s.motion(n, s.lineStep(1), false) }

// ExtendCursorForward extends every selection n grapheme clusters forward.
func (s *BufferState) ExtendCursorForward(n int) { s.motion(n, s.buf.NextGrapheme, true) }

// ExtendCursorBackward extends every selection n grapheme clusters backward.
func (s *BufferState) ExtendCursorBackward(n int) { s.motion(n, s.buf.PrevGrapheme, true) }

// ExtendCursorUp extends every selection n lines up.
func (s *BufferState) ExtendCursorUp(n int) { s.motion(n, s.lineStep(-1), true) }

// ExtendCursorDown extends every selection n lines down.
func (s *BufferState) ExtendCursorDown(n int) { s.motion(n, s.lineStep(1), true) }

// MoveCursor2 moves every head to the boundary computed by fn, n times.
func (s *BufferState) MoveCursor2(fn WordFunc, n int) { s.motion(n, s.wordStep(fn), false) }

// ExtendCursor2 extends every selection to the boundary computed by fn, n times.
func (s *BufferState) ExtendCursor2(fn WordFunc, n int) { s.motion(n, s.wordStep(fn), true) }

// nextLineStart returns the start of the line after the one holding off,
// or the end of the buffer.
func (s *BufferState) nextLineStart(off ByteOffset) ByteOffset {
	return s.buf.LineStartOffset(s.buf.LineOf(off) + 1)
}

// MoveLine selects whole lines: the anchor goes to the start of the head's
// line and the head to the start of the line n lines below.
func (s *BufferState) MoveLine(n int) {
	s.sels.Map(func(_ int, sel Selection) Selection {
		start := s.buf.LineStartOffset(s.buf.LineOf(sel.Head))
		return Selection{Anchor: start, Head: step(start, n, s.nextLineStart)}
	})
}

// ExtendLine moves every head to the start of the next line, n times,
// keeping the anchor.
func (s *BufferState) ExtendLine(n int) { s.motion(n, s.nextLineStart, true) }

// MoveCursorCoord moves every head to the point computed by fn.
func (s *BufferState) MoveCursorCoord(fn CoordFunc) {
	s.sels.Map(func(_ int, sel Selection) Selection {
		p := fn(s.buf.OffsetToPoint(sel.Head), s.buf)
		return sel.MoveTo(s.buf.PointToOffset(p))
	})
}

// Collapse collapses every selection onto its head.
func (s *BufferState) Collapse() { s.sels.CollapseAll() }

// CollapseToStart collapses every selection onto its start.
func (s *BufferState) CollapseToStart() {
	s.sels.Map(func(_ int, sel Selection) Selection { return cursor.NewCursorSelection(sel.Start()) })
}

// CollapseToEnd collapses every selection onto its end.
func (s *BufferState) CollapseToEnd() {
	s.sels.Map(func(_ int, sel Selection) Selection { return cursor.NewCursorSelection(sel.End()) })
}

// SelectAll replaces all selections with one covering the whole buffer.
func (s *BufferState) SelectAll() {
	s.sels.Set(cursor.NewSelection(0, s.buf.Len()))
}

// ReverseSelections swaps anchor and head of every selection.
func (s *BufferState) ReverseSelections() { s.sels.FlipAll() }
