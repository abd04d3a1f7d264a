package mode

import (
	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/engine/buffer"
	"github.com/dshills/brz/internal/input/key"
	"github.com/dshills/brz/internal/input/keymap"
)

// Normal interprets keys as selection motions and editing commands.
type Normal struct{}

// NewNormal creates a Normal mode value.
func NewNormal() *Normal {
	return &Normal{}
}

func (*Normal) mode() {}

// Name returns the mode identifier.
func (*Normal) Name() string { return ModeNormal }

// DisplayName returns the human-readable mode name.
func (*Normal) DisplayName() string { return "NORMAL" }

// CursorStyle returns the cursor style for normal mode.
func (*Normal) CursorStyle() CursorStyle { return CursorBlock }

// Actions returns the actions keys can be mapped to in normal mode.
func (*Normal) Actions() Actions { return normalActions }

// DefaultKeymap returns the built-in normal mode mappings.
func (*Normal) DefaultKeymap() *keymap.Keymap {
	return keymap.NewKeymap("default-normal").ForMode(ModeNormal).WithSource("default").
		Add(":", "command_mode").
		Add("i", "insert_before").
		Add("a", "insert_after").
		Add("o", "open_below").
		Add("O", "open_above").
		Add("<Home>", "line_start").
		Add("<End>", "line_end").
		Add("]", "next_buffer").
		Add("[", "prev_buffer").
		Add("<C-q>", "quit")
}

// handle runs one key.
//
// Without a buffer only ":" and Ctrl-p do anything. Digits extend the
// repeat count. Any other key runs once, with the count, between two undo
// boundaries, after which the count is cleared.
func (n *Normal) handle(s *State, k key.Key) {
	buf := s.CurrentBuffer()
	if buf == nil {
		n.handleNoBuffer(s, k)
		return
	}

	if d, ok := k.Digit(); ok {
		s.count.Push(d)
		return
	}

	buf.MaybeCommitUndoPoint()
	n.handleNotDigit(s, buf, k)
	s.count.Clear()

	buf.MaybeCommitUndoPoint()
	if cur := s.CurrentBuffer(); cur != nil && cur != buf {
		cur.MaybeCommitUndoPoint()
	}
}

func (n *Normal) handleNoBuffer(s *State, k key.Key) {
	switch k {
	case key.Char(':'):
		s.SetMode(NewCommand())
	case key.Ctrl('p'):
		s.SetMode(NewFind())
	}
}

func (n *Normal) handleNotDigit(s *State, buf *engine.BufferState, k key.Key) {
	times := s.count.Times()

	switch k {
	case key.Esc:
	case key.Space:
		buf.Collapse()
	case key.Ctrl('p'):
		s.SetMode(NewFind())
	case key.Char('g'):
		if line, ok := s.count.Get(); ok {
			buf.MoveCursorCoord(func(p engine.Point, b *buffer.Buffer) engine.Point {
				return p.SetLine(max(line-1, 0), b)
			})
		} else {
			s.SetMode(NewGoto())
		}
	case key.Left, key.Char('h'):
		buf.MoveCursorBackward(times)
	case key.Right, key.Char('l'):
		buf.MoveCursorForward(times)
	case key.Up, key.Char('k'):
		buf.MoveCursorUp(times)
	case key.Down, key.Char('j'):
		buf.MoveCursorDown(times)
	case key.Char('H'):
		buf.ExtendCursorBackward(times)
	case key.Char('L'):
		buf.ExtendCursorForward(times)
	case key.Char('K'):
		buf.ExtendCursorUp(times)
	case key.Char('J'):
		buf.ExtendCursorDown(times)
	case key.Char('d'):
		deleteToRegister(s, buf, times)
	case key.Char('c'):
		deleteToRegister(s, buf, times)
		s.SetMode(NewInsert(InsertReplace))
	case key.Char('y'):
		s.register.Set(buf.Yank())
	case key.Char('p'):
		buf.Paste(s.register.Get())
	case key.Char('P'):
		buf.PasteExtend(s.register.Get())
	case key.Char('w'):
		buf.MoveCursor2(buffer.ForwardWord, times)
	case key.Char('W'):
		buf.ExtendCursor2(buffer.ForwardWord, times)
	case key.Char('b'):
		buf.MoveCursor2(buffer.BackwardWord, times)
	case key.Char('B'):
		buf.ExtendCursor2(buffer.BackwardWord, times)
	case key.Char('x'):
		buf.MoveLine(times)
	case key.Char('X'):
		buf.ExtendLine(times)
	case key.Char('%'):
		buf.SelectAll()
	case key.Char('\''), key.Alt(';'):
		buf.ReverseSelections()
	case key.Char('u'):
		if times > 0 && buf.Undo(times) == 0 {
			s.SetMessage("nothing to undo")
			s.Ring()
		}
	case key.Char('U'):
		if times > 0 && buf.Redo(times) == 0 {
			s.SetMessage("nothing to redo")
			s.Ring()
		}
	default:
		s.resolve(n, k).Execute(s)
	}
}

var normalActions = Actions{
	"command_mode":  ActionFunc(func(s *State) { s.SetMode(NewCommand()) }),
	"find_mode":     ActionFunc(func(s *State) { s.SetMode(NewFind()) }),
	"goto_mode":     ActionFunc(func(s *State) { s.SetMode(NewGoto()) }),
	"insert_before": ActionFunc(func(s *State) { s.SetMode(NewInsert(InsertBefore)) }),
	"insert_after":  ActionFunc(func(s *State) { s.SetMode(NewInsert(InsertAfter)) }),
	"open_below":    withBuffer(openBelow),
	"open_above":    withBuffer(openAbove),
	"line_start":    withBuffer(lineStart),
	"line_end":      withBuffer(lineEnd),
	"next_buffer":   ActionFunc(func(s *State) { s.Buffers().Next() }),
	"prev_buffer":   ActionFunc(func(s *State) { s.Buffers().Prev() }),
	"close_buffer":  ActionFunc(func(s *State) { s.closeCurrentBuffer() }),
	"quit":          ActionFunc(func(s *State) { s.RequestQuit() }),
}

// deleteToRegister deletes n times and stores the removed text. A delete
// that removed nothing leaves the register untouched.
func deleteToRegister(s *State, buf *engine.BufferState, n int) {
	if removed := buf.Delete(n); !removed.IsEmpty() {
		s.register.Set(removed)
	}
}

func openBelow(s *State, buf *engine.BufferState) {
	buf.OpenLine(true)
	s.SetMode(NewInsert(InsertBefore))
}

func openAbove(s *State, buf *engine.BufferState) {
	buf.OpenLine(false)
	s.SetMode(NewInsert(InsertBefore))
}

func lineStart(_ *State, buf *engine.BufferState) {
	buf.MoveCursorCoord(lineStartPoint)
}

func lineEnd(_ *State, buf *engine.BufferState) {
	buf.MoveCursorCoord(lineEndPoint)
}
