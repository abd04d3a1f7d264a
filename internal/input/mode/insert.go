package mode

import (
	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/input/key"
	"github.com/dshills/brz/internal/input/keymap"
)

// InsertKind says where typing starts when Insert mode is entered.
type InsertKind uint8

const (
	// InsertBefore collapses each selection to its start.
	InsertBefore InsertKind = iota

	// InsertAfter collapses each selection to its end.
	InsertAfter

	// InsertReplace keeps the selections; the first text typed replaces them.
	InsertReplace
)

// String returns the kind name.
func (k InsertKind) String() string {
	switch k {
	case InsertBefore:
		return "before"
	case InsertAfter:
		return "after"
	case InsertReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Insert types text into every selection.
type Insert struct {
	Kind InsertKind
}

// NewInsert creates an Insert mode value.
func NewInsert(kind InsertKind) *Insert {
	return &Insert{Kind: kind}
}

func (*Insert) mode() {}

// Name returns the mode identifier.
func (*Insert) Name() string { return ModeInsert }

// DisplayName returns the human-readable mode name.
func (*Insert) DisplayName() string { return "INSERT" }

// CursorStyle returns the cursor style for insert mode.
func (*Insert) CursorStyle() CursorStyle { return CursorBar }

// Actions returns the actions keys can be mapped to in insert mode.
func (*Insert) Actions() Actions { return insertActions }

// DefaultKeymap returns the built-in insert mode mappings.
func (*Insert) DefaultKeymap() *keymap.Keymap {
	return keymap.NewKeymap("default-insert").ForMode(ModeInsert).WithSource("default").
		Add("<C-c>", "normal_mode").
		Add("<Left>", "move_left").
		Add("<Right>", "move_right").
		Add("<Up>", "move_up").
		Add("<Down>", "move_down").
		Add("<Delete>", "delete_forward")
}

func (m *Insert) enter(s *State) {
	buf := s.CurrentBuffer()
	if buf == nil {
		return
	}
	switch m.Kind {
	case InsertBefore:
		buf.CollapseToStart()
	case InsertAfter:
		buf.CollapseToEnd()
	}
}

func (m *Insert) handle(s *State, k key.Key) {
	buf := s.CurrentBuffer()
	if buf == nil {
		s.SetMode(NewNormal())
		return
	}

	switch {
	case k == key.Esc:
		leaveInsert(s)
	case k == key.Enter:
		buf.InsertText("\n")
	case k == key.Tab:
		buf.InsertText("\t")
	case k == key.Backspace:
		buf.Backspace()
	case k.IsChar():
		buf.InsertText(string(k.Rune))
	default:
		s.resolve(m, k).Execute(s)
	}
}

// leaveInsert closes the insert session's undo step and returns to Normal.
func leaveInsert(s *State) {
	if buf := s.CurrentBuffer(); buf != nil {
		buf.MaybeCommitUndoPoint()
	}
	s.SetMode(NewNormal())
}

var insertActions = Actions{
	"normal_mode":    ActionFunc(leaveInsert),
	"move_left":      withBuffer(func(_ *State, buf *engine.BufferState) { buf.MoveCursorBackward(1); buf.Collapse() }),
	"move_right":     withBuffer(func(_ *State, buf *engine.BufferState) { buf.MoveCursorForward(1); buf.Collapse() }),
	"move_up":        withBuffer(func(_ *State, buf *engine.BufferState) { buf.MoveCursorUp(1); buf.Collapse() }),
	"move_down":      withBuffer(func(_ *State, buf *engine.BufferState) { buf.MoveCursorDown(1); buf.Collapse() }),
	"delete_forward": withBuffer(func(_ *State, buf *engine.BufferState) { buf.Delete(1) }),
}
