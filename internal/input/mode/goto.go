package mode

import (
	"math"

	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/engine/buffer"
	"github.com/dshills/brz/internal/input/key"
	"github.com/dshills/brz/internal/input/keymap"
)

// Goto waits for one key naming a jump target, then returns to Normal.
type Goto struct{}

// NewGoto creates a Goto mode value.
func NewGoto() *Goto {
	return &Goto{}
}

func (*Goto) mode() {}

// Name returns the mode identifier.
func (*Goto) Name() string { return ModeGoto }

// DisplayName returns the human-readable mode name.
func (*Goto) DisplayName() string { return "GOTO" }

// CursorStyle returns the cursor style for goto mode.
func (*Goto) CursorStyle() CursorStyle { return CursorUnderline }

// Actions returns the actions keys can be mapped to in goto mode.
func (*Goto) Actions() Actions { return gotoActions }

// DefaultKeymap returns the built-in goto mode mappings.
func (*Goto) DefaultKeymap() *keymap.Keymap {
	return keymap.NewKeymap("default-goto").ForMode(ModeGoto).WithSource("default").
		Add("n", "next_buffer").
		Add("p", "prev_buffer")
}

// gotoTargets maps built-in keys to the point they jump to.
var gotoTargets = map[key.Key]engine.CoordFunc{
	key.Char('g'): bufferStart,
	key.Char('k'): bufferStart,
	key.Char('j'): lastLineStart,
	key.Char('e'): lastLineStart,
	key.Char('h'): lineStartPoint,
	key.Char('l'): lineEndPoint,
}

func bufferStart(engine.Point, *buffer.Buffer) engine.Point {
	return engine.Point{}
}

func lastLineStart(_ engine.Point, b *buffer.Buffer) engine.Point {
	return engine.Point{Line: b.LineCount() - 1}
}

func lineStartPoint(p engine.Point, _ *buffer.Buffer) engine.Point {
	return engine.Point{Line: p.Line}
}

// lineEndPoint relies on the buffer clamping the column to the line length.
func lineEndPoint(p engine.Point, _ *buffer.Buffer) engine.Point {
	return engine.Point{Line: p.Line, Column: math.MaxInt}
}

func (m *Goto) handle(s *State, k key.Key) {
	s.SetMode(NewNormal())

	buf := s.CurrentBuffer()
	if buf == nil {
		return
	}
	if fn, ok := gotoTargets[k]; ok {
		buf.MoveCursorCoord(fn)
		return
	}
	s.resolve(m, k).Execute(s)
}

var gotoActions = Actions{
	"next_buffer": normalActions["next_buffer"],
	"prev_buffer": normalActions["prev_buffer"],
}
