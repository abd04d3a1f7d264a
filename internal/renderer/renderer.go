package renderer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"

	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/input/mode"
	"github.com/dshills/brz/internal/renderer/backend"
)

// Options configures the renderer.
type Options struct {
	TabWidth     int // Columns per tab stop
	ScrollMargin int // Lines to keep above and below the primary head
	MaxMatches   int // Picker rows shown in find mode
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		TabWidth:     4,
		ScrollMargin: 2,
		MaxMatches:   8,
	}
}

// Renderer draws a mode.State to a backend.
type Renderer struct {
	backend backend.Backend
	opts    Options

	// top is the first visible line of buffer bufID.
	top   int
	bufID uuid.UUID
}

// New creates a renderer drawing to b.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = DefaultOptions().TabWidth
	}
	if opts.ScrollMargin < 0 {
		opts.ScrollMargin = 0
	}
	return &Renderer{backend: b, opts: opts}
}

// Top returns the first visible buffer line.
func (r *Renderer) Top() int {
	return r.top
}

// Render draws s and flushes the backend.
func (r *Renderer) Render(s *mode.State) {
	width, height := r.backend.Size()
	if width <= 0 || height <= 0 {
		return
	}
	r.backend.Clear()

	rows := height - 1
	curX, curY, curOK := 0, 0, false
	if buf := s.CurrentBuffer(); buf != nil && rows > 0 {
		curX, curY, curOK = r.drawBuffer(buf, width, rows)
	}

	statusX := r.drawStatus(s, width, height-1)
	if f, ok := s.Mode().(*mode.Find); ok && rows > 0 {
		r.drawMatches(f, width, rows)
	}

	switch s.Mode().(type) {
	case *mode.Command, *mode.Find:
		curX, curY, curOK = statusX, height-1, true
	}

	if curOK {
		r.backend.SetCursorStyle(cursorStyle(s.Mode().CursorStyle()))
		r.backend.ShowCursor(curX, curY)
	} else {
		r.backend.HideCursor()
	}
	r.backend.Show()
}

func cursorStyle(c mode.CursorStyle) backend.CursorStyle {
	switch c {
	case mode.CursorBar:
		return backend.CursorBar
	case mode.CursorUnderline:
		return backend.CursorUnderline
	default:
		return backend.CursorBlock
	}
}

// scroll moves the viewport so line is visible with the configured margin.
func (r *Renderer) scroll(line, rows int) {
	margin := min(r.opts.ScrollMargin, (rows-1)/2)
	if line < r.top+margin {
		r.top = max(line-margin, 0)
	}
	if line >= r.top+rows-margin {
		r.top = line - rows + margin + 1
	}
}

// drawBuffer draws the visible lines and returns the screen position of
// the primary selection head, if it is visible.
func (r *Renderer) drawBuffer(buf *engine.BufferState, width, rows int) (int, int, bool) {
	if buf.ID() != r.bufID {
		r.bufID = buf.ID()
		r.top = 0
	}

	b := buf.Buffer()
	sels := buf.Selections()
	primary := sels[0].Head
	r.scroll(b.LineOf(primary), rows)

	curX, curY, curOK := 0, 0, false
	for y := 0; y < rows; y++ {
		line := r.top + y
		if line >= b.LineCount() {
			break
		}
		start, end := b.LineStartOffset(line), b.LineEndOffset(line)

		x := 0
		off := start
		g := uniseg.NewGraphemes(b.TextRange(start, end))
		for g.Next() && x < width {
			if off == primary {
				curX, curY, curOK = x, y, true
			}
			style := styleAt(sels, off)
			runes := g.Runes()
			w := g.Width()
			if runes[0] == '\t' {
				w = r.opts.TabWidth - x%r.opts.TabWidth
				for i := 0; i < w; i++ {
					r.backend.SetCell(x+i, y, backend.Cell{Rune: ' ', Style: style})
				}
			} else {
				r.backend.SetCell(x, y, backend.Cell{Rune: runes[0], Combining: runes[1:], Style: style})
			}
			x += max(w, 1)
			off += engine.ByteOffset(len(g.Str()))
		}

		// A head at the end of the line sits on the line break.
		if off == end && x < width {
			if style := styleAt(sels, end); style != backend.StyleDefault {
				r.backend.SetCell(x, y, backend.Cell{Rune: ' ', Style: style})
			}
			if end == primary {
				curX, curY, curOK = x, y, true
			}
		}
	}
	return curX, curY, curOK
}

// styleAt returns how the grapheme at off is drawn.
func styleAt(sels []engine.Selection, off engine.ByteOffset) backend.Style {
	style := backend.StyleDefault
	for _, sel := range sels {
		if sel.Head == off {
			return backend.StyleCursor
		}
		if sel.Start() <= off && off < sel.End() {
			style = backend.StyleSelection
		}
	}
	return style
}

// drawText draws s from x on row y and returns the column after it.
func (r *Renderer) drawText(x, y, width int, s string, style backend.Style) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() && x < width {
		runes := g.Runes()
		r.backend.SetCell(x, y, backend.Cell{Rune: runes[0], Combining: runes[1:], Style: style})
		x += max(g.Width(), 1)
	}
	return x
}

// drawStatus draws the status line on row y and returns where the
// command line cursor goes.
func (r *Renderer) drawStatus(s *mode.State, width, y int) int {
	for x := 0; x < width; x++ {
		r.backend.SetCell(x, y, backend.Cell{Rune: ' ', Style: backend.StyleStatus})
	}

	switch m := s.Mode().(type) {
	case *mode.Command:
		return r.drawText(0, y, width, ":"+m.Line(), backend.StyleStatus)
	case *mode.Find:
		return r.drawText(0, y, width, "find: "+m.Query(), backend.StyleStatus)
	}

	x := r.drawText(0, y, width, " "+s.Mode().DisplayName()+" ", backend.StyleStatusMode)

	var left strings.Builder
	buf := s.CurrentBuffer()
	if buf == nil {
		left.WriteString(" [no buffer]")
	} else {
		left.WriteString(" " + buf.Name())
	}
	if n, ok := s.Count(); ok {
		fmt.Fprintf(&left, " %d", n)
	}
	x = r.drawText(x, y, width, left.String(), backend.StyleStatus)

	if msg := s.Message(); msg != "" {
		x = r.drawText(x+1, y, width, msg, backend.StyleMessage)
	}

	if buf != nil {
		head := buf.Selections()[0].Head
		p := buf.Buffer().OffsetToPoint(head)
		pos := fmt.Sprintf("%d:%d ", p.Line+1, p.Column+1)
		if px := width - uniseg.StringWidth(pos); px > x {
			r.drawText(px, y, width, pos, backend.StyleStatus)
		}
	}
	return x
}

// drawMatches lists the picker's matches just above the status line.
func (r *Renderer) drawMatches(f *mode.Find, width, rows int) {
	matches := f.Matches()
	n := min(len(matches), rows, max(r.opts.MaxMatches, 1))

	// Keep the highlighted match in view.
	first := max(f.Cursor()-n+1, 0)
	for i := 0; i < n; i++ {
		idx := first + i
		y := rows - n + i
		m := matches[idx]

		base := backend.StyleStatus
		if idx == f.Cursor() {
			base = backend.StyleSelection
		}
		for x := 0; x < width; x++ {
			r.backend.SetCell(x, y, backend.Cell{Rune: ' ', Style: base})
		}

		matched := make(map[int]bool, len(m.Indexes))
		for _, j := range m.Indexes {
			matched[j] = true
		}
		x := 0
		for j, ch := range m.Name {
			if x >= width {
				break
			}
			style := base
			if matched[j] {
				style = backend.StyleMatch
			}
			r.backend.SetCell(x, y, backend.Cell{Rune: ch, Style: style})
			x += max(uniseg.StringWidth(string(ch)), 1)
		}
	}
}
