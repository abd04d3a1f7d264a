package engine

import (
	"github.com/dshills/brz/internal/engine/cursor"
	"github.com/dshills/brz/internal/engine/history"
)

// edit replaces one range with text. A batch of edits is sorted by
// position and non-overlapping, one per selection.
type edit struct {
	at   Range
	text string
}

// applyEdits applies edits back to front, records them in the pending
// history group, and returns where each edit's text starts afterwards.
func (s *BufferState) applyEdits(edits []edit) []ByteOffset {
	before := s.sels.All()
	for i := len(edits) - 1; i >= 0; i-- {
		e := edits[i]
		old := s.buf.Replace(e.at.Start, e.at.End, e.text)
		s.hist.Record(history.NewOperation(e.at, old, e.text), before)
	}

	starts := make([]ByteOffset, len(edits))
	var delta ByteOffset
	for i, e := range edits {
		starts[i] = e.at.Start + delta
		delta += ByteOffset(len(e.text)) - e.at.Len()
	}
	return starts
}

// setSelections installs sels after an edit and updates the pending
// group's restore point.
func (s *BufferState) setSelections(sels []Selection) {
	s.sels.SetAll(sels)
	s.hist.SetAfter(s.sels.All())
}

// target is the range a delete or yank acts on: the selection, or the
// grapheme at the head of a point selection.
func (s *BufferState) target(sel Selection) Range {
	r := sel.Range()
	if r.IsEmpty() {
		r.End = s.buf.NextGrapheme(r.Start)
	}
	return r
}

// Yank returns the text of every selection. A point selection yields
// the grapheme under its head.
func (s *BufferState) Yank() Span {
	sels := s.sels.All()
	out := make(Span, len(sels))
	for i, sel := range sels {
		r := s.target(sel)
		out[i] = s.buf.TextRange(r.Start, r.End)
	}
	return out
}

// Delete removes the text of every selection, n times, and returns
// everything removed. Each selection collapses onto the deletion point.
// A point selection removes the grapheme under its head.
func (s *BufferState) Delete(n int) Span {
	var out Span
	for i := 0; i < n; i++ {
		removed, ok := s.deleteOnce()
		if !ok {
			break
		}
		out = out.concat(removed)
	}
	return out
}

func (s *BufferState) deleteOnce() (Span, bool) {
	sels := s.sels.All()
	edits := make([]edit, len(sels))
	removed := make(Span, len(sels))
	changed := false
	for i, sel := range sels {
		r := s.target(sel)
		edits[i] = edit{at: r}
		removed[i] = s.buf.TextRange(r.Start, r.End)
		if !r.IsEmpty() {
			changed = true
		}
	}
	if !changed {
		return nil, false
	}

	starts := s.applyEdits(edits)
	out := make([]Selection, len(starts))
	for i, p := range starts {
		out[i] = cursor.NewCursorSelection(p)
	}
	s.setSelections(out)
	return removed, true
}

// Paste inserts span after every selection, or after the grapheme under
// the head of a point selection. Each selection then covers the text
// pasted for it.
func (s *BufferState) Paste(span Span) { s.paste(span, false) }

// PasteExtend inserts span after every selection and grows each selection
// to end after the pasted text.
func (s *BufferState) PasteExtend(span Span) { s.paste(span, true) }

func (s *BufferState) paste(span Span, extend bool) {
	if span.IsEmpty() {
		return
	}
	sels := s.sels.All()
	edits := make([]edit, len(sels))
	for i, sel := range sels {
		at := s.target(sel).End
		edits[i] = edit{
			at:   Range{Start: at, End: at},
			text: span.For(i, len(sels)),
		}
	}

	starts := s.applyEdits(edits)
	out := make([]Selection, len(sels))
	for i, sel := range sels {
		end := starts[i] + ByteOffset(len(edits[i].text))
		if extend {
			shift := starts[i] - edits[i].at.Start
			out[i] = cursor.NewSelection(sel.Start()+shift, end)
		} else {
			out[i] = cursor.NewSelection(starts[i], end)
		}
	}
	s.setSelections(out)
}

// InsertText replaces every selection with text and leaves a point
// selection after the inserted text.
func (s *BufferState) InsertText(text string) {
	sels := s.sels.All()
	edits := make([]edit, len(sels))
	for i, sel := range sels {
		edits[i] = edit{at: sel.Range(), text: text}
	}
	starts := s.applyEdits(edits)
	out := make([]Selection, len(starts))
	for i, p := range starts {
		out[i] = cursor.NewCursorSelection(p + ByteOffset(len(text)))
	}
	s.setSelections(out)
}

// Backspace removes the text of every non-empty selection, or the
// grapheme before the head of every point selection.
func (s *BufferState) Backspace() {
	sels := s.sels.All()
	edits := make([]edit, len(sels))
	for i, sel := range sels {
		r := sel.Range()
		if r.IsEmpty() {
			r.Start = s.buf.PrevGrapheme(r.End)
		}
		edits[i] = edit{at: r}
	}
	starts := s.applyEdits(edits)
	out := make([]Selection, len(starts))
	for i, p := range starts {
		out[i] = cursor.NewCursorSelection(p)
	}
	s.setSelections(out)
}

// OpenLine inserts an empty line below (or above) the head's line and
// places a point selection on it.
func (s *BufferState) OpenLine(below bool) {
	sels := s.sels.All()
	edits := make([]edit, len(sels))
	for i, sel := range sels {
		line := s.buf.LineOf(sel.Head)
		at := s.buf.LineStartOffset(line)
		if below {
			at = s.buf.LineEndOffset(line)
		}
		edits[i] = edit{at: Range{Start: at, End: at}, text: "\n"}
	}
	starts := s.applyEdits(edits)
	out := make([]Selection, len(starts))
	for i, p := range starts {
		if below {
			p++
		}
		out[i] = cursor.NewCursorSelection(p)
	}
	s.setSelections(out)
}

// Undo reverts up to n undo steps and returns how many were reverted.
func (s *BufferState) Undo(n int) int {
	done := 0
	for ; done < n; done++ {
		sels, err := s.hist.Undo(s.buf)
		if err != nil {
			break
		}
		s.SetSelections(sels)
	}
	return done
}

// Redo reapplies up to n undone steps and returns how many were reapplied.
func (s *BufferState) Redo(n int) int {
	done := 0
	for ; done < n; done++ {
		sels, err := s.hist.Redo(s.buf)
		if err != nil {
			break
		}
		s.SetSelections(sels)
	}
	return done
}

// MaybeCommitUndoPoint closes the edits made since the previous call as
// one undo step. With no edits in between it does nothing.
func (s *BufferState) MaybeCommitUndoPoint() {
	if !s.hist.HasPending() {
		return
	}
	s.hist.SetAfter(s.sels.All())
	s.hist.Commit()
}
