package history

import (
	"errors"
	"time"

	"github.com/dshills/brz/internal/engine/buffer"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultMaxEntries is used when New is given a non-positive limit.
const DefaultMaxEntries = 1000

// Group is one undo step: operations in the order they were applied,
// plus the selections on either side of them.
type Group struct {
	Ops       []Operation
	Before    []Selection
	After     []Selection
	Timestamp time.Time
}

// History manages undo/redo state for a buffer.
type History struct {
	undoStack []*Group
	redoStack []*Group
	pending   *Group

	maxEntries int
}

// New creates a history keeping at most maxEntries undo steps.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Record adds an applied operation to the pending group.
// before is stored as the group's restore point when the group is opened.
func (h *History) Record(op Operation, before []Selection) {
	if op.IsNoop() {
		return
	}
	if h.pending == nil {
		h.pending = &Group{
			Before:    cloneSelections(before),
			Timestamp: time.Now(),
		}
	}
	h.pending.Ops = append(h.pending.Ops, op)
}

// SetAfter stores the selections to restore when the pending group is redone.
func (h *History) SetAfter(after []Selection) {
	if h.pending != nil {
		h.pending.After = cloneSelections(after)
	}
}

// HasPending returns true if edits were recorded since the last Commit.
func (h *History) HasPending() bool {
	return h.pending != nil
}

// Commit closes the pending group as one undo step and clears the redo
// stack. It returns false, and changes nothing, if no edit is pending.
func (h *History) Commit() bool {
	if h.pending == nil {
		return false
	}
	h.undoStack = append(h.undoStack, h.pending)
	h.pending = nil
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
	return true
}

// Undo reverts the most recent group on buf and returns the selections
// from before it. A pending group is committed first.
func (h *History) Undo(buf *buffer.Buffer) ([]Selection, error) {
	h.Commit()
	if len(h.undoStack) == 0 {
		return nil, ErrNothingToUndo
	}

	g := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	for i := len(g.Ops) - 1; i >= 0; i-- {
		g.Ops[i].Invert().Apply(buf)
	}

	h.redoStack = append(h.redoStack, g)
	return cloneSelections(g.Before), nil
}

// Redo reapplies the most recently undone group on buf and returns the
// selections from after it.
func (h *History) Redo(buf *buffer.Buffer) ([]Selection, error) {
	if h.pending != nil {
		// New edits invalidate the redo stack.
		h.Commit()
	}
	if len(h.redoStack) == 0 {
		return nil, ErrNothingToRedo
	}

	g := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	for _, op := range g.Ops {
		op.Apply(buf)
	}

	h.undoStack = append(h.undoStack, g)
	return cloneSelections(g.After), nil
}

// CanUndo returns true if there is something to undo.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0 || h.pending != nil
}

// CanRedo returns true if there is something to redo.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0 && h.pending == nil
}

// UndoCount returns the number of committed undo steps.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo steps.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear discards all history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.pending = nil
}

func cloneSelections(sels []Selection) []Selection {
	if sels == nil {
		return nil
	}
	out := make([]Selection, len(sels))
	copy(out, sels)
	return out
}
