package history

import (
	"github.com/dshills/brz/internal/engine/buffer"
	"github.com/dshills/brz/internal/engine/cursor"
)

// ByteOffset is an alias for buffer.ByteOffset for convenience.
type ByteOffset = buffer.ByteOffset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection is an alias for cursor.Selection for convenience.
type Selection = cursor.Selection

// Operation represents a single undoable edit.
// Range is expressed in the document as it was before the edit.
type Operation struct {
	Range   Range  // Range that was modified
	OldText string // Text that was replaced (for undo)
	NewText string // Text that was inserted (for redo)
}

// NewOperation creates a new operation.
func NewOperation(r Range, oldText, newText string) Operation {
	return Operation{Range: r, OldText: oldText, NewText: newText}
}

// IsNoop returns true if the operation changes nothing.
func (op Operation) IsNoop() bool {
	return op.OldText == op.NewText
}

// Invert returns the operation that undoes op.
func (op Operation) Invert() Operation {
	return Operation{
		Range:   Range{Start: op.Range.Start, End: op.Range.Start + ByteOffset(len(op.NewText))},
		OldText: op.NewText,
		NewText: op.OldText,
	}
}

// Apply performs the operation on buf.
func (op Operation) Apply(buf *buffer.Buffer) {
	buf.Replace(op.Range.Start, op.Range.End, op.NewText)
}
