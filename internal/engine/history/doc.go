// Package history provides undo/redo for a buffer.
//
// Edits are recorded as Operations into a pending group. A group becomes
// one undo step when Commit is called; Commit with nothing pending does
// nothing, so callers may place undo boundaries freely:
//
//	h := history.New(1000)
//	h.Record(op, selectionsBefore)
//	h.SetAfter(selectionsAfter)
//	h.Commit() // one undo step
//	h.Commit() // no-op
//
// Undo and Redo apply a whole group to the buffer and return the
// selections to restore.
package history
