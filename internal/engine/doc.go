// Package engine implements the buffer editing operations used by the
// modal interpreter.
//
// A BufferState couples one text buffer with its selections and its undo
// history. All motions and edits act on every selection at once:
//
//   - move operations collapse each selection onto its head and move the
//     head, so the selection spans the distance moved
//   - extend operations move the head and keep the anchor
//
// Repeated motions stop early once a step makes no progress, so callers
// may pass very large repeat counts.
//
// Buffers is the ordered set of open buffers with one current buffer.
package engine
