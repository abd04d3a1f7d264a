package engine

import "github.com/dshills/brz/internal/engine/history"

// Default configuration values.
const (
	DefaultMaxUndoEntries = history.DefaultMaxEntries
	ScratchName           = "*scratch*"
)

// Option configures a BufferState during creation.
type Option func(*BufferState)

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(n int) Option {
	return func(s *BufferState) {
		if n > 0 {
			s.maxUndoEntries = n
		}
	}
}

// WithPath records the file a buffer was read from.
func WithPath(path string) Option {
	return func(s *BufferState) {
		s.path = path
	}
}
