package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Buffers is the ordered set of open buffers. At most one is current;
// with no buffers open there is no current buffer.
type Buffers struct {
	list    []*BufferState
	current int
	opts    []Option
}

// NewBuffers creates an empty set. opts are applied to every buffer
// opened through Open.
func NewBuffers(opts ...Option) *Buffers {
	return &Buffers{current: -1, opts: opts}
}

// Open creates a buffer, appends it, and makes it current.
func (bs *Buffers) Open(name, text string, opts ...Option) *BufferState {
	all := append(append([]Option{}, bs.opts...), opts...)
	s := NewBufferState(name, text, all...)
	bs.list = append(bs.list, s)
	bs.current = len(bs.list) - 1
	return s
}

// Current returns the current buffer, or nil if none is open.
func (bs *Buffers) Current() *BufferState {
	if bs.current < 0 || bs.current >= len(bs.list) {
		return nil
	}
	return bs.list[bs.current]
}

// Len returns the number of open buffers.
func (bs *Buffers) Len() int {
	return len(bs.list)
}

// All returns the open buffers in order.
func (bs *Buffers) All() []*BufferState {
	out := make([]*BufferState, len(bs.list))
	copy(out, bs.list)
	return out
}

// Names returns the display names of the open buffers in order.
func (bs *Buffers) Names() []string {
	names := make([]string, len(bs.list))
	for i, s := range bs.list {
		names[i] = s.Name()
	}
	return names
}

func (bs *Buffers) index(id uuid.UUID) int {
	for i, s := range bs.list {
		if s.ID() == id {
			return i
		}
	}
	return -1
}

// Get returns the buffer with the given ID.
func (bs *Buffers) Get(id uuid.UUID) (*BufferState, error) {
	i := bs.index(id)
	if i < 0 {
		return nil, fmt.Errorf("get %s: %w", id, ErrBufferNotFound)
	}
	return bs.list[i], nil
}

// SetCurrent makes the buffer with the given ID current.
func (bs *Buffers) SetCurrent(id uuid.UUID) error {
	i := bs.index(id)
	if i < 0 {
		return fmt.Errorf("switch to %s: %w", id, ErrBufferNotFound)
	}
	bs.current = i
	return nil
}

// Next makes the following buffer current, wrapping around.
func (bs *Buffers) Next() *BufferState {
	if len(bs.list) == 0 {
		return nil
	}
	bs.current = (bs.current + 1) % len(bs.list)
	return bs.list[bs.current]
}

// Prev makes the preceding buffer current, wrapping around.
func (bs *Buffers) Prev() *BufferState {
	if len(bs.list) == 0 {
		return nil
	}
	bs.current = (bs.current - 1 + len(bs.list)) % len(bs.list)
	return bs.list[bs.current]
}

// Close removes the buffer with the given ID. If it was current, the
// buffer before it becomes current.
func (bs *Buffers) Close(id uuid.UUID) error {
	i := bs.index(id)
	if i < 0 {
		return fmt.Errorf("close %s: %w", id, ErrBufferNotFound)
	}
	bs.list = append(bs.list[:i], bs.list[i+1:]...)

	switch {
	case len(bs.list) == 0:
		bs.current = -1
	case i < bs.current:
		bs.current--
	case i == bs.current && bs.current > 0:
		bs.current--
	}
	return nil
}

// OpenFile reads path into a new current buffer named after it.
// A missing file opens an empty buffer so it can be created later.
func (bs *Buffers) OpenFile(path string, opts ...Option) (*BufferState, error) {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	opts = append(opts, WithPath(path))
	return bs.Open(filepath.Base(path), string(data), opts...), nil
}
