package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrBufferNotFound indicates no open buffer has the requested ID.
	ErrBufferNotFound = errors.New("buffer not found")

	// ErrNoBuffer indicates an operation needs a current buffer and there is none.
	ErrNoBuffer = errors.New("no buffer open")
)
