// Package register holds the clipboard register shared by all buffers.
package register

import (
	"log/slog"

	"github.com/atotto/clipboard"

	"github.com/dshills/brz/internal/engine"
)

// ClipboardProvider abstracts system clipboard access.
type ClipboardProvider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// SystemClipboard is the operating system clipboard.
type SystemClipboard struct{}

// Get returns the system clipboard content.
func (SystemClipboard) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set replaces the system clipboard content.
func (SystemClipboard) Set(content string) error {
	return clipboard.WriteAll(content)
}

// SystemAvailable reports whether the system clipboard can be used.
func SystemAvailable() bool {
	return !clipboard.Unsupported
}

// Register holds the most recently yanked or deleted span.
// Every Set overwrites the previous content.
type Register struct {
	content engine.Span
	mirror  ClipboardProvider
	logger  *slog.Logger
}

// New creates an empty register.
func New(logger *slog.Logger) *Register {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Register{logger: logger}
}

// SetMirror makes every Set also write the joined text to p.
// A nil p disables mirroring.
func (r *Register) SetMirror(p ClipboardProvider) {
	r.mirror = p
}

// Set replaces the register content.
// A mirror write failure is logged and otherwise ignored.
func (r *Register) Set(span engine.Span) {
	r.content = append(engine.Span(nil), span...)
	if r.mirror == nil {
		return
	}
	if err := r.mirror.Set(span.Text()); err != nil {
		r.logger.Warn("clipboard mirror write failed", "error", err)
	}
}

// Get returns the register content.
func (r *Register) Get() engine.Span {
	return append(engine.Span(nil), r.content...)
}

// IsEmpty returns true if nothing has been stored, or only empty text.
func (r *Register) IsEmpty() bool {
	return r.content.IsEmpty()
}
