package mode

import (
	"fmt"
	"log/slog"

	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/input/key"
	"github.com/dshills/brz/internal/input/keymap"
	"github.com/dshills/brz/internal/input/register"
)

// State is the mode controller: the active mode plus everything the
// modes act on. It is not safe for concurrent use; keys must be
// dispatched one at a time.
type State struct {
	mode     Mode
	count    RepeatCount
	register *register.Register
	buffers  *engine.Buffers
	keymaps  *keymap.Registry
	logger   *slog.Logger

	message string
	bell    bool
	quit    bool
}

// Option configures a State during creation.
type Option func(*State)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRegister sets the clipboard register.
func WithRegister(r *register.Register) Option {
	return func(s *State) {
		if r != nil {
			s.register = r
		}
	}
}

// WithBuffers sets the open buffer set.
func WithBuffers(b *engine.Buffers) Option {
	return func(s *State) {
		if b != nil {
			s.buffers = b
		}
	}
}

// WithKeymaps sets the keymap registry.
func WithKeymaps(r *keymap.Registry) Option {
	return func(s *State) {
		if r != nil {
			s.keymaps = r
		}
	}
}

// NewState creates a controller in Normal mode with no repeat count.
// Unset collaborators default to an empty buffer set, an empty register
// and the built-in keymaps.
func NewState(opts ...Option) *State {
	s := &State{
		mode:   NewNormal(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.buffers == nil {
		s.buffers = engine.NewBuffers()
	}
	if s.register == nil {
		s.register = register.New(s.logger)
	}
	if s.keymaps == nil {
		// The built-in keymaps always parse.
		s.keymaps, _ = NewRegistry()
	}
	s.logger = s.logger.With("component", "mode")
	return s
}

// Mode returns the active mode.
func (s *State) Mode() Mode {
	return s.mode
}

// SetMode replaces the active mode.
func (s *State) SetMode(m Mode) {
	s.logger.Debug("mode change", "from", s.mode.Name(), "to", m.Name())
	s.mode = m
	if ins, ok := m.(*Insert); ok {
		ins.enter(s)
	}
	if f, ok := m.(*Find); ok {
		f.refresh(s)
	}
}

// Dispatch delivers k to the active mode and returns once it is handled.
func (s *State) Dispatch(k key.Key) {
	switch m := s.mode.(type) {
	case *Normal:
		m.handle(s, k)
	case *Insert:
		m.handle(s, k)
	case *Command:
		m.handle(s, k)
	case *Find:
		m.handle(s, k)
	case *Goto:
		m.handle(s, k)
	default:
		panic(fmt.Sprintf("mode: unknown mode %T", m))
	}
}

// Count returns the repeat count and whether one is pending.
func (s *State) Count() (int, bool) {
	return s.count.Get()
}

// Times returns the repeat count, or 1 if none is pending.
func (s *State) Times() int {
	return s.count.Times()
}

// Register returns the clipboard register.
func (s *State) Register() *register.Register {
	return s.register
}

// Buffers returns the open buffer set.
func (s *State) Buffers() *engine.Buffers {
	return s.buffers
}

// CurrentBuffer returns the current buffer, or nil if none is open.
func (s *State) CurrentBuffer() *engine.BufferState {
	return s.buffers.Current()
}

// Keymaps returns the keymap registry.
func (s *State) Keymaps() *keymap.Registry {
	return s.keymaps
}

// SetKeymaps replaces the keymap registry.
func (s *State) SetKeymaps(r *keymap.Registry) {
	if r != nil {
		s.keymaps = r
	}
}

// Logger returns the controller's logger.
func (s *State) Logger() *slog.Logger {
	return s.logger
}

// Message returns the status message set by the last command, if any.
func (s *State) Message() string {
	return s.message
}

// SetMessage sets the status message.
func (s *State) SetMessage(format string, args ...any) {
	s.message = fmt.Sprintf(format, args...)
}

// ClearMessage removes the status message.
func (s *State) ClearMessage() {
	s.message = ""
}

// Ring asks the front end to sound the bell once.
func (s *State) Ring() {
	s.bell = true
}

// TakeBell reports whether Ring was called since the last TakeBell and
// resets the request.
func (s *State) TakeBell() bool {
	rang := s.bell
	s.bell = false
	return rang
}

// RequestQuit asks the application to exit.
func (s *State) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether RequestQuit was called.
func (s *State) QuitRequested() bool {
	return s.quit
}

// resolve finds the action k is mapped to in m.
func (s *State) resolve(m Mode, k key.Key) Action {
	name := s.keymaps.ActionFor(m.Name(), k)
	if name == "" {
		s.logger.Debug("unbound key", "mode", m.Name(), "key", k.String())
		return ActionNotFound
	}
	a, ok := m.Actions()[name]
	if !ok {
		s.logger.Debug("unknown action", "mode", m.Name(), "key", k.String(), "action", name)
		return ActionNotFound
	}
	return a
}

// withBuffer adapts fn to an action that needs a current buffer.
func withBuffer(fn func(s *State, buf *engine.BufferState)) Action {
	return ActionFunc(func(s *State) {
		if buf := s.CurrentBuffer(); buf != nil {
			fn(s, buf)
		}
	})
}
