package mode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dshills/brz/internal/engine"
	"github.com/dshills/brz/internal/engine/buffer"
	"github.com/dshills/brz/internal/input/key"
	"github.com/dshills/brz/internal/input/keymap"
)

// Command errors.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

// Command edits and runs a ":" command line.
type Command struct {
	line string
}

// NewCommand creates a Command mode value with an empty line.
func NewCommand() *Command {
	return &Command{}
}

func (*Command) mode() {}

// Name returns the mode identifier.
func (*Command) Name() string { return ModeCommand }

// DisplayName returns the human-readable mode name.
func (*Command) DisplayName() string { return "COMMAND" }

// CursorStyle returns the cursor style for command mode.
func (*Command) CursorStyle() CursorStyle { return CursorBar }

// Actions returns the actions keys can be mapped to in command mode.
func (*Command) Actions() Actions { return commandActions }

// DefaultKeymap returns the built-in command mode mappings.
func (*Command) DefaultKeymap() *keymap.Keymap {
	return keymap.NewKeymap("default-command").ForMode(ModeCommand).WithSource("default").
		Add("<C-c>", "cancel").
		Add("<C-u>", "clear_line")
}

// Line returns the command line typed so far.
func (m *Command) Line() string {
	return m.line
}

func (m *Command) handle(s *State, k key.Key) {
	switch {
	case k == key.Esc:
		s.SetMode(NewNormal())
	case k == key.Enter:
		s.SetMode(NewNormal())
		if err := s.Execute(m.line); err != nil {
			s.logger.Debug("command failed", "line", m.line, "error", err)
			s.SetMessage("%v", err)
		}
	case k == key.Backspace:
		if m.line == "" {
			s.SetMode(NewNormal())
			return
		}
		_, size := utf8.DecodeLastRuneInString(m.line)
		m.line = m.line[:len(m.line)-size]
	case k.IsChar():
		m.line += string(k.Rune)
	default:
		s.resolve(m, k).Execute(s)
	}
}

var commandActions = Actions{
	"cancel":     ActionFunc(func(s *State) { s.SetMode(NewNormal()) }),
	"clear_line": ActionFunc(clearCommandLine),
}

func clearCommandLine(s *State) {
	if m, ok := s.Mode().(*Command); ok {
		m.line = ""
	}
}

// commandFunc runs one command with its arguments.
type commandFunc func(s *State, args []string) error

var commands = map[string]commandFunc{
	"q":       cmdQuit,
	"quit":    cmdQuit,
	"bn":      cmdNextBuffer,
	"bnext":   cmdNextBuffer,
	"bp":      cmdPrevBuffer,
	"bprev":   cmdPrevBuffer,
	"bd":      cmdCloseBuffer,
	"bdelete": cmdCloseBuffer,
	"e":       cmdEdit,
	"edit":    cmdEdit,
	"new":     cmdNew,
	"ls":      cmdList,
	"buffers": cmdList,
}

// Execute runs a command line. A bare number moves to that line (1-based).
func (s *State) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]

	if n, err := strconv.Atoi(name); err == nil {
		return s.gotoLine(n)
	}

	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownCommand)
	}
	return cmd(s, args)
}

func (s *State) gotoLine(n int) error {
	buf := s.CurrentBuffer()
	if buf == nil {
		return engine.ErrNoBuffer
	}
	buf.MoveCursorCoord(func(p engine.Point, b *buffer.Buffer) engine.Point {
		return p.SetLine(max(n-1, 0), b)
	})
	return nil
}

// closeCurrentBuffer closes the current buffer, if any.
func (s *State) closeCurrentBuffer() error {
	buf := s.CurrentBuffer()
	if buf == nil {
		return engine.ErrNoBuffer
	}
	return s.buffers.Close(buf.ID())
}

func cmdQuit(s *State, _ []string) error {
	s.RequestQuit()
	return nil
}

func cmdNextBuffer(s *State, _ []string) error {
	if s.buffers.Next() == nil {
		return engine.ErrNoBuffer
	}
	return nil
}

func cmdPrevBuffer(s *State, _ []string) error {
	if s.buffers.Prev() == nil {
		return engine.ErrNoBuffer
	}
	return nil
}

func cmdCloseBuffer(s *State, _ []string) error {
	return s.closeCurrentBuffer()
}

func cmdEdit(s *State, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("edit: %w", ErrMissingArgument)
	}
	_, err := s.buffers.OpenFile(args[0])
	return err
}

func cmdNew(s *State, _ []string) error {
	s.buffers.Open(engine.ScratchName, "")
	return nil
}

func cmdList(s *State, _ []string) error {
	names := s.buffers.Names()
	if len(names) == 0 {
		return engine.ErrNoBuffer
	}
	s.SetMessage("%s", strings.Join(names, " | "))
	return nil
}
