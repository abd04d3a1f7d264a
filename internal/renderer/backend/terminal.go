package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/brz/internal/input/key"
)

// Terminal implements Backend using tcell for terminal output.
type Terminal struct {
	screen tcell.Screen
	styles map[Style]tcell.Style
	mu     sync.Mutex
}

// DefaultStyles maps each role to a tcell style.
func DefaultStyles() map[Style]tcell.Style {
	base := tcell.StyleDefault
	return map[Style]tcell.Style{
		StyleDefault:    base,
		StyleSelection:  base.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite),
		StyleCursor:     base.Reverse(true),
		StyleStatus:     base.Background(tcell.ColorGray).Foreground(tcell.ColorBlack),
		StyleStatusMode: base.Background(tcell.ColorTeal).Foreground(tcell.ColorBlack).Bold(true),
		StyleMatch:      base.Foreground(tcell.ColorYellow).Bold(true),
		StyleMessage:    base.Foreground(tcell.ColorRed),
	}
}

// NewTerminal creates a new terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen creates a terminal backend drawing to screen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen, styles: DefaultStyles()}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Init()
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, cell.Rune, cell.Combining, t.styles[cell.Style])
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case CursorBlock:
		tcellStyle = tcell.CursorStyleSteadyBlock
	case CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	case CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case CursorHidden:
		t.screen.HideCursor()
		return
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		// The screen was finalized.
		return Event{Type: EventInterrupt}
	}
	return convertEvent(ev)
}

// PostEvent queues event. Only interrupts can be posted to a terminal.
func (t *Terminal) PostEvent(event Event) {
	if event.Type == EventInterrupt {
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; event queue may be full
	}
}

func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.screen.Beep() // best-effort; terminal may not support beep
}

// convertEvent converts tcell events to our Event type.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		k, ok := ConvertKey(e)
		if !ok {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Key: k}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}

	default:
		return Event{Type: EventNone}
	}
}

// namedKeys maps tcell keys to named keys. It is consulted before the
// Ctrl range because Tab, Enter and Backspace share codes with Ctrl-I,
// Ctrl-M and Ctrl-H.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyEscape:     key.Esc,
	tcell.KeyEnter:      key.Enter,
	tcell.KeyTab:        key.Tab,
	tcell.KeyBackspace:  key.Backspace,
	tcell.KeyBackspace2: key.Backspace,
	tcell.KeyDelete:     key.Delete,
	tcell.KeyInsert:     key.Named(key.NameInsert),
	tcell.KeyHome:       key.Home,
	tcell.KeyEnd:        key.End,
	tcell.KeyPgUp:       key.PageUp,
	tcell.KeyPgDn:       key.PageDown,
	tcell.KeyUp:         key.Up,
	tcell.KeyDown:       key.Down,
	tcell.KeyLeft:       key.Left,
	tcell.KeyRight:      key.Right,
}

// ConvertKey converts a tcell key event to a key. It reports false for
// keys brz has no name for, such as function keys.
func ConvertKey(ev *tcell.EventKey) (key.Key, bool) {
	k := ev.Key()
	mods := ev.Modifiers()

	if k == tcell.KeyRune {
		r := ev.Rune()
		switch {
		case mods&tcell.ModCtrl != 0:
			return key.Ctrl(r), true
		case mods&tcell.ModAlt != 0:
			return key.Alt(r), true
		}
		return key.Char(r), true
	}

	if named, ok := namedKeys[k]; ok {
		return named, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.Ctrl('a' + rune(k-tcell.KeyCtrlA)), true
	}
	return key.Key{}, false
}
