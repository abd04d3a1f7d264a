package mode

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/dshills/brz/internal/input/key"
	"github.com/dshills/brz/internal/input/keymap"
)

// FindMatch is one buffer offered by the picker.
type FindMatch struct {
	ID      uuid.UUID
	Name    string
	Indexes []int // matched byte offsets in Name, for highlighting
}

// Find picks a buffer by fuzzy-matching its name.
type Find struct {
	query   string
	cursor  int
	matches []FindMatch
}

// NewFind creates a Find mode value with an empty query.
func NewFind() *Find {
	return &Find{}
}

func (*Find) mode() {}

// Name returns the mode identifier.
func (*Find) Name() string { return ModeFind }

// DisplayName returns the human-readable mode name.
func (*Find) DisplayName() string { return "FIND" }

// CursorStyle returns the cursor style for find mode.
func (*Find) CursorStyle() CursorStyle { return CursorBar }

// Actions returns the actions keys can be mapped to in find mode.
func (*Find) Actions() Actions { return findActions }

// DefaultKeymap returns the built-in find mode mappings.
func (*Find) DefaultKeymap() *keymap.Keymap {
	return keymap.NewKeymap("default-find").ForMode(ModeFind).WithSource("default").
		Add("<C-n>", "select_next").
		Add("<C-p>", "select_prev").
		Add("<Tab>", "select_next").
		Add("<C-c>", "cancel")
}

// Query returns the text typed so far.
func (m *Find) Query() string { return m.query }

// Matches returns the buffers matching the query, best first.
func (m *Find) Matches() []FindMatch { return m.matches }

// Cursor returns the index of the highlighted match.
func (m *Find) Cursor() int { return m.cursor }

// refresh recomputes the matches for the current query.
func (m *Find) refresh(s *State) {
	all := s.buffers.All()
	m.matches = m.matches[:0]

	if m.query == "" {
		for _, b := range all {
			m.matches = append(m.matches, FindMatch{ID: b.ID(), Name: b.Name()})
		}
	} else {
		for _, fm := range fuzzy.Find(m.query, s.buffers.Names()) {
			b := all[fm.Index]
			m.matches = append(m.matches, FindMatch{ID: b.ID(), Name: b.Name(), Indexes: fm.MatchedIndexes})
		}
	}
	m.cursor = min(m.cursor, max(len(m.matches)-1, 0))
}

func (m *Find) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.matches)) % len(m.matches)
}

func (m *Find) handle(s *State, k key.Key) {
	switch {
	case k == key.Esc:
		s.SetMode(NewNormal())
	case k == key.Enter:
		s.SetMode(NewNormal())
		if len(m.matches) > 0 {
			if err := s.buffers.SetCurrent(m.matches[m.cursor].ID); err != nil {
				s.SetMessage("%v", err)
			}
		}
	case k == key.Up:
		m.move(-1)
	case k == key.Down:
		m.move(1)
	case k == key.Backspace:
		if m.query == "" {
			return
		}
		_, size := utf8.DecodeLastRuneInString(m.query)
		m.query = m.query[:len(m.query)-size]
		m.refresh(s)
	case k.IsChar():
		m.query += string(k.Rune)
		m.cursor = 0
		m.refresh(s)
	default:
		s.resolve(m, k).Execute(s)
	}
}

var findActions = Actions{
	"select_next": ActionFunc(func(s *State) { moveFind(s, 1) }),
	"select_prev": ActionFunc(func(s *State) { moveFind(s, -1) }),
	"cancel":      ActionFunc(func(s *State) { s.SetMode(NewNormal()) }),
}

func moveFind(s *State, delta int) {
	if m, ok := s.Mode().(*Find); ok {
		m.move(delta)
	}
}
