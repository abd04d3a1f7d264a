package engine

import "strings"

// Span is text taken from a buffer, one fragment per selection.
type Span []string

// Text returns all fragments joined together.
func (sp Span) Text() string {
	return strings.Join(sp, "")
}

// IsEmpty returns true if the span holds no text at all.
func (sp Span) IsEmpty() bool {
	for _, part := range sp {
		if part != "" {
			return false
		}
	}
	return true
}

// For returns the text destined for selection i of n. When the span has
// one fragment per selection each selection gets its own fragment;
// otherwise every selection gets the whole text.
func (sp Span) For(i, n int) string {
	if len(sp) == n {
		return sp[i]
	}
	return sp.Text()
}

// concat appends other to sp fragment by fragment when both have the same
// shape, and as a single joined fragment otherwise.
func (sp Span) concat(other Span) Span {
	if len(sp) == 0 {
		return other
	}
	if len(sp) == len(other) {
		out := make(Span, len(sp))
		for i := range sp {
			out[i] = sp[i] + other[i]
		}
		return out
	}
	return Span{sp.Text() + other.Text()}
}
