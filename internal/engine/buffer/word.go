package buffer

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WordFunc computes a word boundary relative to offset.
type WordFunc func(b *Buffer, offset ByteOffset) ByteOffset

// isBlank reports whether a word segment consists of whitespace.
func isBlank(segment string) bool {
	r, _ := utf8.DecodeRuneInString(segment)
	return unicode.IsSpace(r)
}

// ForwardWord returns the start of the next word after offset,
// skipping whitespace and line breaks. It returns Len() when no
// further word exists.
func ForwardWord(b *Buffer, offset ByteOffset) ByteOffset {
	offset = b.ClampOffset(offset)
	if offset >= b.Len() {
		return b.Len()
	}

	rest := b.text[offset:]
	pos := offset
	state := -1
	first := true
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if !first && !isBlank(word) {
			return pos
		}
		first = false
		pos += ByteOffset(len(word))
	}
	return b.Len()
}

// BackwardWord returns the start of the word before offset,
// skipping whitespace and line breaks. It returns 0 when no earlier
// word exists.
func BackwardWord(b *Buffer, offset ByteOffset) ByteOffset {
	offset = b.ClampOffset(offset)

	// Skip whitespace immediately before offset.
	end := offset
	for end > 0 {
		r, size := utf8.DecodeLastRuneInString(b.text[:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= ByteOffset(size)
	}
	if end == 0 {
		return 0
	}

	// Find the segment on this line that contains end-1.
	pos := b.LineStartOffset(b.LineOf(end - 1))
	start := pos
	rest := b.text[pos:end]
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		start = pos
		pos += ByteOffset(len(word))
	}
	return start
}
