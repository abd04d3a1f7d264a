package buffer

import (
	"sort"
	"strings"
)

// Buffer is an editable text document with a line index.
type Buffer struct {
	text       string
	lineStarts []ByteOffset // byte offset of the first byte of every line
}

// New creates a buffer holding text.
// CRLF and lone CR line endings are converted to LF.
func New(text string) *Buffer {
	b := &Buffer{text: NormalizeLineEndings(text)}
	b.reindex()
	return b
}

// NormalizeLineEndings converts CRLF and CR line endings to LF.
func NormalizeLineEndings(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// reindex rebuilds the line start table.
func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			b.lineStarts = append(b.lineStarts, ByteOffset(i+1))
		}
	}
}

// Text returns the entire content.
func (b *Buffer) Text() string {
	return b.text
}

// Len returns the length of the content in bytes.
func (b *Buffer) Len() ByteOffset {
	return ByteOffset(len(b.text))
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// LineCount returns the number of lines. An empty buffer has one line,
// and text ending in a newline has an empty last line.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// ClampOffset limits offset to [0, Len()].
func (b *Buffer) ClampOffset(offset ByteOffset) ByteOffset {
	if offset < 0 {
		return 0
	}
	if offset > b.Len() {
		return b.Len()
	}
	return offset
}

// LineOf returns the line containing offset.
func (b *Buffer) LineOf(offset ByteOffset) int {
	offset = b.ClampOffset(offset)
	return sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	}) - 1
}

// LineStartOffset returns the offset of the first byte of line.
// Lines past the end map to Len().
func (b *Buffer) LineStartOffset(line int) ByteOffset {
	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return b.Len()
	}
	return b.lineStarts[line]
}

// LineEndOffset returns the offset of the newline terminating line,
// or Len() for the last line.
func (b *Buffer) LineEndOffset(line int) ByteOffset {
	if line < 0 {
		line = 0
	}
	if line+1 >= len(b.lineStarts) {
		return b.Len()
	}
	return b.lineStarts[line+1] - 1
}

// LineText returns the text of line without its newline.
func (b *Buffer) LineText(line int) string {
	return b.text[b.LineStartOffset(line):b.LineEndOffset(line)]
}

// LineGraphemeCount returns the number of grapheme clusters on line,
// excluding the newline.
func (b *Buffer) LineGraphemeCount(line int) int {
	return graphemeCount(b.LineText(line))
}

// TextRange returns the text in [start, end), clamped to the buffer.
func (b *Buffer) TextRange(start, end ByteOffset) string {
	start = b.ClampOffset(start)
	end = b.ClampOffset(end)
	if end < start {
		return ""
	}
	return b.text[start:end]
}

// Replace replaces [start, end) with text and returns the replaced text.
// Offsets are clamped; text is stored as given.
func (b *Buffer) Replace(start, end ByteOffset, text string) string {
	start = b.ClampOffset(start)
	end = b.ClampOffset(end)
	if end < start {
		end = start
	}
	old := b.text[start:end]
	if old == "" && text == "" {
		return ""
	}
	b.text = b.text[:start] + text + b.text[end:]
	b.reindex()
	return old
}

// Insert inserts text at offset.
func (b *Buffer) Insert(offset ByteOffset, text string) {
	b.Replace(offset, offset, text)
}

// Delete removes [start, end) and returns the removed text.
func (b *Buffer) Delete(start, end ByteOffset) string {
	return b.Replace(start, end, "")
}
