package buffer

import "github.com/rivo/uniseg"

// graphemeCount returns the number of grapheme clusters in s.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// graphemePrefixLen returns the byte length of the first n grapheme
// clusters of s, or len(s) if s has fewer.
func graphemePrefixLen(s string, n int) ByteOffset {
	var pos ByteOffset
	state := -1
	for i := 0; i < n && len(s) > 0; i++ {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		pos += ByteOffset(len(cluster))
	}
	return pos
}

// NextGrapheme returns the offset just past the grapheme cluster that
// starts at offset. At the end of the buffer it returns Len().
func (b *Buffer) NextGrapheme(offset ByteOffset) ByteOffset {
	offset = b.ClampOffset(offset)
	if offset >= b.Len() {
		return b.Len()
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(b.text[offset:], -1)
	return offset + ByteOffset(len(cluster))
}

// PrevGrapheme returns the start of the grapheme cluster that ends at
// offset. At the start of the buffer it returns 0.
func (b *Buffer) PrevGrapheme(offset ByteOffset) ByteOffset {
	offset = b.ClampOffset(offset)
	if offset == 0 {
		return 0
	}
	if b.text[offset-1] == '\n' {
		return offset - 1
	}

	// Segment from the line start, since clusters cannot be found by
	// scanning backwards.
	pos := b.LineStartOffset(b.LineOf(offset - 1))
	prev := pos
	rest := b.text[pos:offset]
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		prev = pos
		pos += ByteOffset(len(cluster))
	}
	return prev
}

// GraphemeAt returns the text of the grapheme cluster starting at offset,
// or "" at the end of the buffer.
func (b *Buffer) GraphemeAt(offset ByteOffset) string {
	offset = b.ClampOffset(offset)
	return b.text[offset:b.NextGrapheme(offset)]
}
