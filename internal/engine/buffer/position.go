package buffer

import "fmt"

// ByteOffset represents a byte position in the buffer.
// This is the fundamental position type, directly indexing into the text.
type ByteOffset = int64

// Point represents a line and column position.
// Both Line and Column are 0-indexed.
// Column counts grapheme clusters from the start of the line, so a
// Point survives conversion through text with multi-byte characters.
type Point struct {
	Line   int // 0-indexed line number
	Column int // 0-indexed grapheme column
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	switch {
	case p.Line < other.Line:
		return -1
	case p.Line > other.Line:
		return 1
	case p.Column < other.Column:
		return -1
	case p.Column > other.Column:
		return 1
	}
	return 0
}

// SetLine returns p moved to the given line, keeping the column where the
// target line is long enough. Both coordinates are clamped to b.
func (p Point) SetLine(line int, b *Buffer) Point {
	return b.ClampPoint(Point{Line: line, Column: p.Column})
}

// ClampPoint limits p to an existing line and to that line's length.
func (b *Buffer) ClampPoint(p Point) Point {
	last := b.LineCount() - 1
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line > last {
		p.Line = last
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if n := b.LineGraphemeCount(p.Line); p.Column > n {
		p.Column = n
	}
	return p
}

// OffsetToPoint converts a byte offset to a Point.
// Offsets outside the buffer are clamped.
func (b *Buffer) OffsetToPoint(offset ByteOffset) Point {
	offset = b.ClampOffset(offset)
	line := b.LineOf(offset)
	start := b.lineStarts[line]
	return Point{Line: line, Column: graphemeCount(b.text[start:offset])}
}

// PointToOffset converts a Point to a byte offset.
// The point is clamped to the buffer first.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	p = b.ClampPoint(p)
	start := b.LineStartOffset(p.Line)
	end := b.LineEndOffset(p.Line)
	return start + graphemePrefixLen(b.text[start:end], p.Column)
}
