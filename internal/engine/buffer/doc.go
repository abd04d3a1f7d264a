// Package buffer provides the text storage used by the editing engine.
//
// A Buffer holds the text of one document as a string with an index of
// line starts. Positions are expressed either as byte offsets or as
// Points (line, grapheme column). All conversions clamp out-of-range
// input instead of failing, so motion code never has to handle errors.
//
// Grapheme and word boundaries follow Unicode segmentation rules
// (UAX #29) as implemented by github.com/rivo/uniseg.
//
// A Buffer is not safe for concurrent use. It is owned by a single
// editing session which serializes all access.
package buffer
