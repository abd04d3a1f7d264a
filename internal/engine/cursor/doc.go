// Package cursor provides selections and selection sets.
//
// A Selection is an anchor and a head. The head is where motions act;
// the anchor stays put while a selection is extended. A selection whose
// anchor equals its head is a point selection.
//
// A SelectionSet holds one or more selections, kept sorted by start
// offset. Overlapping selections are merged; selections that merely
// touch are kept apart.
package cursor
