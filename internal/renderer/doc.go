// Package renderer draws the editor state to a terminal backend.
//
// The renderer is responsible for:
//   - Drawing the visible lines of the current buffer
//   - Highlighting selections and marking each selection head
//   - Drawing the status line, the command line and the buffer picker
//   - Placing the terminal cursor in the shape the active mode asks for
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(state)
package renderer
