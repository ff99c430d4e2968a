package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Minimum terminal size. The stock gauge layout needs 18 rows and about
// 44 columns inside the frame.
const (
	minWidth  = 48
	minHeight = 22
)

// Layout holds the computed geometry for a given terminal size.
type Layout struct {
	Status, Body, Footer Rect
	TooSmall             bool // true when terminal is below the minimum
}

// Calculate computes the layout for a terminal of the given dimensions.
//
//   - Status: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Body: everything in between, framed by a 1-cell border
func Calculate(width, height int) Layout {
	if width < minWidth || height < minHeight {
		return Layout{TooSmall: true}
	}
	return Layout{
		Status: Rect{X: 0, Y: 0, Width: width, Height: 1},
		Body:   Rect{X: 0, Y: 1, Width: width, Height: height - 2},
		Footer: Rect{X: 0, Y: height - 1, Width: width, Height: 1},
	}
}

// innerDims returns the content dimensions for a rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
