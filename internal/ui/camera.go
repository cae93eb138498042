package ui

// camera scrolls a tall list of lines through a fixed number of screen rows.
type camera struct {
	offset int // first visible line
	view   int // rows available
}

// newCamera returns a camera of view rows over total lines, positioned so
// that line center is as close to the middle as the edges allow.
func newCamera(center, view, total int) camera {
	c := camera{view: max(view, 0)}
	c.offset = max(0, min(center-c.view/2, total-c.view))
	return c
}

// toScreen converts a line index to a row within the view.
// visible is false when the line is scrolled out.
func (c camera) toScreen(line int) (row int, visible bool) {
	row = line - c.offset
	return row, row >= 0 && row < c.view
}
