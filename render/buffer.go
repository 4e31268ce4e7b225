package render

import (
	"github.com/lixenwraith/lurkdash/terminal"
	"github.com/lixenwraith/lurkdash/terminal/tui"
)

// blankCell is what every cell resets to between frames
var blankCell = terminal.Cell{Rune: ' ', Attrs: terminal.AttrNone}

// FrameBuffer is the offscreen cell grid a frame is composed into before it is committed
// Uses []terminal.Cell directly so the session can flush it without copying
type FrameBuffer struct {
	cells  []terminal.Cell // Reused across frames, grows only
	width  int
	height int
}

// NewFrameBuffer creates a buffer with the specified dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	b := &FrameBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions and clears it, reallocates only if capacity is insufficient
func (b *FrameBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *FrameBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = blankCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Root returns a region covering the whole buffer
func (b *FrameBuffer) Root() tui.Region {
	return tui.NewRegion(b.cells, b.width, 0, 0, b.width, b.height)
}

// Cells returns the backing slice, valid until the next Resize
func (b *FrameBuffer) Cells() []terminal.Cell {
	return b.cells
}

// Size returns buffer dimensions
func (b *FrameBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Cell returns the cell at x, y or a blank cell when out of bounds
func (b *FrameBuffer) Cell(x, y int) terminal.Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return blankCell
	}
	return b.cells[y*b.width+x]
}
