package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lurkdash/terminal"
)

// Region represents a rectangular area within a cell buffer
// All coordinates are relative to the region's origin
type Region struct {
	Cells  []terminal.Cell
	TotalW int // Total width of the underlying cell buffer
	X, Y   int // Absolute position in cell buffer
	W, H   int // Region dimensions
}

// NewRegion creates a region referencing a cell slice with bounds
func NewRegion(cells []terminal.Cell, totalW, x, y, w, h int) Region {
	return Region{
		Cells:  cells,
		TotalW: totalW,
		X:      x,
		Y:      y,
		W:      max(w, 0),
		H:      max(h, 0),
	}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	// Clip to parent bounds
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x > r.W {
		x = r.W
	}
	if y > r.H {
		y = r.H
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Cells:  r.Cells,
		TotalW: r.TotalW,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// At returns the sub-region covering an absolute rectangle, clipped to r
func (r Region) At(rect Rect) Region {
	return r.Sub(rect.X-r.X, rect.Y-r.Y, rect.W, rect.H)
}

// Rect returns absolute position and dimensions
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// Split partitions the region along dir by percentage weights
func (r Region) Split(dir Direction, weights ...int) []Region {
	rects := Partition(r.Rect(), dir, weights)
	if rects == nil {
		return nil
	}
	out := make([]Region, len(rects))
	for i, rc := range rects {
		out[i] = r.At(rc)
	}
	return out
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Empty reports whether the region has no cells
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Cell sets a single cell with bounds checking
// A default (zero) background keeps the background already in the buffer
func (r Region) Cell(x, y int, ch rune, fg, bg tcell.Color, attr terminal.Attr) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	absX := r.X + x
	absY := r.Y + y

	// Bounds check against the physical buffer dimensions
	if uint(absX) >= uint(r.TotalW) {
		return
	}

	idx := absY*r.TotalW + absX
	// Single bounds check for the backing slice
	if uint(idx) >= uint(len(r.Cells)) {
		return
	}
	if bg == tcell.ColorDefault {
		bg = r.Cells[idx].Bg
	}
	r.Cells[idx] = terminal.Cell{Rune: ch, Fg: fg, Bg: bg, Attrs: attr}
}

// FillStyled fills the region with spaces in style
func (r Region) FillStyled(s Style) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', s.Fg, s.Bg, s.Attr)
		}
	}
}
