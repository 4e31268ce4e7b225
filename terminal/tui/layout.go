package tui

// Rect is an absolute rectangle in character cells
type Rect struct {
	X, Y int
	W, H int
}

// Direction is the axis a rectangle is partitioned along
type Direction uint8

const (
	Horizontal Direction = iota // children side by side, widths split
	Vertical                    // children stacked, heights split
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Partition splits r along dir into one rectangle per percentage weight
// Each child gets floor(extent*weight/100) cells; the last child takes whatever is left,
// so children always tile the parent exactly. Weights over 100 in total are clamped to
// the space remaining, negative weights count as zero, and a zero-sized parent yields
// zero-sized children.
func Partition(r Rect, dir Direction, weights []int) []Rect {
	if len(weights) == 0 {
		return nil
	}

	w, h := max(r.W, 0), max(r.H, 0)
	extent := w
	if dir == Vertical {
		extent = h
	}

	rects := make([]Rect, len(weights))
	offset := 0

	for i, weight := range weights {
		remaining := extent - offset

		var size int
		if i == len(weights)-1 {
			size = remaining // Last one gets remainder to avoid rounding gaps
		} else {
			weight = max(weight, 0)
			size = int(int64(extent) * int64(weight) / 100)
			if size > remaining {
				size = remaining
			}
		}

		if dir == Vertical {
			rects[i] = Rect{X: r.X, Y: r.Y + offset, W: w, H: size}
		} else {
			rects[i] = Rect{X: r.X + offset, Y: r.Y, W: size, H: h}
		}
		offset += size
	}

	return rects
}
