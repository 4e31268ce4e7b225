package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlock_AllBordersWithTitle(t *testing.T) {
	cells := newCells(10, 4)
	r := NewRegion(cells, 10, 0, 0, 10, 4)

	inner := Block{Borders: BorderAll, Title: "Stats"}.Draw(r)

	assert.Equal(t, Rect{X: 1, Y: 1, W: 8, H: 2}, inner.Rect())
	assert.Equal(t, "┌Stats───┐", row(cells, 10, 0))
	assert.Equal(t, "│        │", row(cells, 10, 1))
	assert.Equal(t, "└────────┘", row(cells, 10, 3))
}

func TestBlock_PartialBorders(t *testing.T) {
	tests := []struct {
		name   string
		block  Block
		inner  Rect
		top    string
		bottom string
	}{
		{
			name:   "bottom only",
			block:  Block{Borders: BorderBottom},
			inner:  Rect{X: 0, Y: 0, W: 6, H: 2},
			top:    "      ",
			bottom: "──────",
		},
		{
			name:   "top only",
			block:  Block{Borders: BorderTop},
			inner:  Rect{X: 0, Y: 1, W: 6, H: 2},
			top:    "──────",
			bottom: "      ",
		},
		{
			name:   "sides with title",
			block:  Block{Borders: BorderLeft | BorderRight, Title: "Feed"},
			inner:  Rect{X: 1, Y: 1, W: 4, H: 2},
			top:    "│Feed│",
			bottom: "│    │",
		},
		{
			name:   "all borders",
			block:  Block{Borders: BorderAll},
			inner:  Rect{X: 1, Y: 1, W: 4, H: 1},
			top:    "┌────┐",
			bottom: "└────┘",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := newCells(6, 3)
			r := NewRegion(cells, 6, 0, 0, 6, 3)

			inner := tt.block.Draw(r)

			assert.Equal(t, tt.inner, inner.Rect())
			assert.Equal(t, tt.top, row(cells, 6, 0))
			assert.Equal(t, tt.bottom, row(cells, 6, 2))
		})
	}
}

func TestBlock_TitleTruncated(t *testing.T) {
	cells := newCells(6, 3)
	r := NewRegion(cells, 6, 0, 0, 6, 3)

	Block{Borders: BorderAll, Title: "Message Feed"}.Draw(r)

	assert.Equal(t, "┌Mes…┐", row(cells, 6, 0))
}

func TestBlock_EmptyRegion(t *testing.T) {
	cells := newCells(4, 4)
	r := NewRegion(cells, 4, 0, 0, 4, 0)

	inner := Block{Borders: BorderAll, Title: "x"}.Draw(r)

	assert.True(t, inner.Empty())
	assert.Equal(t, "    ", row(cells, 4, 0))
}

func TestBorders_Has(t *testing.T) {
	assert.True(t, BorderAll.Has(BorderTop|BorderLeft))
	assert.False(t, (BorderTop | BorderBottom).Has(BorderTop|BorderLeft))
	assert.True(t, BorderNone.Has(BorderNone))
}
