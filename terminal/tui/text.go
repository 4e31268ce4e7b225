package tui

import (
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Truncate truncates string with … suffix if its display width exceeds maxW
func Truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxW, ellipsis)
}

// DisplayWidth returns the number of cells s occupies
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Text renders text at position in style, clips at the region edge, returns cells advanced
// Wide runes occupy two cells; one that would straddle the edge is not drawn
func (r Region) Text(x, y int, s string, style Style) int {
	if y < 0 || y >= r.H {
		return 0
	}
	col := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > r.W {
			break
		}
		if col >= 0 {
			r.Cell(col, y, ch, style.Fg, style.Bg, style.Attr)
			if w == 2 {
				r.Cell(col+1, y, 0, style.Fg, style.Bg, style.Attr)
			}
		}
		col += w
	}
	return col - x
}
