package tui

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// WrapText wraps text at word boundaries to fit width, hard-breaking words longer than width
func WrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	wrapped := wrap.String(wordwrap.String(s, width), width)
	return strings.Split(wrapped, "\n")
}

// Paragraph fills the region with style and renders wrapped text, returns number of lines rendered
// Lines past the region's height are clipped
func (r Region) Paragraph(text string, style Style) int {
	if r.Empty() {
		return 0
	}
	r.FillStyled(style)
	if text == "" {
		return 0
	}

	rendered := 0
	for i, line := range WrapText(text, r.W) {
		if i >= r.H {
			break
		}
		r.Text(0, i, strings.TrimRight(line, " "), style)
		rendered++
	}
	return rendered
}
