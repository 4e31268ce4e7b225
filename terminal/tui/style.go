package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lurkdash/terminal"
)

// Style bundles foreground, background, and attributes for text rendering
// Zero colors mean "keep what is there" (background) or the terminal default (foreground)
type Style struct {
	Fg   tcell.Color
	Bg   tcell.Color
	Attr terminal.Attr
}

// WithAttr returns a copy with attributes added
func (s Style) WithAttr(a terminal.Attr) Style {
	s.Attr |= a
	return s
}
