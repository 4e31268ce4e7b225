package terminal

import "github.com/gdamore/tcell/v2"

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Cell represents a single terminal cell
// Zero Fg/Bg (tcell.ColorDefault) leave the terminal's default colors
// Rune 0 marks the trailing half of a wide rune and is skipped on flush
type Cell struct {
	Rune  rune
	Fg    tcell.Color
	Bg    tcell.Color
	Attrs Attr
}

// Style converts the cell colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(c.Fg).
		Background(c.Bg).
		Bold(c.Attrs&AttrBold != 0).
		Dim(c.Attrs&AttrDim != 0).
		Italic(c.Attrs&AttrItalic != 0).
		Underline(c.Attrs&AttrUnderline != 0).
		Blink(c.Attrs&AttrBlink != 0).
		Reverse(c.Attrs&AttrReverse != 0)
}
