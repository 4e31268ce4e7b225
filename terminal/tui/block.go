package tui

// Single-line box drawing characters
var boxChars = [6]rune{'┌', '─', '┐', '│', '└', '┘'}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Borders selects which edges of a block are drawn
type Borders uint8

const (
	BorderTop Borders = 1 << iota
	BorderRight
	BorderBottom
	BorderLeft

	BorderNone Borders = 0
	BorderAll          = BorderTop | BorderRight | BorderBottom | BorderLeft
)

// Has reports whether all edges in e are set
func (b Borders) Has(e Borders) bool {
	return b&e == e
}

// Block is a panel frame: optional background, any subset of borders and a title on the top row
type Block struct {
	Borders     Borders
	Title       string
	TitleStyle  Style
	BorderStyle Style
	Style       Style // Background and default text style of the whole block
}

// Inner returns the content region left inside borders and title
// A title without a top border still takes the top row
func (b Block) Inner(r Region) Region {
	if b.Borders == BorderAll {
		return r.Inset(1)
	}
	x, y, w, h := 0, 0, r.W, r.H
	if b.Borders.Has(BorderLeft) {
		x++
		w--
	}
	if b.Borders.Has(BorderRight) {
		w--
	}
	if b.Borders.Has(BorderTop) || b.Title != "" {
		y++
		h--
	}
	if b.Borders.Has(BorderBottom) {
		h--
	}
	return r.Sub(x, y, w, h)
}

// Draw fills the block, draws its borders and title, and returns the inner region
func (b Block) Draw(r Region) Region {
	if r.Empty() {
		return r.Sub(0, 0, 0, 0)
	}

	r.FillStyled(b.Style)
	b.drawBorders(r)

	if b.Title != "" {
		x := 0
		if b.Borders.Has(BorderLeft) {
			x = 1
		}
		maxW := r.W - x
		if b.Borders.Has(BorderRight) {
			maxW--
		}
		if maxW > 0 {
			title := b.Title
			if DisplayWidth(title) > maxW {
				title = Truncate(title, maxW)
			}
			r.Text(x, 0, title, b.TitleStyle)
		}
	}

	return b.Inner(r)
}

func (b Block) drawBorders(r Region) {
	if b.Borders == BorderNone {
		return
	}
	chars := boxChars
	fg, bg, attr := b.BorderStyle.Fg, b.BorderStyle.Bg, b.BorderStyle.Attr

	if b.Borders.Has(BorderTop) {
		for x := 0; x < r.W; x++ {
			r.Cell(x, 0, chars[boxH], fg, bg, attr)
		}
	}
	if b.Borders.Has(BorderBottom) {
		for x := 0; x < r.W; x++ {
			r.Cell(x, r.H-1, chars[boxH], fg, bg, attr)
		}
	}
	if b.Borders.Has(BorderLeft) {
		for y := 0; y < r.H; y++ {
			r.Cell(0, y, chars[boxV], fg, bg, attr)
		}
	}
	if b.Borders.Has(BorderRight) {
		for y := 0; y < r.H; y++ {
			r.Cell(r.W-1, y, chars[boxV], fg, bg, attr)
		}
	}

	// Corners only where both edges meet
	if b.Borders.Has(BorderTop | BorderLeft) {
		r.Cell(0, 0, chars[boxTL], fg, bg, attr)
	}
	if b.Borders.Has(BorderTop | BorderRight) {
		r.Cell(r.W-1, 0, chars[boxTR], fg, bg, attr)
	}
	if b.Borders.Has(BorderBottom | BorderLeft) {
		r.Cell(0, r.H-1, chars[boxBL], fg, bg, attr)
	}
	if b.Borders.Has(BorderBottom | BorderRight) {
		r.Cell(r.W-1, r.H-1, chars[boxBR], fg, bg, attr)
	}
}
