package tui

// ListItem represents a single row in a list
type ListItem struct {
	Indent    int // Left padding in cells
	Text      string
	TextStyle Style
}

// ListOpts configures list rendering
type ListOpts struct {
	// Tail shows the last items that fit instead of the first, keeping their order
	Tail bool
	// RowStyle fills each rendered row before its text
	RowStyle Style
}

// List renders one item per row within region, returns number of rows rendered
// Text wider than the region is cut with an ellipsis
func (r Region) List(items []ListItem, opts ListOpts) int {
	if r.Empty() || len(items) == 0 {
		return 0
	}

	start := 0
	if opts.Tail && len(items) > r.H {
		start = len(items) - r.H
	}

	rendered := 0
	for y := 0; y < r.H; y++ {
		idx := start + y
		if idx >= len(items) {
			break
		}
		item := items[idx]

		// Clear row
		r.Sub(0, y, r.W, 1).FillStyled(opts.RowStyle)

		x := max(item.Indent, 0)
		text := item.Text
		if avail := r.W - x; DisplayWidth(text) > avail {
			text = Truncate(text, avail)
		}
		r.Text(x, y, text, item.TextStyle)

		rendered++
	}

	return rendered
}

// Lines converts plain strings to list items sharing one style
func Lines(style Style, lines ...string) []ListItem {
	items := make([]ListItem, len(lines))
	for i, l := range lines {
		items[i] = ListItem{Text: l, TextStyle: style}
	}
	return items
}
