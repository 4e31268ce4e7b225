package tui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lurkdash/terminal"
	"github.com/mattn/go-runewidth"
)

// GaugeOpts configures a gauge
type GaugeOpts struct {
	Percent int    // Clamped to 0-100
	Label   string // Defaults to "NN%"
	// Style.Fg colors the filled part, Style.Bg the empty part
	Style Style
}

// Gauge fills the region left to right in proportion to Percent and centers the label on the middle row
// Label cells over the filled part are drawn inverted so they stay readable
func (r Region) Gauge(opts GaugeOpts) {
	if r.Empty() {
		return
	}

	pct := min(max(opts.Percent, 0), 100)
	filled := r.W * pct / 100

	fill, empty := opts.Style.Fg, opts.Style.Bg
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			if x < filled {
				r.Cell(x, y, ' ', empty, fill, terminal.AttrNone)
			} else {
				r.Cell(x, y, ' ', fill, empty, terminal.AttrNone)
			}
		}
	}

	label := opts.Label
	if label == "" {
		label = strconv.Itoa(pct) + "%"
	}
	if DisplayWidth(label) > r.W {
		label = Truncate(label, r.W)
	}

	y := r.H / 2
	x := (r.W - DisplayWidth(label)) / 2
	for _, ch := range label {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > r.W {
			break
		}
		r.gaugeCell(x, y, ch, filled, fill, empty, opts.Style.Attr)
		if w == 2 {
			r.gaugeCell(x+1, y, 0, filled, fill, empty, opts.Style.Attr)
		}
		x += w
	}
}

// gaugeCell draws one label cell, inverted over the filled part
func (r Region) gaugeCell(x, y int, ch rune, filled int, fill, empty tcell.Color, attr terminal.Attr) {
	if x < filled {
		r.Cell(x, y, ch, labelOn(empty), fill, attr)
	} else {
		r.Cell(x, y, ch, fill, empty, attr)
	}
}

// labelOn picks a readable foreground for text drawn over the filled color
func labelOn(bg tcell.Color) tcell.Color {
	if bg == tcell.ColorDefault {
		return tcell.ColorBlack
	}
	return bg
}
