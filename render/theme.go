package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lurkdash/config"
	"github.com/lixenwraith/lurkdash/terminal"
	"github.com/lixenwraith/lurkdash/terminal/tui"
)

// Theme defines semantic colors for dashboard panels
type Theme struct {
	Border     tcell.Color
	Background tcell.Color
	Text       tcell.Color

	Attack  tcell.Color
	Defense tcell.Color
	Regen   tcell.Color
}

// DefaultTheme provides the classic green-on-black dashboard
var DefaultTheme = Theme{
	Border:     tcell.ColorGreen,
	Background: tcell.ColorBlack,
	Text:       tcell.ColorWhite,
	Attack:     tcell.ColorRed,
	Defense:    tcell.ColorDarkCyan,
	Regen:      tcell.ColorLightGreen,
}

// ThemeFromConfig resolves color names, unknown or empty names keep the default color
func ThemeFromConfig(c config.ThemeConfig) Theme {
	t := DefaultTheme
	pick := func(name string, dst *tcell.Color) {
		if col := tcell.GetColor(name); col != tcell.ColorDefault {
			*dst = col
		}
	}
	pick(c.Border, &t.Border)
	pick(c.Background, &t.Background)
	pick(c.Text, &t.Text)
	pick(c.Attack, &t.Attack)
	pick(c.Defense, &t.Defense)
	pick(c.Regen, &t.Regen)
	return t
}

// Base is plain text on the dashboard background
func (t Theme) Base() tui.Style {
	return tui.Style{Fg: t.Text, Bg: t.Background}
}

// Frame is the style of borders and frame lines
func (t Theme) Frame() tui.Style {
	return tui.Style{Fg: t.Border, Bg: t.Background}
}

// Title is underlined text used for panel headings
func (t Theme) Title() tui.Style {
	return t.Base().WithAttr(terminal.AttrUnderline)
}

// Gauge returns the bar style for a stat color
func (t Theme) Gauge(c tcell.Color) tui.Style {
	return tui.Style{Fg: c, Bg: t.Background}
}
