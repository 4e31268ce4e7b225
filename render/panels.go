package render

import (
	"fmt"

	"github.com/lixenwraith/lurkdash/game"
	"github.com/lixenwraith/lurkdash/stats"
	"github.com/lixenwraith/lurkdash/terminal"
	"github.com/lixenwraith/lurkdash/terminal/tui"
)

// Frame is everything a leaf panel may read while drawing
// It holds copies only; the shared state lock is released before any panel draws
type Frame struct {
	Theme Theme
	View  game.PlayerView
	Stats stats.Derived
}

func drawTopBar(r tui.Region, f *Frame) {
	tui.Block{Borders: tui.BorderAll, BorderStyle: f.Theme.Frame(), Style: f.Theme.Base()}.Draw(r)
}

func drawInfoBar(r tui.Region, f *Frame) {
	tui.Block{Borders: tui.BorderBottom, BorderStyle: f.Theme.Frame(), Style: f.Theme.Base()}.Draw(r)
}

func drawInputBar(r tui.Region, f *Frame) {
	tui.Block{Borders: tui.BorderAll, BorderStyle: f.Theme.Frame(), Style: f.Theme.Base()}.Draw(r)
}

// drawEntity is a placeholder box until entity details are shown
func drawEntity(r tui.Region, f *Frame) {
	tui.Block{Borders: tui.BorderAll, BorderStyle: f.Theme.Frame(), Style: f.Theme.Base()}.Draw(r)
}

// StatLines are the player vitals listed under the player's name
func StatLines(p game.Entity) []string {
	return []string{
		fmt.Sprintf("Health: %d", p.Health),
		fmt.Sprintf("Gold: %d", p.Gold),
		fmt.Sprintf("Attack: %d", p.Attack),
		fmt.Sprintf("Defense: %d", p.Defense),
		fmt.Sprintf("Regeneration: %d", p.Regen),
	}
}

func drawStatList(r tui.Region, f *Frame) {
	inner := tui.Block{
		Title:      f.View.Player.Name,
		TitleStyle: f.Theme.Title(),
		Style:      f.Theme.Base(),
	}.Draw(r)
	inner.List(tui.Lines(f.Theme.Base(), StatLines(f.View.Player)...), tui.ListOpts{RowStyle: f.Theme.Base()})
}

func drawGauge(r tui.Region, f *Frame, label string, value uint16, pct uint8, color tui.Style) {
	r.Gauge(tui.GaugeOpts{
		Percent: int(pct),
		Label:   fmt.Sprintf("%s: %d/%d", label, value, f.Stats.Total),
		Style:   color,
	})
}

func drawAttackGauge(r tui.Region, f *Frame) {
	drawGauge(r, f, "Attack", f.View.Player.Attack, f.Stats.AttackPct, f.Theme.Gauge(f.Theme.Attack))
}

func drawDefenseGauge(r tui.Region, f *Frame) {
	drawGauge(r, f, "Defense", f.View.Player.Defense, f.Stats.DefensePct, f.Theme.Gauge(f.Theme.Defense))
}

func drawRegenGauge(r tui.Region, f *Frame) {
	drawGauge(r, f, "Regeneration", f.View.Player.Regen, f.Stats.RegenPct, f.Theme.Gauge(f.Theme.Regen))
}

func drawTotalPoints(r tui.Region, f *Frame) {
	r.Paragraph(fmt.Sprintf("Total Points: %d", f.Stats.Total), f.Theme.Base())
}

func drawDescription(r tui.Region, f *Frame) {
	inner := tui.Block{Borders: tui.BorderTop, BorderStyle: f.Theme.Frame(), Style: f.Theme.Base()}.Draw(r)
	inner.Paragraph(f.View.Player.Description, f.Theme.Base().WithAttr(terminal.AttrItalic))
}

// FeedLines formats messages oldest first as "sender: content"
func FeedLines(msgs []game.Message) []string {
	lines := make([]string, len(msgs))
	for i, m := range msgs {
		lines[i] = fmt.Sprintf("%s: %s", m.Sender, m.Content)
	}
	return lines
}

func drawMessages(r tui.Region, f *Frame) {
	inner := tui.Block{
		Borders:     tui.BorderLeft | tui.BorderRight,
		Title:       "Message Feed",
		TitleStyle:  f.Theme.Title(),
		BorderStyle: f.Theme.Frame(),
		Style:       f.Theme.Base(),
	}.Draw(r)
	// Newest messages that fit, still oldest first
	inner.List(tui.Lines(f.Theme.Base(), FeedLines(f.View.Messages)...), tui.ListOpts{Tail: true, RowStyle: f.Theme.Base()})
}
