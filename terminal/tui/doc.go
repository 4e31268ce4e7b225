// Package tui provides immediate-mode TUI primitives for the terminal package.
//
// Core abstraction is Region, representing a rectangular area within a cell buffer.
// All drawing operations are relative to region bounds with automatic clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns render loop
//   - Region is a small value type over a shared []terminal.Cell buffer
//   - Composable: regions nest via Sub(), Partition/Split divide them by percentage
//   - Nothing here touches the device; the caller flushes the buffer once per frame
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//	root.FillStyled(tui.Style{Bg: tcell.ColorBlack})
//
//	cols := root.Split(tui.Horizontal, 30, 70)
//	inner := tui.Block{Borders: tui.BorderAll, Title: "Stats"}.Draw(cols[0])
//	inner.List(tui.Lines(style, "Health: 100", "Gold: 50"), tui.ListOpts{})
//	cols[1].Gauge(tui.GaugeOpts{Percent: 44, Label: "Attack: 100/225"})
//
//	shown, err := session.Commit(cells, w, h)
package tui
