package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TcellBackend implements Backend on a tcell.Screen
type TcellBackend struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcellBackend wraps an uninitialized screen; Init is left to the session
func NewTcellBackend(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen}
}

// NewScreenBackend creates a backend on the controlling terminal
func NewScreenBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewTcellBackend(screen), nil
}

// Init enters raw mode and the alternate screen
func (b *TcellBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.finalized {
		return ErrNotReady
	}
	if b.initialized {
		return nil
	}
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.initialized = true
	return nil
}

// Fini restores terminal state
func (b *TcellBackend) Fini() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || b.finalized {
		return
	}
	b.screen.Fini()
	b.finalized = true
}

func (b *TcellBackend) ready() bool {
	return b.initialized && !b.finalized
}

// Size returns current terminal dimensions
func (b *TcellBackend) Size() (int, int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready() {
		return 0, 0, ErrNotReady
	}
	w, h := b.screen.Size()
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("invalid terminal size %dx%d", w, h)
	}
	return w, h, nil
}

// Clear blanks the screen and forces the physical terminal to match
func (b *TcellBackend) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready() {
		return ErrNotReady
	}
	b.screen.Clear()
	b.screen.Sync()
	return nil
}

// SetCursorVisible shows/hides cursor
func (b *TcellBackend) SetCursorVisible(visible bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready() {
		return ErrNotReady
	}
	if visible {
		b.screen.ShowCursor(0, 0)
	} else {
		b.screen.HideCursor()
	}
	b.screen.Show()
	return nil
}

// Resize redraws everything at the new dimensions
// tcell resizes its own cell buffer on SIGWINCH; Sync makes the physical terminal match it.
// A size that changed again since the query is picked up by the next Size/Resize round
func (b *TcellBackend) Resize(width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready() {
		return ErrNotReady
	}
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid resize %dx%d", width, height)
	}
	b.screen.Sync()
	return nil
}

// Flush writes cell buffer to terminal
// Holds lock for entire operation so a frame is committed whole or not at all
func (b *TcellBackend) Flush(cells []Cell, width, height int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready() {
		return ErrNotReady
	}
	if len(cells) < width*height {
		return fmt.Errorf("cell buffer holds %d cells, need %d", len(cells), width*height)
	}

	// Drop the frame if the terminal changed size since it was laid out
	w, h := b.screen.Size()
	if w != width || h != height {
		return ErrStaleFrame
	}

	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			b.screen.SetContent(x, y, c.Rune, nil, c.Style())
		}
	}
	b.screen.Show()
	return nil
}

// PollEvent blocks until next input event
func (b *TcellBackend) PollEvent() Event {
	ev := b.screen.PollEvent()
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		return keyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventError:
		return Event{Type: EventError, Err: errors.New(ev.Error())}
	default:
		return Event{Type: EventNone}
	}
}

func keyEvent(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	default:
		out.Key = KeyOther
	}
	return out
}
