package render

import (
	"errors"
	"io"
	"sync/atomic"

	"github.com/lixenwraith/lurkdash/core"
	"github.com/lixenwraith/lurkdash/game"
	"github.com/lixenwraith/lurkdash/stats"
	"github.com/lixenwraith/lurkdash/terminal"
	"github.com/lixenwraith/lurkdash/terminal/tui"
	"github.com/sirupsen/logrus"
)

// DefaultFeedWindow caps how many messages are copied out of the shared state per frame
const DefaultFeedWindow = 256

// Surface is the device side of a frame, satisfied by *terminal.Session
type Surface interface {
	Update() error
	Size() (width, height int)
	Commit(cells []terminal.Cell, width, height int) (bool, error)
}

// FrameInfo summarizes a frame that reached the screen, dropped stale frames are not observed
type FrameInfo struct {
	Seq           uint64
	Width, Height int
	MessagesTotal uint64
	Stats         stats.Derived
}

// Options configures a Composer, zero values pick defaults
type Options struct {
	FeedWindow int
	Theme      *Theme
	Observer   func(FrameInfo)
	Logger     logrus.FieldLogger
}

// Composer builds one complete frame per Render call from the shared game state
// Only the cell buffer allocation survives between frames; layout is recomputed every time
type Composer struct {
	surface    Surface
	state      *game.State
	tree       *Node
	buf        *FrameBuffer
	theme      atomic.Pointer[Theme]
	feedWindow int
	observer   func(FrameInfo)
	log        logrus.FieldLogger
	seq        uint64
}

// NewComposer creates a composer drawing the dashboard tree onto surface
func NewComposer(surface Surface, state *game.State, opts Options) *Composer {
	c := &Composer{
		surface:    surface,
		state:      state,
		tree:       DashboardTree(),
		buf:        NewFrameBuffer(surface.Size()),
		feedWindow: opts.FeedWindow,
		observer:   opts.Observer,
		log:        opts.Logger,
	}
	if c.feedWindow <= 0 {
		c.feedWindow = DefaultFeedWindow
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	theme := DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	c.theme.Store(&theme)
	return c
}

// SetTheme swaps the theme, picked up by the next frame
// Safe to call from any goroutine
func (c *Composer) SetTheme(t Theme) {
	c.theme.Store(&t)
}

// Theme returns the theme the next frame will use
func (c *Composer) Theme() Theme {
	return *c.theme.Load()
}

// Buffer exposes the last composed frame
func (c *Composer) Buffer() *FrameBuffer {
	return c.buf
}

// Render composes and commits one frame
// Errors are *core.RenderError and are not retried
func (c *Composer) Render() error {
	if err := c.surface.Update(); err != nil {
		return err
	}

	w, h := c.surface.Size()
	if bw, bh := c.buf.Size(); bw != w || bh != h {
		c.buf.Resize(w, h)
		c.log.WithFields(logrus.Fields{"width": w, "height": h}).Debug("frame buffer resized")
	} else {
		c.buf.Clear()
	}

	theme := c.Theme()
	root := c.buf.Root()
	tui.Block{Borders: tui.BorderAll, BorderStyle: theme.Frame(), Style: theme.Base()}.Draw(root)

	view, err := c.state.ClonePlayerView(c.feedWindow)
	if err != nil {
		if errors.Is(err, game.ErrPoisoned) {
			return core.NewError(core.KindLockPoisoned, "read game state", err)
		}
		return core.NewError(core.KindUnknown, "read game state", err)
	}

	f := &Frame{
		Theme: theme,
		View:  view,
		Stats: stats.Derive(view.Player),
	}

	walk(c.tree, root.Rect(), func(n *Node, rect tui.Rect) {
		if n.Draw != nil {
			n.Draw(root.At(rect), f)
		}
	})

	shown, err := c.surface.Commit(c.buf.Cells(), w, h)
	if err != nil {
		return err
	}
	if !shown {
		return nil
	}

	c.seq++
	if c.observer != nil {
		c.observer(FrameInfo{
			Seq:           c.seq,
			Width:         w,
			Height:        h,
			MessagesTotal: view.MessagesTotal,
			Stats:         f.Stats,
		})
	}
	return nil
}
