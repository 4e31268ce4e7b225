package render

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/lurkdash/core"
	"github.com/lixenwraith/lurkdash/game"
	"github.com/lixenwraith/lurkdash/terminal"
	mockterminal "github.com/lixenwraith/lurkdash/terminal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeSurface records committed frames
type fakeSurface struct {
	w, h      int
	updates   int
	commits   int
	last      []terminal.Cell
	updateErr error
	commitErr error
	stale     bool
}

func (s *fakeSurface) Update() error {
	s.updates++
	return s.updateErr
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) Commit(cells []terminal.Cell, w, h int) (bool, error) {
	if s.commitErr != nil {
		return false, s.commitErr
	}
	if s.stale {
		return false, nil
	}
	s.commits++
	s.last = append(s.last[:0], cells...)
	return true, nil
}

func TestComposer_RenderCommitsFullFrame(t *testing.T) {
	surf := &fakeSurface{w: 80, h: 24}
	var infos []FrameInfo
	c := NewComposer(surf, game.NewState(game.DemoSnapshot()), Options{
		Observer: func(fi FrameInfo) { infos = append(infos, fi) },
	})

	require.NoError(t, c.Render())

	assert.Equal(t, 1, surf.updates)
	assert.Equal(t, 1, surf.commits)
	require.Len(t, surf.last, 80*24)
	// Stat list title sits at the top-left of the bottom triad
	assert.Equal(t, 'B', surf.last[15*80].Rune)
	require.Len(t, infos, 1)
	assert.Equal(t, FrameInfo{Seq: 1, Width: 80, Height: 24, MessagesTotal: 2, Stats: infos[0].Stats}, infos[0])
	assert.EqualValues(t, 225, infos[0].Stats.Total)
}

func TestComposer_PoisonedStateCommitsNothing(t *testing.T) {
	surf := &fakeSurface{w: 80, h: 24}
	state := game.NewState(game.DemoSnapshot())
	observed := false
	c := NewComposer(surf, state, Options{Observer: func(FrameInfo) { observed = true }})

	assert.Panics(t, func() {
		_ = state.Update(func(*game.Snapshot) { panic("writer crashed") })
	})

	err := c.Render()
	require.Error(t, err)
	assert.True(t, core.IsKind(err, core.KindLockPoisoned))
	assert.ErrorIs(t, err, game.ErrPoisoned)

	var re *core.RenderError
	require.ErrorAs(t, err, &re)
	assert.True(t, re.Fatal())

	assert.Zero(t, surf.commits)
	assert.False(t, observed)
}

func TestComposer_PropagatesSurfaceErrors(t *testing.T) {
	t.Run("update", func(t *testing.T) {
		surf := &fakeSurface{w: 10, h: 10, updateErr: core.NewError(core.KindSizeQuery, "", errors.New("gone"))}
		c := NewComposer(surf, game.NewState(nil), Options{})

		assert.ErrorIs(t, c.Render(), core.ErrSizeQuery)
		assert.Zero(t, surf.commits)
	})

	t.Run("commit", func(t *testing.T) {
		surf := &fakeSurface{w: 10, h: 10, commitErr: core.NewError(core.KindDraw, "", errors.New("gone"))}
		observed := false
		c := NewComposer(surf, game.NewState(nil), Options{Observer: func(FrameInfo) { observed = true }})

		assert.ErrorIs(t, c.Render(), core.ErrDraw)
		assert.False(t, observed)
	})
}

func TestComposer_StaleFrameNotObserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mockterminal.NewMockBackend(ctrl)
	gomock.InOrder(
		b.EXPECT().Init().Return(nil),
		b.EXPECT().Size().Return(80, 24, nil),
		b.EXPECT().Clear().Return(nil),
		b.EXPECT().SetCursorVisible(false).Return(nil),
	)

	session, err := terminal.NewSession(b, nil)
	require.NoError(t, err)

	var infos []FrameInfo
	c := NewComposer(session, game.NewState(game.DemoSnapshot()), Options{
		Observer: func(fi FrameInfo) { infos = append(infos, fi) },
	})

	gomock.InOrder(
		b.EXPECT().Size().Return(80, 24, nil),
		b.EXPECT().Flush(gomock.Any(), 80, 24).Return(terminal.ErrStaleFrame),
		b.EXPECT().Size().Return(80, 24, nil),
		b.EXPECT().Flush(gomock.Any(), 80, 24).Return(nil),
	)

	require.NoError(t, c.Render())
	assert.Empty(t, infos)

	require.NoError(t, c.Render())
	require.Len(t, infos, 1)
	assert.EqualValues(t, 1, infos[0].Seq)
}

func TestComposer_SetThemeAppliesNextFrame(t *testing.T) {
	surf := &fakeSurface{w: 40, h: 20}
	c := NewComposer(surf, game.NewState(game.DemoSnapshot()), Options{})

	require.NoError(t, c.Render())
	assert.Equal(t, DefaultTheme.Border, surf.last[0].Fg)

	theme := DefaultTheme
	theme.Border = tcell.ColorBlue
	c.SetTheme(theme)

	require.NoError(t, c.Render())
	assert.Equal(t, tcell.ColorBlue, surf.last[0].Fg)
	assert.Equal(t, theme, c.Theme())
}

func TestComposer_FeedWindowLimitsClone(t *testing.T) {
	snap := game.DemoSnapshot()
	for i := 0; i < 10; i++ {
		snap.Messages.Push(game.Message{Sender: "x", Content: "y"})
	}
	surf := &fakeSurface{w: 80, h: 24}
	var info FrameInfo
	c := NewComposer(surf, game.NewState(snap), Options{FeedWindow: 3, Observer: func(fi FrameInfo) { info = fi }})

	require.NoError(t, c.Render())
	assert.EqualValues(t, 12, info.MessagesTotal)
}

func TestComposer_ResizeThroughSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mockterminal.NewMockBackend(ctrl)
	gomock.InOrder(
		b.EXPECT().Init().Return(nil),
		b.EXPECT().Size().Return(80, 24, nil),
		b.EXPECT().Clear().Return(nil),
		b.EXPECT().SetCursorVisible(false).Return(nil),
	)

	session, err := terminal.NewSession(b, nil)
	require.NoError(t, err)

	c := NewComposer(session, game.NewState(game.DemoSnapshot()), Options{})
	w, h := c.Buffer().Size()
	require.Equal(t, 80, w)
	require.Equal(t, 24, h)

	gomock.InOrder(
		b.EXPECT().Size().Return(100, 30, nil),
		b.EXPECT().Resize(100, 30).Return(nil).Times(1),
		b.EXPECT().Flush(gomock.Any(), 100, 30).DoAndReturn(func(cells []terminal.Cell, w, h int) error {
			assert.Len(t, cells, 100*30)
			return nil
		}),
		b.EXPECT().Size().Return(100, 30, nil),
		b.EXPECT().Flush(gomock.Any(), 100, 30).Return(nil),
	)

	require.NoError(t, c.Render())

	w, h = c.Buffer().Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)

	// Layout follows the new size: bottom triad starts at row 19, messages at column 30
	assert.Equal(t, '│', c.Buffer().Cell(30, 19).Rune)
	assert.Equal(t, 'M', c.Buffer().Cell(31, 19).Rune)
	assert.Equal(t, '┌', c.Buffer().Cell(0, 28).Rune)

	require.NoError(t, c.Render())
}
