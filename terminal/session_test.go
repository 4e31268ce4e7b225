package terminal_test

import (
	"errors"
	"testing"

	"github.com/lixenwraith/lurkdash/core"
	"github.com/lixenwraith/lurkdash/terminal"
	mockterminal "github.com/lixenwraith/lurkdash/terminal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDevice = errors.New("device gone")

func expectStartup(b *mockterminal.MockBackend, w, h int) {
	gomock.InOrder(
		b.EXPECT().Init().Return(nil),
		b.EXPECT().Size().Return(w, h, nil),
		b.EXPECT().Clear().Return(nil),
		b.EXPECT().SetCursorVisible(false).Return(nil),
	)
}

func newSession(t *testing.T, w, h int) (*terminal.Session, *mockterminal.MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	b := mockterminal.NewMockBackend(ctrl)
	expectStartup(b, w, h)

	s, err := terminal.NewSession(b, nil)
	require.NoError(t, err)
	return s, b
}

func TestNewSession_RecordsInitialSize(t *testing.T) {
	s, _ := newSession(t, 80, 24)

	w, h := s.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
	assert.NotEmpty(t, s.ID())
}

func TestNewSession_InitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := mockterminal.NewMockBackend(ctrl)
	b.EXPECT().Init().Return(errDevice)

	_, err := terminal.NewSession(b, nil)
	require.Error(t, err)
	assert.True(t, core.IsKind(err, core.KindBackendInit))
	assert.ErrorIs(t, err, errDevice)
}

func TestNewSession_FailureAfterInitReleasesDevice(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(b *mockterminal.MockBackend)
		wantKd core.ErrorKind
	}{
		{
			name: "size query",
			setup: func(b *mockterminal.MockBackend) {
				b.EXPECT().Size().Return(0, 0, errDevice)
			},
			wantKd: core.KindSizeQuery,
		},
		{
			name: "clear",
			setup: func(b *mockterminal.MockBackend) {
				b.EXPECT().Size().Return(80, 24, nil)
				b.EXPECT().Clear().Return(errDevice)
			},
			wantKd: core.KindClear,
		},
		{
			name: "hide cursor",
			setup: func(b *mockterminal.MockBackend) {
				b.EXPECT().Size().Return(80, 24, nil)
				b.EXPECT().Clear().Return(nil)
				b.EXPECT().SetCursorVisible(false).Return(errDevice)
			},
			wantKd: core.KindCursor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			b := mockterminal.NewMockBackend(ctrl)
			b.EXPECT().Init().Return(nil)
			tt.setup(b)
			b.EXPECT().SetCursorVisible(true).Return(nil)
			b.EXPECT().Fini()

			_, err := terminal.NewSession(b, nil)
			require.Error(t, err)
			assert.Equal(t, tt.wantKd, core.KindOf(err))
		})
	}
}

func TestSession_UpdateResizesOnce(t *testing.T) {
	s, b := newSession(t, 80, 24)

	b.EXPECT().Size().Return(100, 30, nil).Times(2)
	b.EXPECT().Resize(100, 30).Return(nil).Times(1)

	require.NoError(t, s.Update())
	w, h := s.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)

	// Unchanged size must not resize again
	require.NoError(t, s.Update())
}

func TestSession_UpdateErrors(t *testing.T) {
	t.Run("size query", func(t *testing.T) {
		s, b := newSession(t, 80, 24)
		b.EXPECT().Size().Return(0, 0, errDevice)

		err := s.Update()
		assert.ErrorIs(t, err, core.ErrSizeQuery)
	})

	t.Run("resize keeps stale size", func(t *testing.T) {
		s, b := newSession(t, 80, 24)
		b.EXPECT().Size().Return(120, 40, nil)
		b.EXPECT().Resize(120, 40).Return(errDevice)

		err := s.Update()
		assert.ErrorIs(t, err, core.ErrResize)
		w, h := s.Size()
		assert.Equal(t, 80, w)
		assert.Equal(t, 24, h)
	})
}

func TestSession_Commit(t *testing.T) {
	cells := make([]terminal.Cell, 4)

	t.Run("flushed", func(t *testing.T) {
		s, b := newSession(t, 2, 2)
		b.EXPECT().Flush(cells, 2, 2).Return(nil)
		shown, err := s.Commit(cells, 2, 2)
		assert.NoError(t, err)
		assert.True(t, shown)
	})

	t.Run("stale frame dropped", func(t *testing.T) {
		s, b := newSession(t, 2, 2)
		b.EXPECT().Flush(cells, 2, 2).Return(terminal.ErrStaleFrame)
		shown, err := s.Commit(cells, 2, 2)
		assert.NoError(t, err)
		assert.False(t, shown)
	})

	t.Run("device failure", func(t *testing.T) {
		s, b := newSession(t, 2, 2)
		b.EXPECT().Flush(cells, 2, 2).Return(errDevice)
		shown, err := s.Commit(cells, 2, 2)
		assert.False(t, shown)
		assert.ErrorIs(t, err, core.ErrDraw)
		assert.ErrorIs(t, err, errDevice)
	})
}

func TestSession_CloseRestoresCursorOnce(t *testing.T) {
	s, b := newSession(t, 80, 24)

	gomock.InOrder(
		b.EXPECT().SetCursorVisible(true).Return(nil).Times(1),
		b.EXPECT().Fini().Times(1),
	)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestSession_CloseFinalizesEvenIfCursorFails(t *testing.T) {
	s, b := newSession(t, 80, 24)

	b.EXPECT().SetCursorVisible(true).Return(errDevice)
	b.EXPECT().Fini()

	err := s.Close()
	assert.ErrorIs(t, err, core.ErrCursor)
}

func TestSession_CloseAfterFailedFrame(t *testing.T) {
	s, b := newSession(t, 80, 24)

	b.EXPECT().Size().Return(0, 0, errDevice)
	b.EXPECT().SetCursorVisible(true).Return(nil)
	b.EXPECT().Fini()

	run := func() (err error) {
		defer s.Close()
		return s.Update()
	}

	assert.ErrorIs(t, run(), core.ErrSizeQuery)
}
