package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/lixenwraith/lurkdash/core"
	"github.com/lixenwraith/lurkdash/terminal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRenderer struct {
	calls  int
	failAt int // 1-based call that fails, 0 never
	err    error
}

func (r *countingRenderer) Render() error {
	r.calls++
	if r.failAt != 0 && r.calls == r.failAt {
		return r.err
	}
	return nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func runLoop(t *testing.T, r renderer, events []terminal.Event, log logrus.FieldLogger) error {
	t.Helper()
	ch := make(chan terminal.Event, len(events))
	for _, ev := range events {
		ch <- ev
	}
	done := make(chan error, 1)
	go func() { done <- loop(context.Background(), r, ch, time.Hour, log) }()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not return")
		return nil
	}
}

func TestLoop_QuitKeyStops(t *testing.T) {
	r := &countingRenderer{}
	events := []terminal.Event{
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'x'},
		{Type: terminal.EventResize, Width: 100, Height: 30},
		{Type: terminal.EventKey, Key: terminal.KeyEnter},
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'},
	}

	require.NoError(t, runLoop(t, r, events, quietLogger()))

	// Initial frame plus one per event before the quit key
	assert.Equal(t, 4, r.calls)
}

func TestLoop_InputErrorIsLoggedNotFatal(t *testing.T) {
	r := &countingRenderer{}
	logger, hook := test.NewNullLogger()
	events := []terminal.Event{
		{Type: terminal.EventError, Err: errors.New("tty hiccup")},
		{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'},
	}

	require.NoError(t, runLoop(t, r, events, logger))

	assert.Equal(t, 2, r.calls)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "input error", hook.LastEntry().Message)
}

func TestLoop_RenderErrorIsFatal(t *testing.T) {
	drawErr := core.NewError(core.KindDraw, "flush frame", errors.New("broken pipe"))

	t.Run("first frame", func(t *testing.T) {
		r := &countingRenderer{failAt: 1, err: drawErr}
		err := runLoop(t, r, nil, quietLogger())
		assert.ErrorIs(t, err, core.ErrDraw)
		assert.Equal(t, 1, r.calls)
	})

	t.Run("after event", func(t *testing.T) {
		r := &countingRenderer{failAt: 2, err: drawErr}
		events := []terminal.Event{
			{Type: terminal.EventResize, Width: 10, Height: 10},
			{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'q'},
		}
		err := runLoop(t, r, events, quietLogger())
		assert.ErrorIs(t, err, core.ErrDraw)
		assert.Equal(t, 2, r.calls)
	})
}

func TestLoop_TickRenders(t *testing.T) {
	r := &countingRenderer{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop(ctx, r, nil, 5*time.Millisecond, quietLogger()) }()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop ignored cancellation")
	}
	assert.Greater(t, r.calls, 2)
}
