package terminal

import (
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/lixenwraith/lurkdash/core"
	"github.com/sirupsen/logrus"
)

// Session owns a Backend for the lifetime of the dashboard
// It tracks the last known dimensions and guarantees cursor restoration on Close
type Session struct {
	backend Backend
	log     logrus.FieldLogger
	id      string

	width  int
	height int

	closeOnce sync.Once
	closeErr  error
}

// NewSession acquires the device, clears it, hides the cursor and records its size
// On any failure after acquisition the device is released again
func NewSession(b Backend, logger logrus.FieldLogger) (*Session, error) {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	id := uuid.NewString()
	s := &Session{
		backend: b,
		id:      id,
		log:     logger.WithField("session", id),
	}

	if err := b.Init(); err != nil {
		return nil, core.NewError(core.KindBackendInit, "acquire terminal", err)
	}

	w, h, err := b.Size()
	if err != nil {
		s.abort()
		return nil, core.NewError(core.KindSizeQuery, "query terminal size", err)
	}

	if err := b.Clear(); err != nil {
		s.abort()
		return nil, core.NewError(core.KindClear, "clear terminal", err)
	}

	if err := b.SetCursorVisible(false); err != nil {
		s.abort()
		return nil, core.NewError(core.KindCursor, "hide cursor", err)
	}

	s.width, s.height = w, h
	s.log.WithFields(logrus.Fields{"width": w, "height": h}).Info("terminal session started")
	return s, nil
}

// abort releases a partially constructed session
func (s *Session) abort() {
	_ = s.backend.SetCursorVisible(true)
	s.backend.Fini()
}

// ID returns the session identifier used in log fields
func (s *Session) ID() string {
	return s.id
}

// Size returns the dimensions recorded by the last Update
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// Update re-queries the device size and resizes the backend when it changed
// Must run before layout on every frame
func (s *Session) Update() error {
	w, h, err := s.backend.Size()
	if err != nil {
		return core.NewError(core.KindSizeQuery, "query terminal size", err)
	}
	if w == s.width && h == s.height {
		return nil
	}

	if err := s.backend.Resize(w, h); err != nil {
		return core.NewError(core.KindResize, "resize terminal", err)
	}

	s.log.WithFields(logrus.Fields{
		"from": [2]int{s.width, s.height},
		"to":   [2]int{w, h},
	}).Debug("terminal resized")

	s.width, s.height = w, h
	return nil
}

// Commit flushes a composed frame to the device and reports whether it reached the screen
// A frame invalidated by a concurrent resize is dropped without error; the next Update reconciles
func (s *Session) Commit(cells []Cell, width, height int) (bool, error) {
	err := s.backend.Flush(cells, width, height)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrStaleFrame):
		s.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("dropping stale frame")
		return false, nil
	default:
		return false, core.NewError(core.KindDraw, "flush frame", err)
	}
}

// PollEvent blocks until the next input event
func (s *Session) PollEvent() Event {
	return s.backend.PollEvent()
}

// Close shows the cursor and releases the device
// Safe to call multiple times and intended for defer, so it runs on every exit path
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := s.backend.SetCursorVisible(true); err != nil {
			s.closeErr = core.NewError(core.KindCursor, "show cursor", err)
		}
		s.backend.Fini()
		s.log.Info("terminal session closed")
	})
	return s.closeErr
}
