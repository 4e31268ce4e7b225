package terminal

import "errors"

//go:generate mockgen -destination=mock/mock_backend.go -package=mockterminal -source=backend.go

// ErrStaleFrame is returned by Flush when the frame no longer matches the device size
var ErrStaleFrame = errors.New("frame size does not match terminal")

// ErrNotReady is returned by operations on a backend that is not initialized or already finalized
var ErrNotReady = errors.New("terminal backend not ready")

// Backend abstracts the character-cell device the session draws to
type Backend interface {
	// Init acquires the device
	Init() error

	// Fini releases the device and restores its mode. Safe to call multiple times
	Fini()

	// Size returns current device dimensions
	Size() (width, height int, err error)

	// Clear blanks the physical screen
	Clear() error

	// SetCursorVisible shows/hides cursor
	SetCursorVisible(visible bool) error

	// Resize reconciles internal buffers with new device dimensions
	Resize(width, height int) error

	// Flush writes a row-major cell buffer (cells[y*width+x]) and commits it to the device
	Flush(cells []Cell, width, height int) error

	// PollEvent blocks until next input event
	PollEvent() Event
}

// EventType identifies the kind of input event
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventError
	EventClosed // Backend finalized, no more events
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)
	KeyEscape
	KeyEnter
	KeyCtrlC
	KeyOther
)

// Event is an input event delivered by the backend
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int // EventResize
	Height int // EventResize
	Err    error
}

// IsRune reports whether the event is a key press of the printable rune r
func (e Event) IsRune(r rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Rune == r
}
