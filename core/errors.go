package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a rendering failure by the device or state operation that failed
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	KindBackendInit
	KindSizeQuery
	KindClear
	KindCursor
	KindDraw
	KindResize
	KindLockPoisoned
)

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindBackendInit:  "backend init",
	KindSizeQuery:    "size query",
	KindClear:        "clear",
	KindCursor:       "cursor",
	KindDraw:         "draw",
	KindResize:       "resize",
	KindLockPoisoned: "lock poisoned",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Sentinels for errors.Is matching by kind
var (
	ErrBackendInit  = &RenderError{Kind: KindBackendInit}
	ErrSizeQuery    = &RenderError{Kind: KindSizeQuery}
	ErrClear        = &RenderError{Kind: KindClear}
	ErrCursor       = &RenderError{Kind: KindCursor}
	ErrDraw         = &RenderError{Kind: KindDraw}
	ErrResize       = &RenderError{Kind: KindResize}
	ErrLockPoisoned = &RenderError{Kind: KindLockPoisoned}
)

// RenderError is returned by every session and composer operation that touches the device or the shared state
type RenderError struct {
	Kind ErrorKind
	Op   string // Short description of the failed step
	Err  error  // Underlying cause, may be nil
}

// NewError wraps cause with kind and op
func NewError(kind ErrorKind, op string, cause error) *RenderError {
	return &RenderError{Kind: kind, Op: op, Err: cause}
}

func (e *RenderError) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is matches any RenderError of the same kind, so sentinels work with errors.Is
func (e *RenderError) Is(target error) bool {
	t, ok := target.(*RenderError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Fatal reports whether the error leaves state of unknown consistency
// Device errors are fatal only by driver policy; a poisoned lock is fatal always
func (e *RenderError) Fatal() bool {
	return e.Kind == KindLockPoisoned
}

// IsKind reports whether err carries a RenderError of the given kind anywhere in its chain
func IsKind(err error, kind ErrorKind) bool {
	var re *RenderError
	if !errors.As(err, &re) {
		return false
	}
	return re.Kind == kind
}

// KindOf returns the kind of the first RenderError in err's chain, KindUnknown otherwise
func KindOf(err error) ErrorKind {
	var re *RenderError
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}
