package game

import (
	"errors"
	"sync"
)

// ErrPoisoned is returned once a callback panicked while holding the state lock
var ErrPoisoned = errors.New("game state poisoned: a holder panicked while locked")

// State is the shared cell guarding a Snapshot
// Writers and readers both go through it; nobody keeps the *Snapshot past a callback
type State struct {
	mu       sync.Mutex
	snap     *Snapshot
	poisoned bool
}

// NewState wraps snap; a nil snap is replaced by an empty snapshot
func NewState(snap *Snapshot) *State {
	if snap == nil {
		snap = NewSnapshot()
	}
	if snap.Messages == nil {
		snap.Messages = NewMessageQueue(0)
	}
	return &State{snap: snap}
}

// Update runs fn with exclusive access to the snapshot
// A panic in fn poisons the state and is re-raised
func (s *State) Update(fn func(*Snapshot)) error {
	return s.with(fn)
}

// Read runs fn with exclusive access; fn must copy out what it needs and return quickly
func (s *State) Read(fn func(*Snapshot)) error {
	return s.with(fn)
}

// Poisoned reports whether a holder has panicked
func (s *State) Poisoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}

func (s *State) with(fn func(*Snapshot)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return ErrPoisoned
	}

	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			panic(r)
		}
	}()

	fn(s.snap)
	return nil
}

// PlayerView is the per-frame copy taken by the renderer
type PlayerView struct {
	Player        Entity
	Messages      []Message
	MessagesTotal uint64
}

// ClonePlayerView copies the player and the newest window messages under a single lock hold
func (s *State) ClonePlayerView(window int) (PlayerView, error) {
	var v PlayerView
	err := s.Read(func(snap *Snapshot) {
		v.Player = snap.Player
		v.Messages = snap.Messages.Tail(window)
		v.MessagesTotal = snap.Messages.Total()
	})
	return v, err
}
