package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

var chatter = []string{
	"Anyone seen the troll?",
	"Regen is underrated.",
	"Selling a slightly used door.",
	"Who keeps eating all the fast food?",
	"The closet is empty, again.",
}

// Simulator mutates a State the way a protocol client would, for demo sessions
type Simulator struct {
	state *State
	rng   *rand.Rand
	tick  uint64
}

// NewSimulator creates a simulator; a nil rng gets a time-seeded source
func NewSimulator(state *State, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{state: state, rng: rng}
}

// Step applies one round of changes inside a single Update
func (s *Simulator) Step() error {
	s.tick++
	return s.state.Update(func(snap *Snapshot) {
		p := &snap.Player

		// Regeneration heals up to the stat limit, a random hit brings it down
		limit := int16(100)
		if snap.Game.StatLimit > 0 && snap.Game.StatLimit < 0x7fff {
			limit = int16(snap.Game.StatLimit)
		}
		if p.Health < limit {
			healed := int32(p.Health) + int32(p.Regen/25)
			p.Health = int16(min(healed, int32(limit)))
		}
		if s.rng.Intn(3) == 0 && p.Health > -0x7000 {
			p.Health -= int16(s.rng.Intn(10))
		}
		if s.rng.Intn(4) == 0 && p.Gold < 0xffff {
			p.Gold++
		}

		sender := "Narrator"
		if len(snap.Enemies) > 0 {
			sender = snap.Enemies[s.rng.Intn(len(snap.Enemies))].Name
		}
		snap.Messages.Push(Message{
			Sender:  sender,
			Content: fmt.Sprintf("%s (#%d)", chatter[s.rng.Intn(len(chatter))], s.tick),
		})
	})
}

// Run steps every interval until ctx is done or the state is poisoned
func (s *Simulator) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Step(); err != nil {
				return err
			}
		}
	}
}
