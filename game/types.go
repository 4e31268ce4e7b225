// Package game holds the shared session state read by the dashboard.
//
// The state is owned by whichever collaborator speaks the game protocol.
// The dashboard only reads it, through the same State handle the writer uses.
package game

// Entity is a player character or a monster
type Entity struct {
	Name string

	Alive    bool
	InBattle bool
	Monster  bool
	Started  bool
	Ready    bool

	Attack  uint16
	Defense uint16
	Regen   uint16

	// Health goes negative on defeat
	Health int16

	Gold     uint16
	Location uint16

	Description string
}

// Message is a chat line; empty Receiver means broadcast
type Message struct {
	Sender   string
	Receiver string
	Content  string
}

// Room is a location in the game world
type Room struct {
	Name        string
	Description string
	Number      uint16
}

// Config holds the ruleset constants announced by the server
type Config struct {
	StatLimit     uint16
	InitialPoints uint16
	Description   string
}

// Snapshot aggregates everything known about the running session
type Snapshot struct {
	Messages *MessageQueue
	Player   Entity
	Enemies  []Entity
	Room     Room
	Adjacent []Room
	Game     Config
}

// NewSnapshot returns an empty snapshot with an unbounded message queue
func NewSnapshot() *Snapshot {
	return &Snapshot{Messages: NewMessageQueue(0)}
}
