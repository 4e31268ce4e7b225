package game

// DemoSnapshot returns a fixed session used when no protocol client is attached
func DemoSnapshot() *Snapshot {
	return &Snapshot{
		Messages: NewMessageQueue(0,
			Message{Sender: "A", Content: "Hello, world"},
			Message{Sender: "B", Content: "World, hello"},
		),
		Player: Entity{
			Name:        "Bob",
			Attack:      100,
			Defense:     50,
			Regen:       75,
			Health:      100,
			Gold:        50,
			Description: "Description here",
		},
		Room: Room{
			Name:        "Bob's Room",
			Description: "A room that belongs to Bob.",
			Number:      8,
		},
		Adjacent: []Room{
			{Name: "Closet", Description: "You keep clothes here.", Number: 7},
			{Name: "Hallway", Description: "Very hallwayish.", Number: 5},
		},
		Enemies: []Entity{
			{
				Name: "Grimbo", Alive: true, Monster: true,
				Attack: 10, Defense: 5, Regen: 1, Health: 100, Gold: 38, Location: 8,
				Description: "Grimbo is hungry.",
			},
			{
				Name: "Ronald", Alive: true, Monster: true,
				Attack: 10, Defense: 10, Regen: 2, Health: 60, Gold: 34, Location: 8,
				Description: "Ronald has been eating too much fast food.",
			},
			{
				Name: "Door Watching Troll", Alive: true, Monster: true,
				Attack: 15, Defense: 10, Regen: 20, Health: 200, Gold: 121, Location: 8,
				Description: "Healthy as a horse, or is a horse as healthy as troll?",
			},
		},
		Game: Config{
			StatLimit:     100,
			InitialPoints: 100,
			Description:   "Mock game description.",
		},
	}
}
