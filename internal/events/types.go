package events

import (
	"github.com/KirkDiggler/dungeon-sim/internal/entities"
)

// EventType represents the type of dungeon event
type EventType string

const (
	// EventTypeKill fires once per kill during a battle pass
	EventTypeKill EventType = "npc.kill"
)

// Listener priorities. Lower runs first.
const (
	PriorityConsole = 100
	PriorityLogFile = 200
)

// Event is the base interface for all dungeon events
type Event interface {
	GetType() EventType
}

// KillEvent records one NPC killing another during a battle pass.
// Killer and Victim are snapshots; listeners must not assume they can
// reach back into roster state.
type KillEvent struct {
	Killer *entities.NPC
	Victim *entities.NPC
}

// GetType returns the event type
func (e *KillEvent) GetType() EventType {
	return EventTypeKill
}
