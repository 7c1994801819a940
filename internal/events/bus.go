package events

import (
	"sort"
)

// Listener processes events
type Listener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution to registered listeners
type Bus struct {
	listeners map[EventType][]Listener
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe adds a listener for a specific event type
func (b *Bus) Subscribe(eventType EventType, listener Listener) {
	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Sort by priority
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}

// Unsubscribe removes a listener by ID
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
		return
	}
}

// Emit sends an event to all registered listeners in priority order.
// A failing listener does not stop delivery to the rest.
func (b *Bus) Emit(event Event) {
	for _, listener := range b.listeners[event.GetType()] {
		_ = listener.HandleEvent(event)
	}
}

// ListenerCount returns the number of listeners for an event type
func (b *Bus) ListenerCount(eventType EventType) int {
	return len(b.listeners[eventType])
}
