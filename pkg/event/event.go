// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Flight event types
const (
	PlayerSpawned    Type = "player_spawned"
	PlayerDestroyed  Type = "player_destroyed"
	GamePaused       Type = "game_paused"
	GameResumed      Type = "game_resumed"
	GameExited       Type = "game_exited"
	AirbrakeChanged  Type = "airbrake_changed"
	OverboostEngaged Type = "overboost_engaged"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// SubscriptionID identifies a registered handler
type SubscriptionID uint64

// Subscription is returned by Subscribe. Calling Cancel removes the handler.
type Subscription struct {
	ID     SubscriptionID
	Cancel func()
}

type registration struct {
	id      SubscriptionID
	handler Handler
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]registration
	nextID   SubscriptionID
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id SubscriptionID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			b.handlers[eventType] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(b.handlers[eventType]) == 0 {
		delete(b.handlers, eventType)
	}
}

// Publish sends an event to all subscribed handlers. Handlers run on the
// caller's goroutine.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := append([]registration(nil), b.handlers[event.GetType()]...)
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// Specific event implementations

// PlayerEvent reports a change in the player aircraft's lifecycle
type PlayerEvent struct {
	BaseEvent
	PlayerID uint64
	Aircraft string
}

// NewPlayerEvent creates a new player event
func NewPlayerEvent(eventType Type, source interface{}, playerID uint64, aircraft string) *PlayerEvent {
	return &PlayerEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		PlayerID: playerID,
		Aircraft: aircraft,
	}
}

// StateEvent reports a game state transition
type StateEvent struct {
	BaseEvent
	From string
	To   string
}

// NewStateEvent creates a new state transition event
func NewStateEvent(eventType Type, source interface{}, from, to string) *StateEvent {
	return &StateEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		From: from,
		To:   to,
	}
}

// ControlEvent reports a change in a flight control surface or setting
type ControlEvent struct {
	BaseEvent
	Engaged  bool
	Throttle float64
}

// NewAirbrakeEvent creates an AirbrakeChanged event
func NewAirbrakeEvent(source interface{}, engaged bool) *ControlEvent {
	return &ControlEvent{
		BaseEvent: BaseEvent{
			EventType: AirbrakeChanged,
			Source:    source,
		},
		Engaged: engaged,
	}
}

// NewOverboostEvent creates an OverboostEngaged event
func NewOverboostEvent(source interface{}, throttle float64) *ControlEvent {
	return &ControlEvent{
		BaseEvent: BaseEvent{
			EventType: OverboostEngaged,
			Source:    source,
		},
		Engaged:  true,
		Throttle: throttle,
	}
}
