// Package bus fans component signals out to subscribers.
//
// Signals are queued on publish and delivered when Process is called, once
// per frame from the update loop.
package bus

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/younwookim/interactor/internal/domain/signal"
)

// Event is the envelope a signal travels in. Donburi event types are keyed
// by a concrete type, so the interface cannot be published bare.
type Event struct {
	Signal signal.Signal
}

// SignalEventType is the Donburi event type every signal is published as.
var SignalEventType = events.NewEventType[Event]()

// Handler receives delivered signals
type Handler func(sig signal.Signal)

// Bus is a queued signal bus backed by a Donburi world.
type Bus struct {
	world   donburi.World
	pending int
}

// New creates a bus with its own event world
func New() *Bus {
	return NewWithWorld(donburi.NewWorld())
}

// NewWithWorld creates a bus that publishes into an existing Donburi world,
// so ECS systems sharing that world can subscribe to SignalEventType directly.
func NewWithWorld(world donburi.World) *Bus {
	return &Bus{world: world}
}

// World returns the underlying Donburi world
func (b *Bus) World() donburi.World {
	return b.world
}

// Subscribe registers h for every signal
func (b *Bus) Subscribe(h Handler) {
	SignalEventType.Subscribe(b.world, func(_ donburi.World, ev Event) {
		h(ev.Signal)
	})
}

// Publish queues sig for delivery on the next Process
func (b *Bus) Publish(sig signal.Signal) {
	SignalEventType.Publish(b.world, Event{Signal: sig})
	b.pending++
}

// Pending returns how many signals are waiting for Process
func (b *Bus) Pending() int {
	return b.pending
}

// Process delivers all queued signals to subscribers
func (b *Bus) Process() {
	SignalEventType.ProcessEvents(b.world)
	b.pending = 0
}
