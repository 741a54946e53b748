// Package actor provides the player / NPC side of an interaction: identity,
// input deltas, what is being carried, the action queue and which
// interaction the actor is currently engaged in.
package actor

import (
	"github.com/younwookim/interactor/internal/application/animation"
	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/domain/interaction"
)

// Held is an inventory entry
type Held struct {
	ID   entity.EntityID
	Name string
}

// Actor is an entity that can trigger interactions
type Actor struct {
	id   entity.EntityID
	name string

	facingX, facingY int

	pitchDelta float64
	yawDelta   float64

	inventory   []Held
	actions     *animation.Queue
	interaction *interaction.Interaction
}

// New creates an actor facing down (+Y)
func New(id entity.EntityID, name string) *Actor {
	return &Actor{
		id:      id,
		name:    name,
		facingY: 1,
		actions: animation.NewQueue(),
	}
}

// EntityID implements interaction.Actor
func (a *Actor) EntityID() uint64 { return uint64(a.id) }

// ID returns the actor's entity id
func (a *Actor) ID() entity.EntityID { return a.id }

// Name returns the actor's display name
func (a *Actor) Name() string { return a.name }

// SetInputDeltas stores this frame's look input
func (a *Actor) SetInputDeltas(pitch, yaw float64) {
	a.pitchDelta = pitch
	a.yawDelta = yaw
}

// PitchDelta returns the requested change in pitch for this frame
func (a *Actor) PitchDelta() float64 { return a.pitchDelta }

// YawDelta returns the requested change in yaw for this frame
func (a *Actor) YawDelta() float64 { return a.yawDelta }

// SetFacing sets the facing direction; zero vectors are ignored
func (a *Actor) SetFacing(dx, dy int) {
	if dx == 0 && dy == 0 {
		return
	}
	a.facingX, a.facingY = dx, dy
}

// Facing returns the facing direction in tiles
func (a *Actor) Facing() (int, int) { return a.facingX, a.facingY }

// InteractionStart records that the actor has handed control to ix
func (a *Actor) InteractionStart(ix *interaction.Interaction) {
	a.interaction = ix
}

// InteractionEnd releases ix if it is the current interaction
func (a *Actor) InteractionEnd(ix *interaction.Interaction) {
	if a.interaction == ix {
		a.interaction = nil
	}
}

// Interaction returns the interaction controlling the actor, or nil
func (a *Actor) Interaction() *interaction.Interaction { return a.interaction }

// Busy reports whether an interaction has control of the actor
func (a *Actor) Busy() bool { return a.interaction != nil }

// QueueAction queues an animation action
func (a *Actor) QueueAction(action *animation.Action) {
	a.actions.Push(action)
}

// Actions returns the actor's action queue
func (a *Actor) Actions() *animation.Queue { return a.actions }

// Update advances the action queue
func (a *Actor) Update(dt float32) {
	a.actions.Update(dt)
}

// Give adds an item to the inventory
func (a *Actor) Give(id entity.EntityID, name string) {
	if a.Holds(id) {
		return
	}
	a.inventory = append(a.inventory, Held{ID: id, Name: name})
}

// Take removes an item from the inventory
func (a *Actor) Take(id entity.EntityID) bool {
	for i, h := range a.inventory {
		if h.ID == id {
			a.inventory = append(a.inventory[:i], a.inventory[i+1:]...)
			return true
		}
	}
	return false
}

// Holds reports whether the item is in the inventory
func (a *Actor) Holds(id entity.EntityID) bool {
	for _, h := range a.inventory {
		if h.ID == id {
			return true
		}
	}
	return false
}

// HasItemNamed reports whether any carried item has the given name
func (a *Actor) HasItemNamed(name string) bool {
	for _, h := range a.inventory {
		if h.Name == name {
			return true
		}
	}
	return false
}

// Inventory returns a copy of the inventory
func (a *Actor) Inventory() []Held {
	return append([]Held(nil), a.inventory...)
}
