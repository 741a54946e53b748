package ecs

import (
	"github.com/younwookim/interactor/internal/application/actor"
	"github.com/younwookim/interactor/internal/application/camera"
	"github.com/younwookim/interactor/internal/application/drs"
	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/domain/interaction"
	"github.com/younwookim/interactor/internal/infrastructure/bus"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID = entity.EntityID

// World holds all component maps and the next entity ID
type World struct {
	nextID    EntityID
	nextOwner interaction.OwnerID

	// Components
	Name       map[EntityID]string
	Position   map[EntityID]Position
	Links      map[EntityID][]EntityID
	Interactor map[EntityID]*interaction.Registry
	Actor      map[EntityID]*actor.Actor
	Interact   map[EntityID]*InteractComponent
	Door       map[EntityID]*DoorComponent
	Lockable   map[EntityID]*LockableComponent
	Switch     map[EntityID]*SwitchComponent
	Item       map[EntityID]*ItemComponent
	Examine    map[EntityID]*ExamineComponent
	Response   map[EntityID]*ResponseComponent
	Pet        map[EntityID]*PetComponent

	// Tags
	Stowed map[EntityID]struct{} // carried, not in the room

	// Singleton references
	PlayerID  EntityID
	Room      Room
	Signals   *bus.Bus
	Responses *drs.System
	Cameras   *camera.Manager
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Name:       make(map[EntityID]string),
		Position:   make(map[EntityID]Position),
		Links:      make(map[EntityID][]EntityID),
		Interactor: make(map[EntityID]*interaction.Registry),
		Actor:      make(map[EntityID]*actor.Actor),
		Interact:   make(map[EntityID]*InteractComponent),
		Door:       make(map[EntityID]*DoorComponent),
		Lockable:   make(map[EntityID]*LockableComponent),
		Switch:     make(map[EntityID]*SwitchComponent),
		Item:       make(map[EntityID]*ItemComponent),
		Examine:    make(map[EntityID]*ExamineComponent),
		Response:   make(map[EntityID]*ResponseComponent),
		Pet:        make(map[EntityID]*PetComponent),
		Stowed:     make(map[EntityID]struct{}),
		Signals:    bus.New(),
		Responses:  drs.NewSystem(),
		Cameras:    camera.NewManager(camera.DefaultConfig()),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// CreateEntity creates a named entity at a tile position
func (w *World) CreateEntity(name string, x, y int) EntityID {
	id := w.NewEntity()
	w.Name[id] = name
	w.Position[id] = Position{X: x, Y: y}
	return id
}

// CreatePlayer creates the player entity and attaches the camera to it
func (w *World) CreatePlayer(name string, x, y int) EntityID {
	id := w.CreateEntity(name, x, y)
	w.Actor[id] = actor.New(id, name)
	w.PlayerID = id
	w.Cameras.AttachToEntity(id)
	return id
}

// Player returns the player actor, or nil before CreatePlayer
func (w *World) Player() *actor.Actor {
	return w.Actor[w.PlayerID]
}

// DestroyEntity removes all components for an entity. Interactions are
// cancelled and deregistered before their subjects go away.
func (w *World) DestroyEntity(id EntityID) {
	if reg, ok := w.Interactor[id]; ok {
		reg.Clear()
	}
	if c, ok := w.Interact[id]; ok {
		c.abort()
	}
	for other := range w.Links {
		w.Unlink(other, id)
	}
	w.Responses.RemoveActor(id)

	delete(w.Name, id)
	delete(w.Position, id)
	delete(w.Links, id)
	delete(w.Interactor, id)
	delete(w.Actor, id)
	delete(w.Interact, id)
	delete(w.Door, id)
	delete(w.Lockable, id)
	delete(w.Switch, id)
	delete(w.Item, id)
	delete(w.Examine, id)
	delete(w.Response, id)
	delete(w.Pet, id)
	delete(w.Stowed, id)

	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Detach removes one component from an entity after deregistering its
// interactions.
func (w *World) Detach(id EntityID, kind Kind) {
	switch kind {
	case KindInteract:
		if c, ok := w.Interact[id]; ok {
			c.detach()
			c.abort()
			delete(w.Interact, id)
		}
	case KindDoor:
		if c, ok := w.Door[id]; ok {
			c.detach()
			delete(w.Door, id)
			if w.Lockable[id] == c.lock {
				if err := c.lock.reclaim(); err != nil {
					c.lock.log().WithError(err).Error("lockable could not take its verbs back")
				}
			}
		}
	case KindLockable:
		if c, ok := w.Lockable[id]; ok {
			c.detach()
			delete(w.Lockable, id)
		}
	case KindSwitch:
		if c, ok := w.Switch[id]; ok {
			c.detach()
			delete(w.Switch, id)
		}
	case KindItem:
		if c, ok := w.Item[id]; ok {
			c.detach()
			delete(w.Item, id)
		}
	case KindExamine:
		if c, ok := w.Examine[id]; ok {
			c.detach()
			delete(w.Examine, id)
		}
	case KindResponse:
		if c, ok := w.Response[id]; ok {
			c.detach()
			delete(w.Response, id)
		}
	case KindPet:
		if c, ok := w.Pet[id]; ok {
			c.detach()
			delete(w.Pet, id)
		}
	}
}

// Exists checks if an entity has a Name component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Name[id]
	return ok
}

// FindByName returns the first entity (lowest id) with the given name
func (w *World) FindByName(name string) (EntityID, bool) {
	var found EntityID
	for id, n := range w.Name {
		if n == name && (found == 0 || id < found) {
			found = id
		}
	}
	return found, found != 0
}

// InRoom reports whether the entity is placed in the room (not carried)
func (w *World) InRoom(id EntityID) bool {
	if _, ok := w.Stowed[id]; ok {
		return false
	}
	_, ok := w.Position[id]
	return ok
}

// Link makes to receive the response signals broadcast by from
func (w *World) Link(from, to EntityID) {
	for _, l := range w.Links[from] {
		if l == to {
			return
		}
	}
	w.Links[from] = append(w.Links[from], to)
}

// Unlink removes a link created by Link
func (w *World) Unlink(from, to EntityID) {
	links := w.Links[from]
	for i, l := range links {
		if l == to {
			w.Links[from] = append(links[:i], links[i+1:]...)
			return
		}
	}
}

// LinkedEntities returns the entities linked from id
func (w *World) LinkedEntities(id EntityID) []EntityID {
	return append([]EntityID(nil), w.Links[id]...)
}

// GetOrCreateInteractor returns id's interaction registry, creating it on
// first use.
func (w *World) GetOrCreateInteractor(id EntityID) *interaction.Registry {
	if reg, ok := w.Interactor[id]; ok {
		return reg
	}
	reg := interaction.NewRegistry()
	w.Interactor[id] = reg
	return reg
}

// InformAllLinkedEntities queues queueSignal on the response actor of every
// entity linked from source, with Verb and IsInteractedOn context variables.
func (w *World) InformAllLinkedEntities(source EntityID, queueSignal, verb string, isInteractedOn bool) {
	for _, target := range w.Links[source] {
		ctx := w.Responses.CreateContext().
			Set(drs.VarVerb, verb).
			Set(drs.VarIsInteractedOn, isInteractedOn)
		w.Responses.Actor(target).QueueSignal(queueSignal, ctx)
	}
	if len(w.Links[source]) > 0 {
		logger.Entity(uint64(source), w.Name[source]).
			WithField("verb", verb).
			WithField("targets", len(w.Links[source])).
			Debug("informed linked entities")
	}
}

// controllerOf returns the actor as a Controller when it supports it.
func controllerOf(a interaction.Actor) (Controller, bool) {
	c, ok := a.(Controller)
	return c, ok
}

// carrierOf returns the actor as a Carrier when it supports it.
func carrierOf(a interaction.Actor) (Carrier, bool) {
	c, ok := a.(Carrier)
	return c, ok
}
