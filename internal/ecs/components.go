package ecs

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/interactor/internal/application/animation"
	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/domain/interaction"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// Position is an entity's tile position
type Position struct {
	X, Y int
}

// Add returns the position offset by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// DistanceTo returns the Chebyshev distance in tiles (diagonal neighbours are 1)
func (p Position) DistanceTo(o Position) int {
	dx, dy := abs(p.X-o.X), abs(p.Y-o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Room is the tile grid entities stand on (collision only)
type Room interface {
	IsSolidAt(tx, ty int) bool
}

// Controller is an actor that can be taken over by an interaction and
// play actions. Components degrade gracefully for actors without it.
type Controller interface {
	interaction.Actor
	InteractionStart(ix *interaction.Interaction)
	InteractionEnd(ix *interaction.Interaction)
	QueueAction(a *animation.Action)
	Actions() *animation.Queue
}

// InputSource exposes the actor's per-frame look input
type InputSource interface {
	PitchDelta() float64
	YawDelta() float64
}

// Carrier is an actor with an inventory and a facing direction
type Carrier interface {
	interaction.Actor
	Give(id entity.EntityID, name string)
	Take(id entity.EntityID) bool
	Holds(id entity.EntityID) bool
	HasItemNamed(name string) bool
	Facing() (int, int)
}

// Kind names a component type for Detach
type Kind int

const (
	KindInteract Kind = iota
	KindDoor
	KindLockable
	KindSwitch
	KindItem
	KindExamine
	KindResponse
	KindPet
)

// component is the part every interaction-owning component shares: which
// entity it lives on and the owner id its interactions are registered under.
type component struct {
	world  *World
	entity EntityID
	owner  interaction.OwnerID
}

func (w *World) newComponent(id EntityID) component {
	w.nextOwner++
	return component{world: w, entity: id, owner: w.nextOwner}
}

// Entity returns the entity the component is attached to
func (c *component) Entity() EntityID { return c.entity }

// Owner returns the owner id the component's interactions are registered under
func (c *component) Owner() interaction.OwnerID { return c.owner }

// register adds ix to the entity's interactor under this component.
func (c *component) register(ix *interaction.Interaction) {
	c.world.GetOrCreateInteractor(c.entity).Add(c.owner, ix)
}

// bind creates and registers the interaction for verb with this component's
// subject.
func (c *component) bind(verb interaction.Verb, subject any, opts ...interaction.Option) (*interaction.Interaction, error) {
	ix, err := interaction.New(verb, subject, opts...)
	if err != nil {
		return nil, err
	}
	c.register(ix)
	return ix, nil
}

// detach removes every interaction this component registered.
func (c *component) detach() {
	if reg, ok := c.world.Interactor[c.entity]; ok {
		reg.RemoveOwner(c.owner)
	}
}

func (c *component) log() *logrus.Entry {
	return logger.Entity(uint64(c.entity), c.world.Name[c.entity])
}

// informLinked pushes verb to every entity linked from this one.
func (c *component) informLinked(queueSignal, verb string, isInteractedOn bool) {
	c.world.InformAllLinkedEntities(c.entity, queueSignal, verb, isInteractedOn)
}
