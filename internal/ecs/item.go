package ecs

import (
	"github.com/sirupsen/logrus"

	"github.com/younwookim/interactor/internal/application/drs"
	"github.com/younwookim/interactor/internal/domain/interaction"
)

// ItemInspectSignal is the response signal an item queues on itself when
// inspected.
const ItemInspectSignal = "interaction_item_inspect"

// ItemConfig holds the editable properties of an ItemComponent
type ItemConfig struct {
	Description string
}

// ItemComponent is something an actor can pick up, carry, drop and toss
type ItemComponent struct {
	component
	cfg ItemConfig

	inspectIx, pickupIx, dropIx, tossIx *interaction.Interaction
	holder                              EntityID
}

// AttachItem adds an ItemComponent to id
func (w *World) AttachItem(id EntityID, cfg ItemConfig) (*ItemComponent, error) {
	c := &ItemComponent{component: w.newComponent(id), cfg: cfg}
	binds := []struct {
		verb interaction.Verb
		dst  **interaction.Interaction
	}{
		{interaction.VerbItemInspect, &c.inspectIx},
		{interaction.VerbItemPickup, &c.pickupIx},
		{interaction.VerbItemDrop, &c.dropIx},
		{interaction.VerbItemToss, &c.tossIx},
	}
	for _, b := range binds {
		ix, err := c.bind(b.verb, c)
		if err != nil {
			c.detach()
			return nil, err
		}
		*b.dst = ix
	}
	w.Item[id] = c
	c.refresh()
	return c, nil
}

// Description returns the inspect text
func (c *ItemComponent) Description() string { return c.cfg.Description }

// Holder returns the entity carrying the item, or 0 when it is on the ground
func (c *ItemComponent) Holder() EntityID { return c.holder }

// Held reports whether an actor is carrying the item
func (c *ItemComponent) Held() bool { return c.holder != 0 }

func (c *ItemComponent) refresh() {
	held := c.Held()
	c.pickupIx.SetEnabled(!held)
	c.pickupIx.SetHidden(held)
	for _, ix := range []*interaction.Interaction{c.dropIx, c.tossIx} {
		ix.SetEnabled(held)
		ix.SetHidden(!held)
	}
}

// OnItemInspect implements interaction.Item
func (c *ItemComponent) OnItemInspect(a interaction.Actor) {
	c.log().WithFields(logrus.Fields{
		"actor":       a.EntityID(),
		"description": c.cfg.Description,
	}).Info("item inspected")

	ctx := c.world.Responses.CreateContext().
		Set(drs.VarVerb, string(interaction.VerbItemInspect)).
		Set(drs.VarIsInteractedOn, true)
	c.world.Responses.Actor(c.entity).QueueSignal(ItemInspectSignal, ctx)
}

// OnItemPickup implements interaction.Item
func (c *ItemComponent) OnItemPickup(a interaction.Actor) {
	if c.Held() {
		return
	}
	carrier, ok := carrierOf(a)
	if !ok {
		c.log().Warn("pickup refused: actor cannot carry items")
		return
	}
	carrier.Give(c.entity, c.world.Name[c.entity])
	c.holder = EntityID(a.EntityID())
	c.world.Stowed[c.entity] = struct{}{}
	c.refresh()
	c.informLinked(DefaultQueueSignal, string(interaction.VerbItemPickup), true)
}

// OnItemDrop implements interaction.Item
func (c *ItemComponent) OnItemDrop(a interaction.Actor) {
	pos, ok := c.world.Position[EntityID(a.EntityID())]
	if !ok {
		return
	}
	c.putDown(a, pos, interaction.VerbItemDrop)
}

// OnItemToss implements interaction.Item. The item lands one tile ahead of
// the actor, or at its feet when that tile is solid.
func (c *ItemComponent) OnItemToss(a interaction.Actor) {
	pos, ok := c.world.Position[EntityID(a.EntityID())]
	if !ok {
		return
	}
	if carrier, ok := carrierOf(a); ok {
		dx, dy := carrier.Facing()
		ahead := pos.Add(dx, dy)
		if c.world.Room == nil || !c.world.Room.IsSolidAt(ahead.X, ahead.Y) {
			pos = ahead
		}
	}
	c.putDown(a, pos, interaction.VerbItemToss)
}

func (c *ItemComponent) putDown(a interaction.Actor, pos Position, verb interaction.Verb) {
	if c.holder != EntityID(a.EntityID()) {
		return
	}
	if carrier, ok := carrierOf(a); ok {
		carrier.Take(c.entity)
	}
	c.holder = 0
	delete(c.world.Stowed, c.entity)
	c.world.Position[c.entity] = pos
	c.refresh()
	c.informLinked(DefaultQueueSignal, string(verb), false)
}
