package ecs

import (
	"github.com/younwookim/interactor/internal/application/drs"
	"github.com/younwookim/interactor/internal/domain/interaction"
)

// PetPettedSignal is queued on a pet whenever it is petted
const PetPettedSignal = "pet_petted"

// PetComponent is a companion that trails its owner around the room and
// can be petted.
type PetComponent struct {
	component
	owner EntityID
	home  Position

	ix     *interaction.Interaction
	petted int
}

// AttachPet adds a PetComponent to id, following owner
func (w *World) AttachPet(id, owner EntityID) (*PetComponent, error) {
	c := &PetComponent{component: w.newComponent(id), owner: owner, home: w.Position[id]}
	ix, err := c.bind(interaction.VerbInteract, c)
	if err != nil {
		return nil, err
	}
	c.ix = ix
	w.Pet[id] = c
	return c, nil
}

// ResetState puts the pet back where it spawned
func (c *PetComponent) ResetState() {
	c.world.Position[c.entity] = c.home
	c.petted = 0
}

// Owner returns the entity the pet follows
func (c *PetComponent) Owner() EntityID { return c.owner }

// Petted returns how many times the pet has been petted
func (c *PetComponent) Petted() int { return c.petted }

// Update steps the pet one tile toward its owner when it has fallen behind.
func (c *PetComponent) Update() {
	target, ok := c.world.Position[c.owner]
	if !ok || !c.world.InRoom(c.owner) {
		return
	}
	pos := c.world.Position[c.entity]
	if pos.DistanceTo(target) <= 1 {
		return
	}

	next := pos.Add(sign(target.X-pos.X), sign(target.Y-pos.Y))
	if c.world.Room != nil && c.world.Room.IsSolidAt(next.X, next.Y) {
		return
	}
	c.world.Position[c.entity] = next
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// OnInteractStart implements interaction.Interactable
func (c *PetComponent) OnInteractStart(a interaction.Actor) {
	c.petted++
	ctx := c.world.Responses.CreateContext().
		Set(drs.VarVerb, string(interaction.VerbInteract)).
		Set(drs.VarIsInteractedOn, true).
		Set("Petter", a.EntityID())
	c.world.Responses.Actor(c.entity).QueueSignal(PetPettedSignal, ctx)
	c.log().WithField("count", c.petted).Debug("pet petted")
}

func (c *PetComponent) OnInteractTick(interaction.Actor)     {}
func (c *PetComponent) OnInteractComplete(interaction.Actor) {}
func (c *PetComponent) OnInteractCancel(interaction.Actor)   {}
