package ecs

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/interactor/internal/domain/interaction"
)

// Door animation names
const (
	DoorAnimationOpen  = "default"
	DoorAnimationClose = "down"
)

// DefaultDoorDuration is how long a door takes to swing (seconds)
const DefaultDoorDuration = 0.4

// DoorConfig holds the editable properties of a DoorComponent
type DoorConfig struct {
	IsOpen   bool
	Duration float32 // seconds; zero uses DefaultDoorDuration
}

// DoorComponent is an animated door. Interact toggles it; it can also be
// opened, closed, locked and unlocked directly. The lock state lives in the
// LockableComponent on the same entity.
type DoorComponent struct {
	component
	cfg  DoorConfig
	lock *LockableComponent

	interactIx, openIx, closeIx, lockIx, unlockIx *interaction.Interaction

	isOpen    bool
	amount    float32 // 0 closed .. 1 open
	tween     *gween.Tween
	animation string
}

// AttachDoor adds a DoorComponent to id. The entity must already have a
// LockableComponent; its lock / unlock verbs are taken over by the door.
func (w *World) AttachDoor(id EntityID, cfg DoorConfig) (*DoorComponent, error) {
	lock, ok := w.Lockable[id]
	if !ok {
		return nil, fmt.Errorf("door %d: lockable component required", id)
	}
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDoorDuration
	}

	c := &DoorComponent{component: w.newComponent(id), cfg: cfg, lock: lock}
	binds := []struct {
		verb interaction.Verb
		dst  **interaction.Interaction
	}{
		{interaction.VerbInteract, &c.interactIx},
		{interaction.VerbOpenableOpen, &c.openIx},
		{interaction.VerbOpenableClose, &c.closeIx},
		{interaction.VerbLockableLock, &c.lockIx},
		{interaction.VerbLockableUnlock, &c.unlockIx},
	}
	for _, b := range binds {
		ix, err := c.bind(b.verb, c)
		if err != nil {
			c.detach()
			return nil, fmt.Errorf("door %d: %w", id, err)
		}
		*b.dst = ix
	}

	lock.adopt()
	w.Door[id] = c
	c.ResetState()
	return c, nil
}

// ResetState snaps the door to its configured state
func (c *DoorComponent) ResetState() {
	c.isOpen = c.cfg.IsOpen
	c.tween = nil
	c.animation = ""
	if c.isOpen {
		c.amount = 1
	} else {
		c.amount = 0
	}
	c.refresh()
}

// IsOpen reports whether the door is open (or opening)
func (c *DoorComponent) IsOpen() bool { return c.isOpen }

// Locked reports whether the door's lock is engaged
func (c *DoorComponent) Locked() bool { return c.lock.Locked() }

// OpenAmount returns how far the door has swung, 0 closed to 1 open
func (c *DoorComponent) OpenAmount() float32 { return c.amount }

// Animation returns the name of the last animation played
func (c *DoorComponent) Animation() string { return c.animation }

// Moving reports whether the door is still swinging
func (c *DoorComponent) Moving() bool { return c.tween != nil }

// Blocks reports whether the door stops movement through its tile
func (c *DoorComponent) Blocks() bool { return c.amount < 1 }

// Update advances the swing tween
func (c *DoorComponent) Update(dt float32) {
	if c.tween == nil {
		return
	}
	amount, finished := c.tween.Update(dt)
	c.amount = amount
	if finished {
		c.tween = nil
	}
}

// refresh enables exactly the verbs that make sense in the current state.
func (c *DoorComponent) refresh() {
	locked := c.lock.Locked()
	c.openIx.SetEnabled(!c.isOpen && !locked)
	c.closeIx.SetEnabled(c.isOpen)
	c.lockIx.SetEnabled(!c.isOpen && !locked)
	c.unlockIx.SetEnabled(locked)
}

func (c *DoorComponent) play(name string, to float32) {
	c.animation = name
	c.tween = gween.New(c.amount, to, c.cfg.Duration, ease.InOutQuad)
}

func (c *DoorComponent) open(a interaction.Actor) bool {
	if c.isOpen {
		return false
	}
	if c.lock.Locked() {
		c.log().Info("door is locked")
		return false
	}
	c.isOpen = true
	c.play(DoorAnimationOpen, 1)
	c.refresh()
	c.informLinked(DefaultQueueSignal, string(interaction.VerbOpenableOpen), true)
	c.log().WithFields(logrus.Fields{"actor": a.EntityID()}).Debug("door opened")
	return true
}

func (c *DoorComponent) close(a interaction.Actor) bool {
	if !c.isOpen {
		return false
	}
	c.isOpen = false
	c.play(DoorAnimationClose, 0)
	c.refresh()
	c.informLinked(DefaultQueueSignal, string(interaction.VerbOpenableClose), false)
	c.log().WithFields(logrus.Fields{"actor": a.EntityID()}).Debug("door closed")
	return true
}

// OnInteractStart implements interaction.Interactable by toggling the door
func (c *DoorComponent) OnInteractStart(a interaction.Actor) {
	if c.isOpen {
		c.close(a)
	} else {
		c.open(a)
	}
}

func (c *DoorComponent) OnInteractTick(interaction.Actor)     {}
func (c *DoorComponent) OnInteractComplete(interaction.Actor) {}
func (c *DoorComponent) OnInteractCancel(interaction.Actor)   {}

// OnOpen implements interaction.Openable
func (c *DoorComponent) OnOpen(a interaction.Actor) { c.open(a) }

// OnClose implements interaction.Openable
func (c *DoorComponent) OnClose(a interaction.Actor) { c.close(a) }

// OnLock implements interaction.Lockable. An open door cannot be locked.
func (c *DoorComponent) OnLock(a interaction.Actor) {
	if c.isOpen {
		c.log().Info("lock refused: door is open")
		return
	}
	if c.lock.lock(a) {
		c.refresh()
	}
}

// OnUnlock implements interaction.Lockable
func (c *DoorComponent) OnUnlock(a interaction.Actor) {
	if c.lock.unlock(a) {
		c.refresh()
	}
}
