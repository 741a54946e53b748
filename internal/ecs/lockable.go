package ecs

import (
	"github.com/younwookim/interactor/internal/domain/interaction"
)

// LockableConfig holds the editable properties of a LockableComponent
type LockableConfig struct {
	IsLocked bool
	KeyName  string // item an actor must carry to lock or unlock; empty needs none
}

// LockableComponent keeps an entity's locked state. On its own it offers
// lock / unlock; a door on the same entity takes those verbs over.
type LockableComponent struct {
	component
	cfg LockableConfig

	lockIx, unlockIx *interaction.Interaction
	adopted          bool
}

// AttachLockable adds a LockableComponent to id
func (w *World) AttachLockable(id EntityID, cfg LockableConfig) (*LockableComponent, error) {
	c := &LockableComponent{component: w.newComponent(id), cfg: cfg}
	var err error
	if c.lockIx, err = c.bind(interaction.VerbLockableLock, c); err != nil {
		return nil, err
	}
	if c.unlockIx, err = c.bind(interaction.VerbLockableUnlock, c); err != nil {
		c.detach()
		return nil, err
	}
	w.Lockable[id] = c
	c.refresh()
	return c, nil
}

// Locked reports the lock state
func (c *LockableComponent) Locked() bool { return c.cfg.IsLocked }

// KeyName returns the key item name
func (c *LockableComponent) KeyName() string { return c.cfg.KeyName }

// SetLocked forces the lock state without checking for a key
func (c *LockableComponent) SetLocked(locked bool) {
	c.cfg.IsLocked = locked
	c.refresh()
}

// adopt drops the component's own interactions; the adopting component
// offers lock / unlock instead and calls lock and unlock directly.
func (c *LockableComponent) adopt() {
	c.detach()
	c.lockIx, c.unlockIx = nil, nil
	c.adopted = true
}

// reclaim registers lock / unlock again once the adopting component is gone.
func (c *LockableComponent) reclaim() error {
	if !c.adopted {
		return nil
	}
	lockIx, err := c.bind(interaction.VerbLockableLock, c)
	if err != nil {
		return err
	}
	unlockIx, err := c.bind(interaction.VerbLockableUnlock, c)
	if err != nil {
		c.detach()
		return err
	}
	c.lockIx, c.unlockIx = lockIx, unlockIx
	c.adopted = false
	c.refresh()
	return nil
}

func (c *LockableComponent) refresh() {
	if c.adopted {
		return
	}
	c.lockIx.SetEnabled(!c.cfg.IsLocked)
	c.unlockIx.SetEnabled(c.cfg.IsLocked)
}

// hasKey reports whether a may operate the lock.
func (c *LockableComponent) hasKey(a interaction.Actor) bool {
	if c.cfg.KeyName == "" {
		return true
	}
	carrier, ok := carrierOf(a)
	return ok && carrier.HasItemNamed(c.cfg.KeyName)
}

// lock locks the entity if a carries the key. It reports whether the state
// changed.
func (c *LockableComponent) lock(a interaction.Actor) bool {
	if c.cfg.IsLocked {
		return false
	}
	if !c.hasKey(a) {
		c.log().WithField("key", c.cfg.KeyName).Info("lock refused: actor has no key")
		return false
	}
	c.cfg.IsLocked = true
	c.refresh()
	c.informLinked(DefaultQueueSignal, string(interaction.VerbLockableLock), true)
	return true
}

// unlock unlocks the entity if a carries the key. It reports whether the
// state changed.
func (c *LockableComponent) unlock(a interaction.Actor) bool {
	if !c.cfg.IsLocked {
		return false
	}
	if !c.hasKey(a) {
		c.log().WithField("key", c.cfg.KeyName).Info("unlock refused: actor has no key")
		return false
	}
	c.cfg.IsLocked = false
	c.refresh()
	c.informLinked(DefaultQueueSignal, string(interaction.VerbLockableUnlock), false)
	return true
}

// OnLock implements interaction.Lockable
func (c *LockableComponent) OnLock(a interaction.Actor) { c.lock(a) }

// OnUnlock implements interaction.Lockable
func (c *LockableComponent) OnUnlock(a interaction.Actor) { c.unlock(a) }
