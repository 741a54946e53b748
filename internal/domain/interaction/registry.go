package interaction

import (
	"errors"
	"fmt"
)

// Dispatch errors
var (
	ErrStaleHandle = errors.New("interaction: stale handle")
	ErrDisabled    = errors.New("interaction: disabled")
	ErrBusy        = errors.New("interaction: another interaction is active")
	ErrNotActive   = errors.New("interaction: no active interaction")
)

// OwnerID identifies the component that created (and is the subject of) a
// set of interactions.
type OwnerID uint64

// Handle refers to an interaction slot in a Registry. A handle goes stale
// once its slot is removed; reusing the slot bumps the generation.
type Handle struct {
	index      uint32
	generation uint32
}

// IsZero reports whether h was never issued.
func (h Handle) IsZero() bool { return h.generation == 0 }

type slot struct {
	ix         *Interaction
	owner      OwnerID
	generation uint32
	seq        uint64 // insertion order
}

// Registry holds the interactions attached to one entity and routes actor
// lifecycle events to the single active one.
//
// Only one interaction per registry may be active at a time: Start returns
// ErrBusy until the active one completes or is cancelled.
type Registry struct {
	slots   []slot
	free    []uint32
	nextSeq uint64

	active      Handle
	activeActor Actor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Add takes ownership of ix on behalf of owner.
func (r *Registry) Add(owner OwnerID, ix *Interaction) Handle {
	r.nextSeq++
	if n := len(r.free); n > 0 {
		idx := r.free[n-1]
		r.free = r.free[:n-1]
		s := &r.slots[idx]
		s.ix = ix
		s.owner = owner
		s.seq = r.nextSeq
		return Handle{index: idx, generation: s.generation}
	}
	r.slots = append(r.slots, slot{ix: ix, owner: owner, generation: 1, seq: r.nextSeq})
	return Handle{index: uint32(len(r.slots) - 1), generation: 1}
}

// Get returns the interaction behind h.
func (r *Registry) Get(h Handle) (*Interaction, bool) {
	s, ok := r.slot(h)
	if !ok {
		return nil, false
	}
	return s.ix, true
}

func (r *Registry) slot(h Handle) (*slot, bool) {
	if h.IsZero() || int(h.index) >= len(r.slots) {
		return nil, false
	}
	s := &r.slots[h.index]
	if s.ix == nil || s.generation != h.generation {
		return nil, false
	}
	return s, true
}

// Remove drops the interaction behind h. Removing the active interaction
// cancels it first.
func (r *Registry) Remove(h Handle) error {
	s, ok := r.slot(h)
	if !ok {
		return ErrStaleHandle
	}
	if r.active == h {
		s.ix.Cancel(r.activeActor)
		r.clearActive()
	}
	s.ix = nil
	s.owner = 0
	s.generation++
	r.free = append(r.free, h.index)
	return nil
}

// RemoveOwner drops every interaction registered by owner and returns how
// many were removed. Components call this before they are destroyed.
func (r *Registry) RemoveOwner(owner OwnerID) int {
	removed := 0
	for _, h := range r.handles() {
		if r.slots[h.index].owner == owner {
			_ = r.Remove(h)
			removed++
		}
	}
	return removed
}

// Clear removes every interaction, cancelling the active one.
func (r *Registry) Clear() {
	for _, h := range r.handles() {
		_ = r.Remove(h)
	}
}

// Len returns the number of registered interactions.
func (r *Registry) Len() int {
	return len(r.slots) - len(r.free)
}

// handles returns live handles in insertion order.
func (r *Registry) handles() []Handle {
	out := make([]Handle, 0, r.Len())
	for i := range r.slots {
		if r.slots[i].ix != nil {
			out = append(out, Handle{index: uint32(i), generation: r.slots[i].generation})
		}
	}
	// Slots are recycled, so index order is not insertion order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && r.slots[out[j].index].seq < r.slots[out[j-1].index].seq; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Entry pairs a handle with its interaction for enumeration.
type Entry struct {
	Handle      Handle
	Owner       OwnerID
	Interaction *Interaction
}

// All returns every registered interaction in insertion order.
func (r *Registry) All() []Entry {
	hs := r.handles()
	out := make([]Entry, len(hs))
	for i, h := range hs {
		s := r.slots[h.index]
		out[i] = Entry{Handle: h, Owner: s.owner, Interaction: s.ix}
	}
	return out
}

// Offered returns the interactions a player should be shown: enabled,
// useable and not hidden.
func (r *Registry) Offered() []Entry {
	var out []Entry
	for _, e := range r.All() {
		ix := e.Interaction
		if ix.Enabled() && ix.Useable() && !ix.Hidden() {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the first interaction registered for verb.
func (r *Registry) Lookup(verb Verb) (Entry, bool) {
	for _, e := range r.All() {
		if e.Interaction.Verb() == verb {
			return e, true
		}
	}
	return Entry{}, false
}

// Active returns the interaction currently in progress.
func (r *Registry) Active() (Entry, bool) {
	s, ok := r.slot(r.active)
	if !ok {
		return Entry{}, false
	}
	return Entry{Handle: r.active, Owner: s.owner, Interaction: s.ix}, true
}

// Start activates the interaction behind h for actor.
func (r *Registry) Start(h Handle, actor Actor) error {
	s, ok := r.slot(h)
	if !ok {
		return ErrStaleHandle
	}
	if !r.active.IsZero() {
		return fmt.Errorf("start %s: %w", s.ix.Verb(), ErrBusy)
	}
	if !s.ix.Enabled() {
		return fmt.Errorf("start %s: %w", s.ix.Verb(), ErrDisabled)
	}
	r.active = h
	r.activeActor = actor
	s.ix.Start(actor)
	return nil
}

// Tick forwards a held frame to the active interaction.
func (r *Registry) Tick(actor Actor) error {
	s, ok := r.slot(r.active)
	if !ok {
		return ErrNotActive
	}
	s.ix.Tick(actor)
	return nil
}

// Complete ends the active interaction normally.
func (r *Registry) Complete(actor Actor) error {
	s, ok := r.slot(r.active)
	if !ok {
		return ErrNotActive
	}
	r.clearActive()
	s.ix.Complete(actor)
	return nil
}

// Cancel aborts the active interaction.
func (r *Registry) Cancel(actor Actor) error {
	s, ok := r.slot(r.active)
	if !ok {
		return ErrNotActive
	}
	r.clearActive()
	s.ix.Cancel(actor)
	return nil
}

func (r *Registry) clearActive() {
	r.active = Handle{}
	r.activeActor = nil
}
