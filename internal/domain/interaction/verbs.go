package interaction

import (
	"fmt"
	"reflect"
)

// Verb is the stable identifier of an interaction action. It is used as the
// UI localisation key (see UI) and as the name pushed to other systems.
type Verb string

// Known verbs
const (
	VerbExamine        Verb = "interaction_examine"
	VerbInteract       Verb = "interaction_interact"
	VerbResponse       Verb = "interaction_drs"
	VerbSwitchToggle   Verb = "interaction_switch_toggle"
	VerbSwitchOn       Verb = "interaction_switch_on"
	VerbSwitchOff      Verb = "interaction_switch_off"
	VerbItemInspect    Verb = "interaction_inspect"
	VerbItemPickup     Verb = "interaction_pickup"
	VerbItemDrop       Verb = "interaction_drop"
	VerbItemToss       Verb = "interaction_toss"
	VerbOpenableOpen   Verb = "interaction_openable_open"
	VerbOpenableClose  Verb = "interaction_openable_close"
	VerbLockableLock   Verb = "interaction_lockable_lock"
	VerbLockableUnlock Verb = "interaction_lockable_unlock"
)

// DefaultVerb is the verb reported when nothing more specific applies.
const DefaultVerb = VerbInteract

// UI returns the localisation lookup key for the verb.
func (v Verb) UI() string { return "@" + string(v) }

// String returns the verb identifier
func (v Verb) String() string { return string(v) }

type hooks struct {
	start, tick, complete, cancel hook
}

// binding maps one verb onto the capability methods of a subject.
type binding struct {
	verb       Verb
	capability Capability
	bind       func(subject any) (hooks, bool)
}

// verbTable is ordered: BindAll and Verbs report verbs in this order.
var verbTable = []binding{
	{VerbExamine, CapabilityExamine, func(s any) (hooks, bool) {
		e, ok := s.(Examinable)
		if !ok {
			return hooks{}, false
		}
		return hooks{start: e.OnExamineStart, complete: e.OnExamineComplete, cancel: e.OnExamineCancel}, true
	}},
	{VerbInteract, CapabilityInteract, func(s any) (hooks, bool) {
		i, ok := s.(Interactable)
		if !ok {
			return hooks{}, false
		}
		return hooks{start: i.OnInteractStart, tick: i.OnInteractTick, complete: i.OnInteractComplete, cancel: i.OnInteractCancel}, true
	}},
	{VerbResponse, CapabilityResponse, func(s any) (hooks, bool) {
		r, ok := s.(ResponseTrigger)
		if !ok {
			return hooks{}, false
		}
		// The response fires without an actor.
		return hooks{start: func(Actor) { r.OnResponseFire() }}, true
	}},
	{VerbSwitchToggle, CapabilitySwitch, switchHook(func(s Switchable) hook { return s.OnSwitchToggle })},
	{VerbSwitchOn, CapabilitySwitch, switchHook(func(s Switchable) hook { return s.OnSwitchOn })},
	{VerbSwitchOff, CapabilitySwitch, switchHook(func(s Switchable) hook { return s.OnSwitchOff })},
	{VerbItemInspect, CapabilityItem, itemHook(func(s Item) hook { return s.OnItemInspect })},
	{VerbItemPickup, CapabilityItem, itemHook(func(s Item) hook { return s.OnItemPickup })},
	{VerbItemDrop, CapabilityItem, itemHook(func(s Item) hook { return s.OnItemDrop })},
	{VerbItemToss, CapabilityItem, itemHook(func(s Item) hook { return s.OnItemToss })},
	{VerbOpenableOpen, CapabilityOpenable, openableHook(func(s Openable) hook { return s.OnOpen })},
	{VerbOpenableClose, CapabilityOpenable, openableHook(func(s Openable) hook { return s.OnClose })},
	{VerbLockableLock, CapabilityLockable, lockableHook(func(s Lockable) hook { return s.OnLock })},
	{VerbLockableUnlock, CapabilityLockable, lockableHook(func(s Lockable) hook { return s.OnUnlock })},
}

func switchHook(pick func(Switchable) hook) func(any) (hooks, bool) {
	return func(s any) (hooks, bool) {
		sw, ok := s.(Switchable)
		if !ok {
			return hooks{}, false
		}
		return hooks{start: pick(sw)}, true
	}
}

func itemHook(pick func(Item) hook) func(any) (hooks, bool) {
	return func(s any) (hooks, bool) {
		it, ok := s.(Item)
		if !ok {
			return hooks{}, false
		}
		return hooks{start: pick(it)}, true
	}
}

func openableHook(pick func(Openable) hook) func(any) (hooks, bool) {
	return func(s any) (hooks, bool) {
		o, ok := s.(Openable)
		if !ok {
			return hooks{}, false
		}
		return hooks{start: pick(o)}, true
	}
}

func lockableHook(pick func(Lockable) hook) func(any) (hooks, bool) {
	return func(s any) (hooks, bool) {
		l, ok := s.(Lockable)
		if !ok {
			return hooks{}, false
		}
		return hooks{start: pick(l)}, true
	}
}

func lookupBinding(verb Verb) (binding, bool) {
	for _, b := range verbTable {
		if b.verb == verb {
			return b, true
		}
	}
	return binding{}, false
}

// Verbs returns every known verb in table order.
func Verbs() []Verb {
	verbs := make([]Verb, len(verbTable))
	for i, b := range verbTable {
		verbs[i] = b.verb
	}
	return verbs
}

// CapabilityOf returns the capability a verb belongs to.
func CapabilityOf(verb Verb) (Capability, bool) {
	b, ok := lookupBinding(verb)
	return b.capability, ok
}

// New binds verb to subject. The subject must implement the verb's
// capability interface.
func New(verb Verb, subject any, opts ...Option) (*Interaction, error) {
	if isNil(subject) {
		return nil, fmt.Errorf("%s: %w", verb, ErrNilSubject)
	}
	b, ok := lookupBinding(verb)
	if !ok {
		return nil, fmt.Errorf("%q: %w", string(verb), ErrUnknownVerb)
	}
	h, ok := b.bind(subject)
	if !ok {
		return nil, fmt.Errorf("%s (%s, %T): %w", verb, b.capability, subject, ErrCapabilityMismatch)
	}
	ix := newInteraction(verb, b.capability, opts)
	ix.start, ix.tick, ix.complete, ix.cancel = h.start, h.tick, h.complete, h.cancel
	return ix, nil
}

// BindAll creates one Interaction for every verb whose capability the
// subject implements, in table order. The same options apply to each.
func BindAll(subject any, opts ...Option) ([]*Interaction, error) {
	if isNil(subject) {
		return nil, ErrNilSubject
	}
	var out []*Interaction
	for _, b := range verbTable {
		h, ok := b.bind(subject)
		if !ok {
			continue
		}
		ix := newInteraction(b.verb, b.capability, opts)
		ix.start, ix.tick, ix.complete, ix.cancel = h.start, h.tick, h.complete, h.cancel
		out = append(out, ix)
	}
	return out, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// NewExamine binds the examine verb.
func NewExamine(subject Examinable, opts ...Option) (*Interaction, error) {
	return New(VerbExamine, subject, opts...)
}

// NewInteract binds the generic interact verb; it is the only family that
// forwards Tick.
func NewInteract(subject Interactable, opts ...Option) (*Interaction, error) {
	return New(VerbInteract, subject, opts...)
}

// NewResponse binds the fire-once DRS verb.
func NewResponse(subject ResponseTrigger, opts ...Option) (*Interaction, error) {
	return New(VerbResponse, subject, opts...)
}

func NewSwitchToggle(subject Switchable, opts ...Option) (*Interaction, error) {
	return New(VerbSwitchToggle, subject, opts...)
}

func NewSwitchOn(subject Switchable, opts ...Option) (*Interaction, error) {
	return New(VerbSwitchOn, subject, opts...)
}

func NewSwitchOff(subject Switchable, opts ...Option) (*Interaction, error) {
	return New(VerbSwitchOff, subject, opts...)
}

func NewItemInspect(subject Item, opts ...Option) (*Interaction, error) {
	return New(VerbItemInspect, subject, opts...)
}

func NewItemPickup(subject Item, opts ...Option) (*Interaction, error) {
	return New(VerbItemPickup, subject, opts...)
}

func NewItemDrop(subject Item, opts ...Option) (*Interaction, error) {
	return New(VerbItemDrop, subject, opts...)
}

func NewItemToss(subject Item, opts ...Option) (*Interaction, error) {
	return New(VerbItemToss, subject, opts...)
}

// NewOpenableOpen binds the open verb.
func NewOpenableOpen(subject Openable, opts ...Option) (*Interaction, error) {
	return New(VerbOpenableOpen, subject, opts...)
}

// NewOpenableClose binds the close verb.
func NewOpenableClose(subject Openable, opts ...Option) (*Interaction, error) {
	return New(VerbOpenableClose, subject, opts...)
}

// NewLockableLock binds the lock verb.
func NewLockableLock(subject Lockable, opts ...Option) (*Interaction, error) {
	return New(VerbLockableLock, subject, opts...)
}

// NewLockableUnlock binds the unlock verb.
func NewLockableUnlock(subject Lockable, opts ...Option) (*Interaction, error) {
	return New(VerbLockableUnlock, subject, opts...)
}
