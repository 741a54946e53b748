// Package interaction routes an actor's press / hold / release / abort
// against a target to the capability methods of the component that owns the
// interaction.
//
// Each Interaction binds one verb to one capability method of one subject.
// A door that can be opened, closed, locked and unlocked therefore carries
// four Interactions sharing the same subject, each enabled and hidden
// independently.
//
// An Interaction gates itself: while disabled, Start, Tick, Complete and
// Cancel return without reaching the subject, whoever calls them. Callers
// need not check Enabled first. A component that must run cleanup after
// disabling its own interaction does so outside the lifecycle.
package interaction

import "errors"

// Construction errors
var (
	ErrNilSubject         = errors.New("interaction: nil subject")
	ErrUnknownVerb        = errors.New("interaction: unknown verb")
	ErrCapabilityMismatch = errors.New("interaction: subject does not implement capability")
)

// Actor is whoever triggers an interaction (player or NPC).
type Actor interface {
	EntityID() uint64
}

// hook is a bound capability method; nil means the phase is not wired.
type hook func(Actor)

// Interaction is a single verb bound to a single capability method.
// The binding is fixed at construction; only the enabled and hidden flags
// change afterwards.
type Interaction struct {
	verb       Verb
	capability Capability

	start    hook
	tick     hook
	complete hook
	cancel   hook

	enabled bool
	hidden  bool
}

// Option configures an Interaction at construction.
type Option func(*Interaction)

// WithEnabled sets the initial enabled flag (default true).
func WithEnabled(enabled bool) Option {
	return func(ix *Interaction) { ix.enabled = enabled }
}

// WithHidden sets the initial hidden flag (default false).
func WithHidden(hidden bool) Option {
	return func(ix *Interaction) { ix.hidden = hidden }
}

func newInteraction(verb Verb, capability Capability, opts []Option) *Interaction {
	ix := &Interaction{
		verb:       verb,
		capability: capability,
		enabled:    true,
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Start is called once when the actor begins the interaction (key down).
// It is a no-op while the interaction is disabled.
func (ix *Interaction) Start(actor Actor) { ix.fire(ix.start, actor) }

// Tick is called each frame while the actor keeps the interaction held.
func (ix *Interaction) Tick(actor Actor) { ix.fire(ix.tick, actor) }

// Complete is called when the interaction ends normally (key up).
func (ix *Interaction) Complete(actor Actor) { ix.fire(ix.complete, actor) }

// Cancel is called when the interaction is aborted before completion.
// Like every phase it is swallowed while the interaction is disabled.
func (ix *Interaction) Cancel(actor Actor) { ix.fire(ix.cancel, actor) }

// fire runs h unless the phase is unwired or the interaction is disabled.
// The enabled check lives here, not only in the registry.
func (ix *Interaction) fire(h hook, actor Actor) {
	if h == nil || !ix.enabled {
		return
	}
	h(actor)
}

// Verb returns the stable verb identifier.
func (ix *Interaction) Verb() Verb { return ix.verb }

// VerbUI returns the localisation key for the verb ("@" + verb).
func (ix *Interaction) VerbUI() string { return ix.verb.UI() }

// Capability returns the capability family this interaction routes to.
func (ix *Interaction) Capability() Capability { return ix.capability }

// Useable always reports true.
func (ix *Interaction) Useable() bool { return true }

// Enabled reports whether lifecycle calls reach the subject.
func (ix *Interaction) Enabled() bool { return ix.enabled }

// SetEnabled sets the enabled flag.
func (ix *Interaction) SetEnabled(enabled bool) { ix.enabled = enabled }

// Hidden reports whether the interaction is withheld from offer lists.
// Hidden interactions still execute.
func (ix *Interaction) Hidden() bool { return ix.hidden }

// SetHidden sets the hidden flag.
func (ix *Interaction) SetHidden(hidden bool) { ix.hidden = hidden }

// Ticks reports whether the interaction forwards Tick to its subject.
func (ix *Interaction) Ticks() bool { return ix.tick != nil }
