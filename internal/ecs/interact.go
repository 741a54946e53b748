package ecs

import (
	"hash/crc32"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/interactor/internal/application/animation"
	"github.com/younwookim/interactor/internal/domain/interaction"
	"github.com/younwookim/interactor/internal/domain/signal"
)

// DefaultQueueSignal is the response signal linked entities receive when no
// override is configured.
const DefaultQueueSignal = "interaction_interact"

// Verbs pushed to linked entities by InteractComponent
const (
	InteractStartVerb          = "interaction_interact_start"
	InteractTickVerb           = "interaction_interact_tick"
	InteractCompleteVerb       = "interaction_interact_complete"
	InteractAnimationEnterVerb = "interaction_interact_animation_enter"
	InteractAnimationFailVerb  = "interaction_interact_animation_fail"
	InteractAnimationExitVerb  = "interaction_interact_animation_exit"
	InteractAnimationEventVerb = "interaction_interact_animation_event"
)

// InteractConfig holds the editable properties of an InteractComponent
type InteractConfig struct {
	IsEnabled       bool
	IsSingleUseOnly bool
	QueueSignal     string // empty sends DefaultQueueSignal
}

// DefaultInteractConfig returns an enabled, reusable configuration
func DefaultInteractConfig() InteractConfig {
	return InteractConfig{IsEnabled: true}
}

// InteractComponent is a generic interaction between an actor and an
// entity. It forwards the lifecycle to linked entities and to the signal bus.
type InteractComponent struct {
	component
	cfg InteractConfig

	ix    *interaction.Interaction
	actor Controller // set while an interaction animation is in flight
	spent bool       // single use: started once, disabled when it ends
}

// AttachInteract adds an InteractComponent to id
func (w *World) AttachInteract(id EntityID, cfg InteractConfig) (*InteractComponent, error) {
	c := &InteractComponent{component: w.newComponent(id), cfg: cfg}
	ix, err := c.bind(interaction.VerbInteract, c)
	if err != nil {
		return nil, err
	}
	c.ix = ix
	w.Interact[id] = c
	c.ResetState()
	return c, nil
}

// ResetState pushes the configured enabled flag into the interaction
func (c *InteractComponent) ResetState() {
	c.ix.SetEnabled(c.cfg.IsEnabled)
}

// Enabled reports whether the component still responds
func (c *InteractComponent) Enabled() bool { return c.cfg.IsEnabled }

// SetEnabled changes the component's enabled property and its interaction.
// Disabling it mid-interaction hands the actor back at once.
func (c *InteractComponent) SetEnabled(enabled bool) {
	c.cfg.IsEnabled = enabled
	c.ResetState()
	if !enabled {
		c.abort()
	}
}

// Interaction returns the component's interaction
func (c *InteractComponent) Interaction() *interaction.Interaction { return c.ix }

func (c *InteractComponent) queueSignal() string {
	if c.cfg.QueueSignal == "" {
		return DefaultQueueSignal
	}
	return c.cfg.QueueSignal
}

func (c *InteractComponent) inform(verb string) {
	c.informLinked(c.queueSignal(), verb, true)
}

// OnInteractStart implements interaction.Interactable
func (c *InteractComponent) OnInteractStart(a interaction.Actor) {
	if !c.cfg.IsEnabled {
		return
	}

	if ctl, ok := controllerOf(a); ok {
		c.actor = ctl
		ctl.InteractionStart(c.ix)

		action := animation.NewInteractionAction()
		action.AddEventListener(c)
		ctl.QueueAction(action)
	}

	c.inform(InteractStartVerb)
	c.world.Signals.Publish(signal.InteractStart{Entity: c.entity})

	c.spent = c.cfg.IsSingleUseOnly
}

// OnInteractTick implements interaction.Interactable
func (c *InteractComponent) OnInteractTick(a interaction.Actor) {
	if !c.cfg.IsEnabled {
		return
	}
	c.inform(InteractTickVerb)

	var pitch, yaw float64
	if in, ok := a.(InputSource); ok {
		pitch, yaw = in.PitchDelta(), in.YawDelta()
	}
	c.world.Signals.Publish(signal.InteractTick{Entity: c.entity, DeltaPitch: pitch, DeltaYaw: yaw})
}

// OnInteractComplete implements interaction.Interactable
func (c *InteractComponent) OnInteractComplete(interaction.Actor) {
	if !c.cfg.IsEnabled {
		return
	}
	c.inform(InteractCompleteVerb)
	c.world.Signals.Publish(signal.InteractComplete{Entity: c.entity})
	c.spend()
}

// OnInteractCancel implements interaction.Interactable. The running
// interaction animation is failed, which hands control back to the actor.
func (c *InteractComponent) OnInteractCancel(a interaction.Actor) {
	if ctl, ok := controllerOf(a); ok {
		ctl.Actions().Clear(animation.FailureCancelled)
		ctl.InteractionEnd(c.ix)
	}
	c.actor = nil
	c.spend()
}

// OnActionAnimationEnter implements animation.Listener
func (c *InteractComponent) OnActionAnimationEnter() {
	c.inform(InteractAnimationEnterVerb)
	c.world.Signals.Publish(signal.AnimationEnter{Entity: c.entity})
}

// OnActionAnimationFail implements animation.Listener
func (c *InteractComponent) OnActionAnimationFail(reason animation.Failure) {
	c.release()
	c.inform(InteractAnimationFailVerb)
	c.world.Signals.Publish(signal.AnimationFail{Entity: c.entity, Reason: reason.String()})
}

// OnActionAnimationExit implements animation.Listener
func (c *InteractComponent) OnActionAnimationExit() {
	c.release()
	c.inform(InteractAnimationExitVerb)
	c.world.Signals.Publish(signal.AnimationExit{Entity: c.entity})
}

// OnActionAnimationEvent implements animation.Listener
func (c *InteractComponent) OnActionAnimationEvent(ev animation.Event) {
	c.log().WithFields(logrus.Fields{
		"event": ev.Name,
		"time":  ev.Time,
	}).Info("interact animation event")

	c.inform(InteractAnimationEventVerb)
	c.world.Signals.Publish(signal.AnimationEvent{
		Entity:          c.entity,
		EventName:       ev.Name,
		NameCRC32:       crc32.ChecksumIEEE([]byte(strings.ToLower(ev.Name))),
		CustomParameter: ev.CustomParameter,
		Time:            float64(ev.Time),
		EndTime:         float64(ev.EndTime),
		BonePathName:    ev.BonePathName,
		BoneDirection:   ev.BoneDirection,
		BoneOffset:      ev.BoneOffset,
	})
}

// spend disables a single-use component once its interaction is over.
func (c *InteractComponent) spend() {
	if !c.spent {
		return
	}
	c.spent = false
	c.cfg.IsEnabled = false
	c.ResetState()
}

// abort fails the interaction animation still in flight and releases the
// actor. It runs outside the interaction lifecycle, so it works while the
// interaction is disabled or already deregistered.
func (c *InteractComponent) abort() {
	ctl := c.actor
	if ctl == nil {
		return
	}
	ctl.Actions().Clear(animation.FailureCancelled)
	ctl.InteractionEnd(c.ix)
	c.actor = nil
}

// release tells the actor the interaction is over and forgets it.
func (c *InteractComponent) release() {
	if c.actor != nil {
		c.actor.InteractionEnd(c.ix)
	}
	c.actor = nil
}
