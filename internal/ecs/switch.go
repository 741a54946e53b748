package ecs

import (
	"github.com/younwookim/interactor/internal/domain/interaction"
)

// SwitchConfig holds the editable properties of a SwitchComponent
type SwitchConfig struct {
	IsOn        bool
	QueueSignal string // empty sends "interaction_switch"
}

// DefaultSwitchQueueSignal is the response signal a switch sends by default
const DefaultSwitchQueueSignal = "interaction_switch"

// SwitchComponent is a two-state switch. Toggle is offered; the explicit
// on / off verbs stay hidden so scripts and menus can still reach them.
type SwitchComponent struct {
	component
	cfg SwitchConfig

	toggleIx, onIx, offIx *interaction.Interaction
	isOn                  bool
}

// AttachSwitch adds a SwitchComponent to id
func (w *World) AttachSwitch(id EntityID, cfg SwitchConfig) (*SwitchComponent, error) {
	c := &SwitchComponent{component: w.newComponent(id), cfg: cfg}
	var err error
	if c.toggleIx, err = c.bind(interaction.VerbSwitchToggle, c); err != nil {
		return nil, err
	}
	if c.onIx, err = c.bind(interaction.VerbSwitchOn, c, interaction.WithHidden(true)); err != nil {
		c.detach()
		return nil, err
	}
	if c.offIx, err = c.bind(interaction.VerbSwitchOff, c, interaction.WithHidden(true)); err != nil {
		c.detach()
		return nil, err
	}
	w.Switch[id] = c
	c.ResetState()
	return c, nil
}

// ResetState restores the configured state
func (c *SwitchComponent) ResetState() {
	c.isOn = c.cfg.IsOn
	c.refresh()
}

// IsOn reports the switch state
func (c *SwitchComponent) IsOn() bool { return c.isOn }

func (c *SwitchComponent) refresh() {
	c.onIx.SetEnabled(!c.isOn)
	c.offIx.SetEnabled(c.isOn)
}

func (c *SwitchComponent) set(on bool, verb interaction.Verb) {
	if c.isOn == on {
		return
	}
	c.isOn = on
	c.refresh()

	signal := c.cfg.QueueSignal
	if signal == "" {
		signal = DefaultSwitchQueueSignal
	}
	c.informLinked(signal, string(verb), on)
	c.log().WithField("on", on).Debug("switch changed")
}

// OnSwitchToggle implements interaction.Switchable
func (c *SwitchComponent) OnSwitchToggle(interaction.Actor) {
	c.set(!c.isOn, interaction.VerbSwitchToggle)
}

// OnSwitchOn implements interaction.Switchable
func (c *SwitchComponent) OnSwitchOn(interaction.Actor) {
	c.set(true, interaction.VerbSwitchOn)
}

// OnSwitchOff implements interaction.Switchable
func (c *SwitchComponent) OnSwitchOff(interaction.Actor) {
	c.set(false, interaction.VerbSwitchOff)
}
