package ecs

import (
	"maps"
	"slices"

	"github.com/younwookim/interactor/internal/application/drs"
	"github.com/younwookim/interactor/internal/domain/interaction"
)

// ResponseConfig holds the editable properties of a ResponseComponent
type ResponseConfig struct {
	Signal          string
	Variables       map[string]any
	IsSingleUseOnly bool
}

// ResponseComponent fires a dynamic response signal at its own entity when
// an actor triggers it.
type ResponseComponent struct {
	component
	cfg ResponseConfig

	ix    *interaction.Interaction
	fired int
}

// AttachResponse adds a ResponseComponent to id
func (w *World) AttachResponse(id EntityID, cfg ResponseConfig) (*ResponseComponent, error) {
	c := &ResponseComponent{component: w.newComponent(id), cfg: cfg}
	ix, err := c.bind(interaction.VerbResponse, c)
	if err != nil {
		return nil, err
	}
	c.ix = ix
	w.Response[id] = c
	return c, nil
}

// ResetState re-arms the trigger
func (c *ResponseComponent) ResetState() {
	c.fired = 0
	c.ix.SetEnabled(true)
}

// Fired returns how many times the trigger has fired
func (c *ResponseComponent) Fired() int { return c.fired }

// OnResponseFire implements interaction.ResponseTrigger
func (c *ResponseComponent) OnResponseFire() {
	ctx := c.world.Responses.CreateContext().Set(drs.VarVerb, string(interaction.VerbResponse))
	for _, k := range slices.Sorted(maps.Keys(c.cfg.Variables)) {
		ctx.Set(k, c.cfg.Variables[k])
	}
	c.world.Responses.Actor(c.entity).QueueSignal(c.cfg.Signal, ctx)
	c.fired++

	if c.cfg.IsSingleUseOnly {
		c.ix.SetEnabled(false)
	}
}
