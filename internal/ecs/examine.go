package ecs

import (
	"github.com/younwookim/interactor/internal/application/camera"
	"github.com/younwookim/interactor/internal/domain/interaction"
)

// ExamineComponent lets an actor take a closer look at an entity through
// the examine camera.
type ExamineComponent struct {
	component

	ix        *interaction.Interaction
	examining bool
	prevMode  camera.Mode
	prevOn    EntityID
}

// AttachExamine adds an ExamineComponent to id
func (w *World) AttachExamine(id EntityID) (*ExamineComponent, error) {
	c := &ExamineComponent{component: w.newComponent(id)}
	ix, err := c.bind(interaction.VerbExamine, c)
	if err != nil {
		return nil, err
	}
	c.ix = ix
	w.Examine[id] = c
	return c, nil
}

// Examining reports whether the examine camera is showing this entity
func (c *ExamineComponent) Examining() bool { return c.examining }

// OnExamineStart implements interaction.Examinable
func (c *ExamineComponent) OnExamineStart(interaction.Actor) {
	if c.examining {
		return
	}
	cams := c.world.Cameras
	c.prevMode, c.prevOn = cams.Mode(), cams.Attached()

	cams.AttachToEntity(c.entity)
	if err := cams.SetMode(camera.ModeExamine, "examine"); err != nil {
		c.log().WithError(err).Warn("examine camera unavailable")
		cams.AttachToEntity(c.prevOn)
		return
	}
	c.examining = true
}

// OnExamineComplete implements interaction.Examinable
func (c *ExamineComponent) OnExamineComplete(interaction.Actor) {
	c.restore("examine complete")
}

// OnExamineCancel implements interaction.Examinable
func (c *ExamineComponent) OnExamineCancel(interaction.Actor) {
	c.restore("examine cancel")
}

func (c *ExamineComponent) restore(reason string) {
	if !c.examining {
		return
	}
	c.examining = false
	cams := c.world.Cameras
	cams.AttachToEntity(c.prevOn)
	if err := cams.SetMode(c.prevMode, reason); err != nil {
		c.log().WithError(err).Warn("could not restore camera mode")
	}
}
