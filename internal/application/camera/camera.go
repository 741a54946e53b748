// Package camera manages which camera is active and what it follows.
package camera

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/interactor/internal/domain/entity"
)

// Mode identifies a camera behaviour
type Mode int

const (
	ModeNone Mode = iota
	ModeFirstPerson
	ModeThirdPerson
	ModeExamine
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeFirstPerson:
		return "FirstPerson"
	case ModeThirdPerson:
		return "ThirdPerson"
	case ModeExamine:
		return "Examine"
	default:
		return "Unknown"
	}
}

// Camera is one camera behaviour owned by the Manager.
type Camera interface {
	Mode() Mode
	AttachToEntity(id entity.EntityID)
	Target() entity.EntityID
	OnActivate()
	OnDeactivate()
	Update(dt float32)
	Zoom() float64
	// ViewOffset is an extra local-space offset applied to the view.
	ViewOffset() entity.Vec3
}

// FollowCamera tracks its target at a fixed offset and zoom.
type FollowCamera struct {
	mode   Mode
	target entity.EntityID
	offset entity.Vec3
	zoom   float64
}

// NewFollowCamera creates a follow camera for mode
func NewFollowCamera(mode Mode, offset entity.Vec3) *FollowCamera {
	return &FollowCamera{mode: mode, offset: offset, zoom: 1}
}

func (c *FollowCamera) Mode() Mode                        { return c.mode }
func (c *FollowCamera) AttachToEntity(id entity.EntityID) { c.target = id }
func (c *FollowCamera) Target() entity.EntityID           { return c.target }
func (c *FollowCamera) OnActivate()                       {}
func (c *FollowCamera) OnDeactivate()                     {}
func (c *FollowCamera) Update(float32)                    {}
func (c *FollowCamera) Zoom() float64                     { return c.zoom }
func (c *FollowCamera) ViewOffset() entity.Vec3           { return c.offset }

// ExamineCamera zooms in on its target over a short tween when activated.
type ExamineCamera struct {
	target   entity.EntityID
	maxZoom  float32
	duration float32

	tween *gween.Tween
	zoom  float32
}

// NewExamineCamera creates an examine camera that eases to maxZoom over
// duration seconds.
func NewExamineCamera(maxZoom, duration float32) *ExamineCamera {
	return &ExamineCamera{maxZoom: maxZoom, duration: duration, zoom: 1}
}

func (c *ExamineCamera) Mode() Mode                        { return ModeExamine }
func (c *ExamineCamera) AttachToEntity(id entity.EntityID) { c.target = id }
func (c *ExamineCamera) Target() entity.EntityID           { return c.target }

// OnActivate restarts the zoom-in from 1x
func (c *ExamineCamera) OnActivate() {
	c.zoom = 1
	c.tween = gween.New(1, c.maxZoom, c.duration, ease.OutCubic)
}

// OnDeactivate drops any running zoom
func (c *ExamineCamera) OnDeactivate() {
	c.tween = nil
	c.zoom = 1
}

// Update advances the zoom tween
func (c *ExamineCamera) Update(dt float32) {
	if c.tween == nil {
		return
	}
	var done bool
	c.zoom, done = c.tween.Update(dt)
	if done {
		c.tween = nil
	}
}

func (c *ExamineCamera) Zoom() float64 { return float64(c.zoom) }

// ViewOffset pulls the view toward the target as the zoom grows.
func (c *ExamineCamera) ViewOffset() entity.Vec3 {
	return entity.Vec3{Z: -float64(c.zoom - 1)}
}
