package camera

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// Config holds camera tuning
type Config struct {
	ThirdPersonOffset entity.Vec3
	ExamineZoom       float32
	ExamineDuration   float32 // seconds
}

// DefaultConfig returns the default camera tuning
func DefaultConfig() Config {
	return Config{
		ThirdPersonOffset: entity.Vec3{Y: -2, Z: 4},
		ExamineZoom:       2.5,
		ExamineDuration:   0.35,
	}
}

// Manager owns one camera per mode and switches between them. Player
// cameras generally follow an actor; AttachToEntity changes which entity
// the active camera follows.
type Manager struct {
	cameras  map[Mode]Camera
	mode     Mode
	attached entity.EntityID
}

// NewManager creates a manager with first-person, third-person and examine
// cameras, starting in first-person mode.
func NewManager(cfg Config) *Manager {
	m := &Manager{cameras: make(map[Mode]Camera)}
	m.Register(NewFollowCamera(ModeFirstPerson, entity.Vec3{}))
	m.Register(NewFollowCamera(ModeThirdPerson, cfg.ThirdPersonOffset))
	m.Register(NewExamineCamera(cfg.ExamineZoom, cfg.ExamineDuration))
	m.mode = ModeFirstPerson
	m.cameras[m.mode].OnActivate()
	return m
}

// Register adds or replaces the camera for its mode
func (m *Manager) Register(c Camera) {
	m.cameras[c.Mode()] = c
}

// AttachToEntity makes the active camera follow id
func (m *Manager) AttachToEntity(id entity.EntityID) {
	m.attached = id
	if c := m.Camera(); c != nil {
		c.AttachToEntity(id)
	}
}

// Attached returns the entity the cameras follow
func (m *Manager) Attached() entity.EntityID {
	return m.attached
}

// Mode returns the current camera mode
func (m *Manager) Mode() Mode {
	return m.mode
}

// SetMode switches to the camera registered for mode. reason is logged.
func (m *Manager) SetMode(mode Mode, reason string) error {
	next, ok := m.cameras[mode]
	if !ok {
		return fmt.Errorf("no camera registered for mode %s", mode)
	}
	if mode == m.mode {
		return nil
	}

	logger.Log.WithFields(logrus.Fields{
		"from":   m.mode.String(),
		"to":     mode.String(),
		"reason": reason,
	}).Debug("camera mode changed")

	if cur := m.Camera(); cur != nil {
		cur.OnDeactivate()
	}
	m.mode = mode
	next.AttachToEntity(m.attached)
	next.OnActivate()
	return nil
}

// Camera returns the active camera, or nil in ModeNone
func (m *Manager) Camera() Camera {
	return m.cameras[m.mode]
}

// ViewOffset returns the extra local-space view offset of the active camera
func (m *Manager) ViewOffset() entity.Vec3 {
	if c := m.Camera(); c != nil {
		return c.ViewOffset()
	}
	return entity.Vec3{}
}

// Update advances the active camera
func (m *Manager) Update(dt float32) {
	if c := m.Camera(); c != nil {
		c.Update(dt)
	}
}
