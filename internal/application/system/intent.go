package system

import "github.com/younwookim/interactor/internal/domain/entity"

// Intent represents an action that an entity wants to perform
type Intent interface {
	isIntent()
}

// MoveIntent represents a one tile step
type MoveIntent struct {
	EntityID entity.EntityID
	DX, DY   int
}

func (MoveIntent) isIntent() {}

// LookIntent carries mouse movement in pixels
type LookIntent struct {
	EntityID entity.EntityID
	DX, DY   int
}

func (LookIntent) isIntent() {}

// SelectVerbIntent cycles the highlighted verb forward (+1) or back (-1)
type SelectVerbIntent struct {
	EntityID entity.EntityID
	Step     int
}

func (SelectVerbIntent) isIntent() {}

// Phase is the stage of an interact button press
type Phase int

const (
	PhasePress Phase = iota
	PhaseHold
	PhaseRelease
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhasePress:
		return "press"
	case PhaseHold:
		return "hold"
	case PhaseRelease:
		return "release"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// InteractIntent drives the selected interaction through its lifecycle
type InteractIntent struct {
	EntityID entity.EntityID
	Phase    Phase
}

func (InteractIntent) isIntent() {}
