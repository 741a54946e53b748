// Package signal defines the notifications interaction-owning components
// push to listeners after a lifecycle call. The interaction itself never
// emits these.
package signal

import "github.com/younwookim/interactor/internal/domain/entity"

// Signal is anything published on the signal bus.
type Signal interface {
	// Name is the label listeners and logs use for the signal.
	Name() string
	// Source is the entity whose component emitted the signal.
	Source() entity.EntityID
}

// InteractStart is emitted when a generic interaction begins.
type InteractStart struct {
	Entity entity.EntityID
}

func (InteractStart) Name() string              { return "Interact Start" }
func (s InteractStart) Source() entity.EntityID { return s.Entity }

// InteractTick carries the actor's per-frame input deltas while held, so
// scripted entities can be driven interactively (valves, cranks).
type InteractTick struct {
	Entity     entity.EntityID
	DeltaPitch float64
	DeltaYaw   float64
}

func (InteractTick) Name() string              { return "Interact Tick" }
func (s InteractTick) Source() entity.EntityID { return s.Entity }

// InteractComplete is emitted when a generic interaction ends normally.
type InteractComplete struct {
	Entity entity.EntityID
}

func (InteractComplete) Name() string              { return "Interact Complete" }
func (s InteractComplete) Source() entity.EntityID { return s.Entity }

// AnimationEnter is emitted when the interaction animation starts playing.
type AnimationEnter struct {
	Entity entity.EntityID
}

func (AnimationEnter) Name() string              { return "Animation Enter" }
func (s AnimationEnter) Source() entity.EntityID { return s.Entity }

// AnimationFail is emitted when the interaction animation could not play.
type AnimationFail struct {
	Entity entity.EntityID
	Reason string
}

func (AnimationFail) Name() string              { return "Animation Fail" }
func (s AnimationFail) Source() entity.EntityID { return s.Entity }

// AnimationExit is emitted when the interaction animation finishes.
type AnimationExit struct {
	Entity entity.EntityID
}

func (AnimationExit) Name() string              { return "Animation Exit" }
func (s AnimationExit) Source() entity.EntityID { return s.Entity }

// AnimationEvent forwards a named event embedded in the interaction animation.
type AnimationEvent struct {
	Entity          entity.EntityID
	EventName       string
	NameCRC32       uint32 // CRC32 of the lowercased event name
	CustomParameter string
	Time            float64
	EndTime         float64
	BonePathName    string
	BoneDirection   entity.Vec3
	BoneOffset      entity.Vec3
}

func (AnimationEvent) Name() string              { return "Animation Event" }
func (s AnimationEvent) Source() entity.EntityID { return s.Entity }
