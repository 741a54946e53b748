// Package animation provides the actor action queue. Actions are timed
// placeholders for animation clips: they report enter / event / exit (or
// fail) to listeners while a tween advances their playback position.
package animation

import (
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/interactor/internal/domain/entity"
)

// Failure describes why an action did not play to the end
type Failure int

const (
	FailureCancelled Failure = iota
	FailureInterrupted
)

// String returns the failure name
func (f Failure) String() string {
	switch f {
	case FailureCancelled:
		return "Cancelled"
	case FailureInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}

// Event is a named marker inside an action, fired when playback passes Time
// (seconds from the start of the action).
type Event struct {
	Name            string
	CustomParameter string
	Time            float32
	EndTime         float32
	BonePathName    string
	BoneDirection   entity.Vec3
	BoneOffset      entity.Vec3
}

// Listener receives action lifecycle callbacks
type Listener interface {
	OnActionAnimationEnter()
	OnActionAnimationFail(reason Failure)
	OnActionAnimationExit()
	OnActionAnimationEvent(ev Event)
}

type actionState int

const (
	statePending actionState = iota
	stateRunning
	stateExited
	stateFailed
)

// InteractionActionName is the fragment name used for interaction actions.
const InteractionActionName = "Interaction"

// DefaultInteractionDuration is how long an interaction action plays (seconds).
const DefaultInteractionDuration = 0.5

// Action is a single queued animation action
type Action struct {
	name      string
	duration  float32
	events    []Event
	nextEvent int
	listeners []Listener

	tween    *gween.Tween
	position float32
	state    actionState
}

// NewAction creates an action lasting duration seconds.
func NewAction(name string, duration float32, events ...Event) *Action {
	evs := append([]Event(nil), events...)
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].Time < evs[j].Time })
	return &Action{
		name:     name,
		duration: duration,
		events:   evs,
	}
}

// NewInteractionAction creates the standard interaction action
func NewInteractionAction(events ...Event) *Action {
	return NewAction(InteractionActionName, DefaultInteractionDuration, events...)
}

// Name returns the action name
func (a *Action) Name() string { return a.name }

// Duration returns the action length in seconds
func (a *Action) Duration() float32 { return a.duration }

// Position returns the playback position in seconds
func (a *Action) Position() float32 { return a.position }

// Running reports whether the action has entered and not yet finished
func (a *Action) Running() bool { return a.state == stateRunning }

// Finished reports whether the action exited or failed
func (a *Action) Finished() bool { return a.state == stateExited || a.state == stateFailed }

// AddEventListener registers l for this action's callbacks
func (a *Action) AddEventListener(l Listener) {
	a.listeners = append(a.listeners, l)
}

func (a *Action) enter() {
	a.state = stateRunning
	if a.duration > 0 {
		a.tween = gween.New(0, a.duration, a.duration, ease.Linear)
	}
	for _, l := range a.listeners {
		l.OnActionAnimationEnter()
	}
}

// advance moves playback forward by dt and returns true once finished.
func (a *Action) advance(dt float32) bool {
	finished := true
	if a.tween != nil {
		a.position, finished = a.tween.Update(dt)
	} else {
		a.position = a.duration
	}

	for a.nextEvent < len(a.events) && a.events[a.nextEvent].Time <= a.position {
		ev := a.events[a.nextEvent]
		a.nextEvent++
		for _, l := range a.listeners {
			l.OnActionAnimationEvent(ev)
		}
	}

	if finished {
		a.state = stateExited
		for _, l := range a.listeners {
			l.OnActionAnimationExit()
		}
	}
	return finished
}

func (a *Action) fail(reason Failure) {
	a.state = stateFailed
	for _, l := range a.listeners {
		l.OnActionAnimationFail(reason)
	}
}
