// Package state names the phases a play scene moves through.
package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StateLoading
	StatePlaying
	StatePaused
	// StateExamining is play with the camera zoomed onto an examined entity.
	StateExamining
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateExamining:
		return "Examining"
	default:
		return "Unknown"
	}
}

// AcceptsInput reports whether player intents reach the world
func (s GameState) AcceptsInput() bool {
	return s == StatePlaying || s == StateExamining
}

// CanSave reports whether the world may be snapshotted. An examine keeps an
// interaction open, and snapshots never hold one.
func (s GameState) CanSave() bool {
	return s == StatePlaying
}

// TogglePause pauses a running state and resumes a paused one. Other states
// are returned unchanged.
func (s GameState) TogglePause() GameState {
	switch {
	case s == StatePaused:
		return StatePlaying
	case s.AcceptsInput():
		return StatePaused
	default:
		return s
	}
}
