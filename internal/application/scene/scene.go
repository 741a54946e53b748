// Package scene defines the screens the game loop switches between.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game cleanly. The current
// scene still gets its OnExit.
var ErrQuit = errors.New("scene: quit")

// Scene represents a game screen.
//
// Update returns the next scene to switch to, or nil to stay. dt is the
// fixed frame time in seconds.
type Scene interface {
	Update(dt float64) (next Scene, err error)
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()
	// OnExit runs when the scene is replaced or the game quits.
	OnExit()
}

// Layouter is implemented by scenes with their own logical screen size.
type Layouter interface {
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// Pauser is implemented by scenes that can be paused from outside, for
// example when the window loses focus.
type Pauser interface {
	Pause()
}
