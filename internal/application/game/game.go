// Package game runs the ebiten loop and switches between scenes.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/interactor/internal/application/scene"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Current returns the running scene
func (g *Game) Current() scene.Scene { return g.current }

// Update implements ebiten.Game. A scene returning scene.ErrQuit is exited
// and the loop ends with ebiten.Termination.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		logger.Log.Info("Quit")
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Pause pauses the current scene if it supports pausing
func (g *Game) Pause() bool {
	p, ok := g.current.(scene.Pauser)
	if ok {
		p.Pause()
	}
	return ok
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game. Scenes implementing scene.Layouter choose
// their own size; the rest get the size the game was created with.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if l, ok := g.current.(scene.Layouter); ok {
		return l.Layout(outsideWidth, outsideHeight)
	}
	return g.screenW, g.screenH
}

// SetDT sets the fixed frame time passed to scenes
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
