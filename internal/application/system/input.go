package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/interactor/internal/domain/entity"
)

// InputSystem reads the keyboard and mouse once per frame
type InputSystem struct {
	lastX, lastY int
	seen         bool
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state. Movement fields are edge
// triggered since the player walks one tile per press.
type InputState struct {
	Left             bool
	Right            bool
	Up               bool
	Down             bool
	InteractPressed  bool
	InteractHeld     bool
	InteractReleased bool
	Cancel           bool
	NextVerb         bool
	PrevVerb         bool
	Save             bool
	Load             bool
	MouseDX          int
	MouseDY          int
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	dx, dy := 0, 0
	if s.seen {
		dx, dy = mx-s.lastX, my-s.lastY
	}
	s.lastX, s.lastY, s.seen = mx, my, true

	return InputState{
		Left:             inpututil.IsKeyJustPressed(ebiten.KeyA) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		Right:            inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
		Up:               inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		Down:             inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyArrowDown),
		InteractPressed:  inpututil.IsKeyJustPressed(ebiten.KeyE),
		InteractHeld:     ebiten.IsKeyPressed(ebiten.KeyE),
		InteractReleased: inpututil.IsKeyJustReleased(ebiten.KeyE),
		Cancel:           inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		NextVerb:         inpututil.IsKeyJustPressed(ebiten.KeyTab),
		PrevVerb:         inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Save:             inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Load:             inpututil.IsKeyJustPressed(ebiten.KeyF9),
		MouseDX:          dx,
		MouseDY:          dy,
	}
}

// Intents converts one frame of input into intents for the player
func (in InputState) Intents(id entity.EntityID) []Intent {
	var out []Intent

	dx, dy := 0, 0
	switch {
	case in.Left:
		dx = -1
	case in.Right:
		dx = 1
	case in.Up:
		dy = -1
	case in.Down:
		dy = 1
	}
	if dx != 0 || dy != 0 {
		out = append(out, MoveIntent{EntityID: id, DX: dx, DY: dy})
	}
	if in.MouseDX != 0 || in.MouseDY != 0 {
		out = append(out, LookIntent{EntityID: id, DX: in.MouseDX, DY: in.MouseDY})
	}
	if in.NextVerb {
		out = append(out, SelectVerbIntent{EntityID: id, Step: 1})
	}
	if in.PrevVerb {
		out = append(out, SelectVerbIntent{EntityID: id, Step: -1})
	}

	switch {
	case in.Cancel:
		out = append(out, InteractIntent{EntityID: id, Phase: PhaseCancel})
	case in.InteractPressed:
		out = append(out, InteractIntent{EntityID: id, Phase: PhasePress})
	case in.InteractReleased:
		out = append(out, InteractIntent{EntityID: id, Phase: PhaseRelease})
	case in.InteractHeld:
		out = append(out, InteractIntent{EntityID: id, Phase: PhaseHold})
	}
	return out
}
