package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/interactor/internal/domain/entity"
)

func TestInputState_Intents(t *testing.T) {
	id := entity.EntityID(7)

	tests := []struct {
		name string
		in   InputState
		want []Intent
	}{
		{"idle", InputState{}, nil},
		{"step left", InputState{Left: true}, []Intent{MoveIntent{EntityID: id, DX: -1}}},
		{"one axis per frame", InputState{Up: true, Right: true}, []Intent{MoveIntent{EntityID: id, DX: 1}}},
		{"mouse look", InputState{MouseDX: 3, MouseDY: -2}, []Intent{LookIntent{EntityID: id, DX: 3, DY: -2}}},
		{"cycle verbs", InputState{NextVerb: true}, []Intent{SelectVerbIntent{EntityID: id, Step: 1}}},
		{"press", InputState{InteractPressed: true, InteractHeld: true}, []Intent{InteractIntent{EntityID: id, Phase: PhasePress}}},
		{"hold", InputState{InteractHeld: true}, []Intent{InteractIntent{EntityID: id, Phase: PhaseHold}}},
		{"release", InputState{InteractReleased: true}, []Intent{InteractIntent{EntityID: id, Phase: PhaseRelease}}},
		{"cancel wins", InputState{Cancel: true, InteractHeld: true}, []Intent{InteractIntent{EntityID: id, Phase: PhaseCancel}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Intents(id))
		})
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "press", PhasePress.String())
	assert.Equal(t, "hold", PhaseHold.String())
	assert.Equal(t, "release", PhaseRelease.String())
	assert.Equal(t, "cancel", PhaseCancel.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
