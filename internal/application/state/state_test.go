package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMenu, "Menu"},
		{StateLoading, "Loading"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateExamining, "Examining"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Gates(t *testing.T) {
	tests := []struct {
		state GameState
		input bool
		save  bool
	}{
		{StateMenu, false, false},
		{StateLoading, false, false},
		{StatePlaying, true, true},
		{StatePaused, false, false},
		{StateExamining, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.input, tt.state.AcceptsInput())
			assert.Equal(t, tt.save, tt.state.CanSave())
		})
	}
}

func TestGameState_TogglePause(t *testing.T) {
	assert.Equal(t, StatePaused, StatePlaying.TogglePause())
	assert.Equal(t, StatePaused, StateExamining.TogglePause())
	assert.Equal(t, StatePlaying, StatePaused.TogglePause())
	assert.Equal(t, StateLoading, StateLoading.TogglePause(), "nothing to pause yet")
}
