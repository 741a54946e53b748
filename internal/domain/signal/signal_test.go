package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/interactor/internal/domain/entity"
)

func TestSignals_NameAndSource(t *testing.T) {
	const id = entity.EntityID(7)

	tests := []struct {
		sig  Signal
		name string
	}{
		{InteractStart{Entity: id}, "Interact Start"},
		{InteractTick{Entity: id, DeltaPitch: 1}, "Interact Tick"},
		{InteractComplete{Entity: id}, "Interact Complete"},
		{AnimationEnter{Entity: id}, "Animation Enter"},
		{AnimationFail{Entity: id, Reason: "interrupted"}, "Animation Fail"},
		{AnimationExit{Entity: id}, "Animation Exit"},
		{AnimationEvent{Entity: id, EventName: "grab"}, "Animation Event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.sig.Name())
			assert.Equal(t, id, tt.sig.Source())
		})
	}
}
