package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/domain/signal"
)

func TestBus_QueuesUntilProcess(t *testing.T) {
	b := New()

	var received []signal.Signal
	b.Subscribe(func(sig signal.Signal) {
		received = append(received, sig)
	})

	b.Publish(signal.InteractStart{Entity: 3})
	b.Publish(signal.InteractTick{Entity: 3, DeltaPitch: 0.5, DeltaYaw: -1})

	assert.Empty(t, received, "signals are delivered on Process")
	assert.Equal(t, 2, b.Pending())

	b.Process()

	require.Len(t, received, 2)
	assert.Equal(t, "Interact Start", received[0].Name())
	assert.Equal(t, entity.EntityID(3), received[0].Source())

	tick, ok := received[1].(signal.InteractTick)
	require.True(t, ok)
	assert.Equal(t, 0.5, tick.DeltaPitch)
	assert.Equal(t, -1.0, tick.DeltaYaw)
	assert.Zero(t, b.Pending())
}

func TestBus_MultipleSubscribers(t *testing.T) {
	b := New()
	count := 0
	b.Subscribe(func(signal.Signal) { count++ })
	b.Subscribe(func(signal.Signal) { count++ })

	b.Publish(signal.AnimationExit{Entity: 1})
	b.Process()

	assert.Equal(t, 2, count)
}

func TestBus_WorldIsolation(t *testing.T) {
	a, b := New(), New()
	got := 0
	b.Subscribe(func(signal.Signal) { got++ })

	a.Publish(signal.InteractComplete{Entity: 1})
	a.Process()
	b.Process()

	assert.Zero(t, got)
	assert.NotNil(t, a.World())
}

func TestBus_SharedWorld(t *testing.T) {
	world := donburi.NewWorld()
	b := NewWithWorld(world)

	var direct []Event
	SignalEventType.Subscribe(world, func(_ donburi.World, ev Event) {
		direct = append(direct, ev)
	})

	b.Publish(signal.AnimationEnter{Entity: 4})
	b.Process()

	require.Len(t, direct, 1, "systems on the same world see the envelope")
	assert.Equal(t, entity.EntityID(4), direct[0].Signal.Source())
	assert.Equal(t, world, b.World())
}
