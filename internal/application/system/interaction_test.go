package system

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/domain/interaction"
	"github.com/younwookim/interactor/internal/domain/signal"
	"github.com/younwookim/interactor/internal/ecs"
	"github.com/younwookim/interactor/internal/infrastructure/config"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

func ecsPos(x, y int) ecs.Position { return ecs.Position{X: x, Y: y} }

func newTestSystem(t *testing.T, level *config.LevelConfig, hold int) (*ecs.World, *InteractionSystem) {
	t.Helper()
	w, err := BuildWorld(level, nil)
	require.NoError(t, err)
	return w, NewInteractionSystem(w, config.InteractionConfig{Range: 1, HoldThreshold: hold, LookScale: 0.5})
}

func labels(offers []Offer) []string {
	var out []string
	for _, o := range offers {
		out = append(out, o.Name+":"+string(o.Entry.Interaction.Verb()))
	}
	return out
}

// choose highlights verb on the entity called name.
func choose(t *testing.T, s *InteractionSystem, name string, verb interaction.Verb) {
	t.Helper()
	for i, o := range s.Offers() {
		if o.Name == name && o.Entry.Interaction.Verb() == verb {
			s.Reset()
			s.Handle(SelectVerbIntent{Step: i})
			return
		}
	}
	t.Fatalf("%s does not offer %s", name, verb)
}

func press(s *InteractionSystem, id entity.EntityID, phases ...Phase) {
	for _, p := range phases {
		s.Apply([]Intent{InteractIntent{EntityID: id, Phase: p}})
	}
}

func TestInteractionSystem_Offers(t *testing.T) {
	_, s := newTestSystem(t, testLevel(), 0)

	// Player at (1,1) faces down onto the key; the door is beside them and
	// the lever and cat are two tiles away.
	assert.Equal(t, []string{
		"key:" + string(interaction.VerbItemInspect),
		"key:" + string(interaction.VerbItemPickup),
		"door:" + string(interaction.VerbInteract),
		"door:" + string(interaction.VerbLockableUnlock),
	}, labels(s.Offers()))

	sel, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "@"+string(interaction.VerbItemInspect), sel.Label())
}

func TestInteractionSystem_SelectWraps(t *testing.T) {
	_, s := newTestSystem(t, testLevel(), 0)

	s.Handle(SelectVerbIntent{Step: -1})
	assert.Equal(t, 3, s.SelectedIndex())
	s.Handle(SelectVerbIntent{Step: 2})
	assert.Equal(t, 1, s.SelectedIndex())
}

func TestInteractionSystem_PickupThenUnlock(t *testing.T) {
	w, s := newTestSystem(t, testLevel(), 0)
	player := w.PlayerID
	key, _ := w.FindByName("key")
	door, _ := w.FindByName("door")

	choose(t, s, "key", interaction.VerbItemPickup)
	press(s, player, PhasePress, PhaseRelease)
	require.True(t, w.Player().Holds(key))
	assert.Equal(t, 0, s.SelectedIndex(), "selection resets after use")

	offers := labels(s.Offers())
	assert.Equal(t, "key:"+string(interaction.VerbItemInspect), offers[0], "carried items come first")
	assert.NotContains(t, offers, "key:"+string(interaction.VerbItemPickup))

	choose(t, s, "door", interaction.VerbLockableUnlock)
	press(s, player, PhasePress, PhaseRelease)
	assert.False(t, w.Door[door].Locked())
}

func TestInteractionSystem_HoldThreshold(t *testing.T) {
	level := &config.LevelConfig{
		ID:          "hold",
		Layout:      []string{"...", "...", "..."},
		PlayerSpawn: config.PositionConfig{X: 1, Y: 0},
		Entities:    []config.EntityConfig{{Name: "lever", X: 1, Y: 1, Interact: &config.InteractSpec{}}},
	}
	w, s := newTestSystem(t, level, 2)

	var got []string
	w.Signals.Subscribe(func(sig signal.Signal) { got = append(got, sig.Name()) })

	press(s, w.PlayerID, PhasePress, PhaseHold, PhaseHold, PhaseHold, PhaseRelease)
	w.Signals.Process()

	assert.Equal(t, []string{
		"Interact Start",
		"Interact Tick",
		"Interact Tick",
		"Interact Complete",
	}, got, "the first held frame is below the threshold")
	_, active := s.Active()
	assert.False(t, active)
}

func TestInteractionSystem_CancelAndBusy(t *testing.T) {
	level := &config.LevelConfig{
		ID:          "cancel",
		Layout:      []string{"...", "...", "..."},
		PlayerSpawn: config.PositionConfig{X: 1, Y: 0},
		Entities:    []config.EntityConfig{{Name: "lever", X: 1, Y: 1, Interact: &config.InteractSpec{}}},
	}
	w, s := newTestSystem(t, level, 0)
	player := w.PlayerID

	press(s, player, PhasePress)
	active, ok := s.Active()
	require.True(t, ok)
	assert.Equal(t, "lever", active.Name)

	s.Apply([]Intent{MoveIntent{EntityID: player, DX: 1}})
	assert.Equal(t, ecsPos(1, 0), w.Position[player], "no walking mid interaction")

	press(s, player, PhaseCancel)
	_, ok = s.Active()
	assert.False(t, ok)
	assert.False(t, w.Player().Busy(), "cancel hands control back")

	press(s, player, PhasePress, PhaseRelease)
	assert.True(t, w.Player().Busy(), "interaction animation still running")
	press(s, player, PhasePress)
	_, ok = s.Active()
	assert.False(t, ok, "a busy actor cannot start another interaction")
}

func TestInteractionSystem_LookDeltas(t *testing.T) {
	w, s := newTestSystem(t, testLevel(), 0)

	s.Apply([]Intent{LookIntent{EntityID: w.PlayerID, DX: 4, DY: -2}})
	assert.Equal(t, -1.0, w.Player().PitchDelta())
	assert.Equal(t, 2.0, w.Player().YawDelta())

	s.Apply(nil)
	assert.Zero(t, w.Player().PitchDelta(), "deltas last one frame")
}

func TestInteractionSystem_MoveResetsSelection(t *testing.T) {
	w, s := newTestSystem(t, testLevel(), 0)

	s.Handle(SelectVerbIntent{Step: 1})
	s.Apply([]Intent{MoveIntent{EntityID: w.PlayerID, DY: 1}})

	assert.Equal(t, ecsPos(1, 2), w.Position[w.PlayerID])
	assert.Equal(t, 0, s.SelectedIndex())
}

func TestInteractionSystem_DroppedReleaseNamesEntity(t *testing.T) {
	level := &config.LevelConfig{
		ID:          "dropped",
		Layout:      []string{"...", "...", "..."},
		PlayerSpawn: config.PositionConfig{X: 1, Y: 0},
		Entities:    []config.EntityConfig{{Name: "lever", X: 1, Y: 1, Interact: &config.InteractSpec{}}},
	}
	w, s := newTestSystem(t, level, 0)
	lever, _ := w.FindByName("lever")

	hook := test.NewLocal(logger.Log)
	level0 := logger.Log.GetLevel()
	logger.Log.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logger.Log.SetLevel(level0)
		hook.Reset()
	})

	press(s, w.PlayerID, PhasePress)
	require.NoError(t, w.Interactor[lever].Cancel(w.Player()))

	s.Handle(InteractIntent{EntityID: w.PlayerID, Phase: PhaseRelease})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Interaction phase dropped", entry.Message)
	assert.Equal(t, uint64(lever), entry.Data["entity"])
	assert.Equal(t, "release", entry.Data["phase"])
	_, active := s.Active()
	assert.False(t, active)
}
