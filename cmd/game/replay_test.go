package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/interactor/internal/application/replay"
	"github.com/younwookim/interactor/internal/application/scene/playing"
	"github.com/younwookim/interactor/internal/application/system"
	"github.com/younwookim/interactor/internal/ecs"
	"github.com/younwookim/interactor/internal/infrastructure/config"
)

func loadDemo(t *testing.T) (*config.Loader, *config.GameConfig, *config.LevelConfig) {
	t.Helper()
	loader := config.NewLoader("configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	level, err := loader.LoadLevel("demo")
	require.NoError(t, err)
	return loader, cfg, level
}

func walk(frames int, f replay.FrameInput) []replay.FrameInput {
	out := make([]replay.FrameInput, 0, frames*2)
	for i := 0; i < frames; i++ {
		out = append(out, f, replay.FrameInput{})
	}
	for i := range out {
		out[i].F = i
	}
	return out
}

func TestReplayIdlePlayer(t *testing.T) {
	_, cfg, level := loadDemo(t)

	snap, err := simulate(cfg, level, replay.NewReplayer(replay.CreateTestReplayData(120, "demo")))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Player.X)
	assert.Equal(t, 10, snap.Player.Y)
	assert.Empty(t, snap.Player.Inventory)
	assert.True(t, snap.Locks["cellar door"])
}

func TestReplayWithMovement(t *testing.T) {
	_, cfg, level := loadDemo(t)
	data := replay.ReplayData{Version: "1.0", Level: "demo", Frames: walk(6, replay.FrameInput{D: true})}

	snap, err := simulate(cfg, level, replay.NewReplayer(data))
	require.NoError(t, err)

	assert.Equal(t, 3, snap.Player.X)
	assert.Equal(t, 13, snap.Player.Y, "the bottom wall stops the player")

	player := ecs.Position{X: snap.Player.X, Y: snap.Player.Y}
	cat := snap.Pets["cat"]
	assert.LessOrEqual(t, player.DistanceTo(ecs.Position{X: cat.X, Y: cat.Y}), 1, "the cat follows")
}

func TestReplayDeterminism(t *testing.T) {
	_, cfg, level := loadDemo(t)
	frames := append(walk(2, replay.FrameInput{U: true}), walk(3, replay.FrameInput{R: true})...)
	frames = append(frames, replay.FrameInput{IP: true, IH: true}, replay.FrameInput{IH: true}, replay.FrameInput{IR: true})
	data := replay.ReplayData{Version: "1.0", Level: "demo", Frames: frames}

	first, err := simulate(cfg, level, replay.NewReplayer(data))
	require.NoError(t, err)
	second, err := simulate(cfg, level, replay.NewReplayer(data))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRecorderAndReplayer(t *testing.T) {
	_, cfg, level := loadDemo(t)
	inputs := []system.InputState{
		{Up: true},
		{},
		{Right: true},
		{InteractPressed: true, InteractHeld: true},
		{InteractReleased: true},
	}

	direct, err := playing.New(cfg, level, nil, "")
	require.NoError(t, err)
	recorder := playing.NewRecorder("demo")
	for _, in := range inputs {
		recorder.RecordFrame(in)
		direct.Step(in)
	}
	require.Equal(t, len(inputs), recorder.FrameCount())

	replayed, err := simulate(cfg, level, replay.NewReplayer(recorder.GetData()))
	require.NoError(t, err)

	assert.Equal(t, ecs.Capture(direct.World(), "demo"), replayed)
}

func TestRunReplay(t *testing.T) {
	loader, cfg, _ := loadDemo(t)
	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","level":"demo","frames":[{"f":0,"u":true}]}`), 0o644))

	assert.NoError(t, runReplay(loader, cfg, path))
}

func TestRunReplay_UnknownLevel(t *testing.T) {
	loader, cfg, _ := loadDemo(t)
	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","level":"nowhere","frames":[]}`), 0o644))

	assert.Error(t, runReplay(loader, cfg, path))
}

func TestEmbeddedConfigs(t *testing.T) {
	_, err := configFS.ReadFile("configs/settings.json")
	assert.NoError(t, err)
	_, err = configFS.ReadFile("configs/levels/demo.yaml")
	assert.NoError(t, err)
}
