package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadSettings(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadSettings()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 16, cfg.Display.TileSize)
	assert.Equal(t, 1, cfg.Interaction.Range)
	assert.Equal(t, 12, cfg.Interaction.HoldThreshold)
	assert.Equal(t, 2.5, cfg.Camera.ExamineZoom)
	assert.Equal(t, 0.4, cfg.Door.Duration)
	assert.Equal(t, "interactor", cfg.Save.AppName)
}

func TestLoader_LoadStrings(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	s, err := loader.LoadStrings()
	require.NoError(t, err)

	assert.Equal(t, "Open", s.Lookup("@interaction_openable_open"))
	assert.Equal(t, "Pick up", s.Lookup("@interaction_pickup"))
	assert.Equal(t, "made_up_verb", s.Lookup("@made_up_verb"), "missing keys fall back to the verb")
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadLevel("demo")
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.ID)
	assert.Len(t, cfg.Layout, 15)
	assert.Equal(t, 3, cfg.PlayerSpawn.X)
	assert.Equal(t, 10, cfg.PlayerSpawn.Y)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, "wall", wall.Type)

	var door *EntityConfig
	for i := range cfg.Entities {
		if cfg.Entities[i].Name == "cellar door" {
			door = &cfg.Entities[i]
		}
	}
	require.NotNil(t, door)
	require.NotNil(t, door.Door)
	require.NotNil(t, door.Lockable)
	assert.True(t, door.Lockable.Locked)
	assert.Equal(t, "brass key", door.Lockable.Key)

	assert.Contains(t, cfg.Links, LinkConfig{From: "lever", To: "cellar door"})
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Settings)
	assert.NotEmpty(t, cfg.Strings)
}

func TestLoader_LoadLevelInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty layout", "id: x\n"},
		{"ragged layout", "id: x\nlayout: ['###', '##']\n"},
		{"door without lock", "id: x\nlayout: ['#']\nentities:\n  - {name: d, door: {open: false}}\n"},
		{"duplicate names", "id: x\nlayout: ['#']\nentities:\n  - {name: a}\n  - {name: a}\n"},
		{"unknown link", "id: x\nlayout: ['#']\nentities:\n  - {name: a}\nlinks:\n  - {from: a, to: b}\n"},
		{"unknown pet owner", "id: x\nlayout: ['#']\nentities:\n  - {name: cat, pet: {owner: nobody}}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"levels/bad.yaml": {Data: []byte(tt.yaml)}}
			_, err := NewFSLoader(fsys, ".").LoadLevel("bad")
			assert.Error(t, err)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, ".")

	_, err := loader.LoadSettings()
	assert.ErrorContains(t, err, "settings.json")
}
