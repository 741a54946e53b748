package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/interactor/internal/application/camera"
	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/domain/interaction"
	"github.com/younwookim/interactor/internal/infrastructure/config"
)

func testLevel() *config.LevelConfig {
	return &config.LevelConfig{
		ID: "test",
		Layout: []string{
			"#####",
			"#...#",
			"#...#",
			"#####",
		},
		TileMapping: map[string]config.TileMappingConfig{
			"#": {Type: "wall", Solid: true},
			".": {Type: "empty"},
		},
		PlayerSpawn: config.PositionConfig{X: 1, Y: 1},
		Entities: []config.EntityConfig{
			{Name: "door", X: 2, Y: 1, Lockable: &config.LockableSpec{Locked: true, Key: "key"}, Door: &config.DoorSpec{}},
			{Name: "key", X: 1, Y: 2, Item: &config.ItemSpec{Description: "A key."}},
			{Name: "lever", X: 3, Y: 2, Interact: &config.InteractSpec{QueueSignal: "lever_pulled"}},
			{Name: "cat", X: 3, Y: 1, Pet: &config.PetSpec{Owner: "player"}},
		},
		Links: []config.LinkConfig{{From: "lever", To: "door"}},
	}
}

func TestLoadRoom(t *testing.T) {
	room := LoadRoom(testLevel(), 16)

	require.NotNil(t, room)
	assert.Equal(t, 5, room.Width)
	assert.Equal(t, 4, room.Height)
	assert.Equal(t, 16, room.TileSize)
	assert.Equal(t, 1, room.SpawnX)
	assert.Equal(t, 1, room.SpawnY)
	assert.Equal(t, entity.TileWall, room.GetTile(0, 0).Type)
	assert.True(t, room.IsSolidAt(0, 0))
	assert.False(t, room.IsSolidAt(1, 1))
}

func TestLoadRoom_UnmappedIsFloor(t *testing.T) {
	cfg := &config.LevelConfig{Layout: []string{"?#"}, TileMapping: map[string]config.TileMappingConfig{
		"#": {Type: "wall", Solid: true},
	}}

	room := LoadRoom(cfg, 8)

	assert.Equal(t, entity.Tile{}, room.GetTile(0, 0))
	assert.True(t, room.IsSolidAt(1, 0))
}

func TestBuildWorld(t *testing.T) {
	settings := &config.SettingsConfig{
		Display: config.DisplayConfig{TileSize: 8},
		Camera:  config.CameraConfig{ExamineZoom: 4},
		Door:    config.DoorConfig{Duration: 1},
	}

	w, err := BuildWorld(testLevel(), settings)
	require.NoError(t, err)

	require.NotNil(t, w.Player())
	assert.Equal(t, PlayerName, w.Name[w.PlayerID])
	assert.Equal(t, w.PlayerID, w.Cameras.Attached())
	assert.Equal(t, camera.ModeFirstPerson, w.Cameras.Mode())

	door, ok := w.FindByName("door")
	require.True(t, ok)
	require.Contains(t, w.Door, door)
	assert.True(t, w.Door[door].Locked())
	assert.Equal(t, "key", w.Lockable[door].KeyName())

	lever, _ := w.FindByName("lever")
	assert.Equal(t, []entity.EntityID{door}, w.LinkedEntities(lever))

	cat, _ := w.FindByName("cat")
	require.Contains(t, w.Pet, cat)

	key, _ := w.FindByName("key")
	_, ok = w.Interactor[key].Lookup(interaction.VerbItemPickup)
	assert.True(t, ok)
}

func TestBuildWorld_NilSettings(t *testing.T) {
	w, err := BuildWorld(testLevel(), nil)
	require.NoError(t, err)
	assert.Equal(t, camera.DefaultConfig().ExamineZoom, CameraConfig(nil).ExamineZoom)
	assert.NotNil(t, w.Room)
}

func TestBuildWorld_Errors(t *testing.T) {
	t.Run("door without lockable", func(t *testing.T) {
		level := testLevel()
		level.Entities[0].Lockable = nil
		_, err := BuildWorld(level, nil)
		assert.ErrorContains(t, err, "door")
	})

	t.Run("unknown pet owner", func(t *testing.T) {
		level := testLevel()
		level.Entities[3].Pet.Owner = "nobody"
		_, err := BuildWorld(level, nil)
		assert.ErrorContains(t, err, "nobody")
	})

	t.Run("unknown link", func(t *testing.T) {
		level := testLevel()
		level.Links = append(level.Links, config.LinkConfig{From: "lever", To: "ghost"})
		_, err := BuildWorld(level, nil)
		assert.ErrorContains(t, err, "ghost")
	})
}

func TestBuildWorld_DemoLevel(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	gc, err := loader.LoadAll()
	require.NoError(t, err)
	level, err := loader.LoadLevel("demo")
	require.NoError(t, err)

	w, err := BuildWorld(level, gc.Settings)
	require.NoError(t, err)

	assert.Equal(t, ecsPos(3, 10), w.Position[w.PlayerID])
	for _, e := range level.Entities {
		_, ok := w.FindByName(e.Name)
		assert.True(t, ok, e.Name)
	}
}
