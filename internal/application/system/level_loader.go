package system

import (
	"fmt"

	"github.com/younwookim/interactor/internal/application/camera"
	"github.com/younwookim/interactor/internal/domain/entity"
	"github.com/younwookim/interactor/internal/ecs"
	"github.com/younwookim/interactor/internal/infrastructure/config"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// PlayerName is the name given to the player entity
const PlayerName = "player"

// LoadRoom converts a level layout into a Room. Unmapped characters are
// empty floor.
func LoadRoom(cfg *config.LevelConfig, tileSize int) *entity.Room {
	height := len(cfg.Layout)
	width := 0
	if height > 0 {
		width = len(cfg.Layout[0])
	}

	tiles := make([][]entity.Tile, height)
	for y, row := range cfg.Layout {
		tiles[y] = make([]entity.Tile, width)
		for x, char := range row {
			if x >= width {
				break
			}
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				continue
			}

			tileType := entity.TileEmpty
			if mapping.Type == "wall" {
				tileType = entity.TileWall
			}
			tiles[y][x] = entity.Tile{Type: tileType, Solid: mapping.Solid}
		}
	}

	return &entity.Room{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
		SpawnX:   cfg.PlayerSpawn.X,
		SpawnY:   cfg.PlayerSpawn.Y,
	}
}

// CameraConfig converts camera settings into manager tuning
func CameraConfig(s *config.SettingsConfig) camera.Config {
	cfg := camera.DefaultConfig()
	if s == nil {
		return cfg
	}
	off := s.Camera.ThirdPersonOffset
	if off != (config.Vec3Config{}) {
		cfg.ThirdPersonOffset = entity.Vec3{X: off.X, Y: off.Y, Z: off.Z}
	}
	if s.Camera.ExamineZoom > 0 {
		cfg.ExamineZoom = float32(s.Camera.ExamineZoom)
	}
	if s.Camera.ExamineDuration > 0 {
		cfg.ExamineDuration = float32(s.Camera.ExamineDuration)
	}
	return cfg
}

// BuildWorld creates a world for a level: the room, the player, every
// configured entity with its components, and the links between them.
// settings may be nil.
func BuildWorld(level *config.LevelConfig, settings *config.SettingsConfig) (*ecs.World, error) {
	tileSize := 16
	var doorDuration float32
	if settings != nil {
		if settings.Display.TileSize > 0 {
			tileSize = settings.Display.TileSize
		}
		doorDuration = float32(settings.Door.Duration)
	}

	w := ecs.NewWorld()
	room := LoadRoom(level, tileSize)
	w.Room = room
	w.Cameras = camera.NewManager(CameraConfig(settings))
	w.CreatePlayer(PlayerName, room.SpawnX, room.SpawnY)

	ids := make(map[string]ecs.EntityID, len(level.Entities))
	for _, ec := range level.Entities {
		id := w.CreateEntity(ec.Name, ec.X, ec.Y)
		ids[ec.Name] = id
		if err := attachComponents(w, id, ec, doorDuration); err != nil {
			return nil, fmt.Errorf("level %s: entity %q: %w", level.ID, ec.Name, err)
		}
	}

	// Pets are attached once every owner exists.
	for _, ec := range level.Entities {
		if ec.Pet == nil {
			continue
		}
		owner := w.PlayerID
		if ec.Pet.Owner != PlayerName {
			o, ok := ids[ec.Pet.Owner]
			if !ok {
				return nil, fmt.Errorf("level %s: pet %q follows unknown entity %q", level.ID, ec.Name, ec.Pet.Owner)
			}
			owner = o
		}
		if _, err := w.AttachPet(ids[ec.Name], owner); err != nil {
			return nil, fmt.Errorf("level %s: entity %q: %w", level.ID, ec.Name, err)
		}
	}

	for _, l := range level.Links {
		from, ok := ids[l.From]
		if !ok {
			return nil, fmt.Errorf("level %s: unknown link source %q", level.ID, l.From)
		}
		to, ok := ids[l.To]
		if !ok {
			return nil, fmt.Errorf("level %s: unknown link target %q", level.ID, l.To)
		}
		w.Link(from, to)
	}

	logger.Log.WithField("level", level.ID).
		WithField("entities", len(level.Entities)).
		Info("Level built")
	return w, nil
}

// attachComponents attaches in dependency order: the lockable goes before
// the door that takes it over.
func attachComponents(w *ecs.World, id ecs.EntityID, ec config.EntityConfig, doorDuration float32) error {
	if ec.Interact != nil {
		cfg := ecs.DefaultInteractConfig()
		if ec.Interact.Enabled != nil {
			cfg.IsEnabled = *ec.Interact.Enabled
		}
		cfg.IsSingleUseOnly = ec.Interact.SingleUse
		if ec.Interact.QueueSignal != "" {
			cfg.QueueSignal = ec.Interact.QueueSignal
		}
		if _, err := w.AttachInteract(id, cfg); err != nil {
			return err
		}
	}
	if ec.Lockable != nil {
		if _, err := w.AttachLockable(id, ecs.LockableConfig{IsLocked: ec.Lockable.Locked, KeyName: ec.Lockable.Key}); err != nil {
			return err
		}
	}
	if ec.Door != nil {
		if _, err := w.AttachDoor(id, ecs.DoorConfig{IsOpen: ec.Door.Open, Duration: doorDuration}); err != nil {
			return err
		}
	}
	if ec.Switch != nil {
		if _, err := w.AttachSwitch(id, ecs.SwitchConfig{IsOn: ec.Switch.On, QueueSignal: ec.Switch.QueueSignal}); err != nil {
			return err
		}
	}
	if ec.Item != nil {
		if _, err := w.AttachItem(id, ecs.ItemConfig{Description: ec.Item.Description}); err != nil {
			return err
		}
	}
	if ec.Examine {
		if _, err := w.AttachExamine(id); err != nil {
			return err
		}
	}
	if ec.Response != nil {
		cfg := ecs.ResponseConfig{
			Signal:          ec.Response.Signal,
			Variables:       ec.Response.Variables,
			IsSingleUseOnly: ec.Response.SingleUse,
		}
		if _, err := w.AttachResponse(id, cfg); err != nil {
			return err
		}
	}
	return nil
}
