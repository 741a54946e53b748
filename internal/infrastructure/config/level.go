package config

import "fmt"

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	ID          string                       `yaml:"id"`
	Name        string                       `yaml:"name"`
	Layout      []string                     `yaml:"layout"`
	TileMapping map[string]TileMappingConfig `yaml:"tileMapping"`
	PlayerSpawn PositionConfig               `yaml:"playerSpawn"`
	Entities    []EntityConfig               `yaml:"entities"`
	Links       []LinkConfig                 `yaml:"links"`
}

type PositionConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type TileMappingConfig struct {
	Type  string `yaml:"type"`
	Solid bool   `yaml:"solid"`
}

// EntityConfig places a named entity and lists the components it carries.
// Nil component blocks are not attached.
type EntityConfig struct {
	Name     string        `yaml:"name"`
	X        int           `yaml:"x"`
	Y        int           `yaml:"y"`
	Interact *InteractSpec `yaml:"interact,omitempty"`
	Door     *DoorSpec     `yaml:"door,omitempty"`
	Lockable *LockableSpec `yaml:"lockable,omitempty"`
	Switch   *SwitchSpec   `yaml:"switch,omitempty"`
	Item     *ItemSpec     `yaml:"item,omitempty"`
	Examine  bool          `yaml:"examine,omitempty"`
	Response *ResponseSpec `yaml:"response,omitempty"`
	Pet      *PetSpec      `yaml:"pet,omitempty"`
}

type InteractSpec struct {
	Enabled     *bool  `yaml:"enabled,omitempty"` // default true
	SingleUse   bool   `yaml:"singleUse"`
	QueueSignal string `yaml:"queueSignal"`
}

type DoorSpec struct {
	Open bool `yaml:"open"`
}

type LockableSpec struct {
	Locked bool   `yaml:"locked"`
	Key    string `yaml:"key"`
}

type SwitchSpec struct {
	On          bool   `yaml:"on"`
	QueueSignal string `yaml:"queueSignal"`
}

type ItemSpec struct {
	Description string `yaml:"description"`
}

type ResponseSpec struct {
	Signal    string         `yaml:"signal"`
	Variables map[string]any `yaml:"variables"`
	SingleUse bool           `yaml:"singleUse"`
}

type PetSpec struct {
	Owner string `yaml:"owner"` // entity name; "player" follows the player
}

// LinkConfig makes To receive the response signals of From
type LinkConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Validate checks the level for references that cannot be resolved
func (c *LevelConfig) Validate() error {
	if len(c.Layout) == 0 {
		return fmt.Errorf("level %s: layout cannot be empty", c.ID)
	}
	width := len(c.Layout[0])
	for i, row := range c.Layout {
		if len(row) != width {
			return fmt.Errorf("level %s: layout row %d has width %d, want %d", c.ID, i, len(row), width)
		}
	}

	names := make(map[string]bool, len(c.Entities))
	for _, e := range c.Entities {
		if e.Name == "" {
			return fmt.Errorf("level %s: entity at (%d,%d) has no name", c.ID, e.X, e.Y)
		}
		if names[e.Name] {
			return fmt.Errorf("level %s: duplicate entity name %q", c.ID, e.Name)
		}
		names[e.Name] = true
		if e.Door != nil && e.Lockable == nil {
			return fmt.Errorf("level %s: door %q needs a lockable block", c.ID, e.Name)
		}
	}
	for _, e := range c.Entities {
		if e.Pet != nil && e.Pet.Owner != "player" && !names[e.Pet.Owner] {
			return fmt.Errorf("level %s: pet %q follows unknown entity %q", c.ID, e.Name, e.Pet.Owner)
		}
	}
	for _, l := range c.Links {
		if !names[l.From] || !names[l.To] {
			return fmt.Errorf("level %s: link %s -> %s references an unknown entity", c.ID, l.From, l.To)
		}
	}
	return nil
}
