package ecs

import (
	"fmt"
	"sort"
)

// Snapshot is the persistent part of a world: where things are and what
// state the interactive components are in. Entities are keyed by name.
type Snapshot struct {
	Level    string                   `yaml:"level"`
	Player   PlayerState              `yaml:"player"`
	Doors    map[string]DoorState     `yaml:"doors,omitempty"`
	Locks    map[string]bool          `yaml:"locks,omitempty"`
	Switches map[string]bool          `yaml:"switches,omitempty"`
	Items    map[string]ItemState     `yaml:"items,omitempty"`
	Interact map[string]bool          `yaml:"interact,omitempty"`
	Pets     map[string]PositionState `yaml:"pets,omitempty"`
}

// PlayerState is the player's saved position and inventory
type PlayerState struct {
	X         int      `yaml:"x"`
	Y         int      `yaml:"y"`
	Inventory []string `yaml:"inventory,omitempty"`
}

// DoorState is a saved door
type DoorState struct {
	Open bool `yaml:"open"`
}

// ItemState is a saved item: either carried or lying at X, Y
type ItemState struct {
	Held bool `yaml:"held"`
	X    int  `yaml:"x"`
	Y    int  `yaml:"y"`
}

// PositionState is a saved tile position
type PositionState struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Capture records the world's persistent state
func Capture(w *World, level string) Snapshot {
	s := Snapshot{
		Level:    level,
		Doors:    make(map[string]DoorState),
		Locks:    make(map[string]bool),
		Switches: make(map[string]bool),
		Items:    make(map[string]ItemState),
		Interact: make(map[string]bool),
		Pets:     make(map[string]PositionState),
	}

	if p := w.Player(); p != nil {
		pos := w.Position[w.PlayerID]
		s.Player = PlayerState{X: pos.X, Y: pos.Y}
		for _, h := range p.Inventory() {
			s.Player.Inventory = append(s.Player.Inventory, h.Name)
		}
		sort.Strings(s.Player.Inventory)
	}
	for id, d := range w.Door {
		s.Doors[w.Name[id]] = DoorState{Open: d.IsOpen()}
	}
	for id, l := range w.Lockable {
		s.Locks[w.Name[id]] = l.Locked()
	}
	for id, sw := range w.Switch {
		s.Switches[w.Name[id]] = sw.IsOn()
	}
	for id, it := range w.Item {
		pos := w.Position[id]
		s.Items[w.Name[id]] = ItemState{Held: it.Held(), X: pos.X, Y: pos.Y}
	}
	for id, c := range w.Interact {
		s.Interact[w.Name[id]] = c.Enabled()
	}
	for id := range w.Pet {
		pos := w.Position[id]
		s.Pets[w.Name[id]] = PositionState{X: pos.X, Y: pos.Y}
	}
	return s
}

// Restore applies a snapshot to a freshly loaded world. Names in the
// snapshot that the world does not have are reported as an error after the
// rest has been applied.
func Restore(w *World, s Snapshot) error {
	var missing []string
	lookup := func(name string) (EntityID, bool) {
		id, ok := w.FindByName(name)
		if !ok {
			missing = append(missing, name)
		}
		return id, ok
	}

	if p := w.Player(); p != nil {
		w.Position[w.PlayerID] = Position{X: s.Player.X, Y: s.Player.Y}
	}

	// Locks before doors: a door's verbs depend on its lock.
	for name, locked := range s.Locks {
		if id, ok := lookup(name); ok {
			if l, ok := w.Lockable[id]; ok {
				l.SetLocked(locked)
			}
		}
	}
	for name, st := range s.Doors {
		if id, ok := lookup(name); ok {
			if d, ok := w.Door[id]; ok {
				d.cfg.IsOpen = st.Open
				d.ResetState()
			}
		}
	}
	for name, on := range s.Switches {
		if id, ok := lookup(name); ok {
			if sw, ok := w.Switch[id]; ok {
				sw.cfg.IsOn = on
				sw.ResetState()
			}
		}
	}
	for name, enabled := range s.Interact {
		if id, ok := lookup(name); ok {
			if c, ok := w.Interact[id]; ok {
				c.SetEnabled(enabled)
			}
		}
	}
	for name, st := range s.Items {
		id, ok := lookup(name)
		if !ok {
			continue
		}
		it, ok := w.Item[id]
		if !ok {
			continue
		}
		w.Position[id] = Position{X: st.X, Y: st.Y}
		if st.Held && w.Player() != nil {
			it.OnItemPickup(w.Player())
		}
	}
	for name, st := range s.Pets {
		if id, ok := lookup(name); ok {
			w.Position[id] = Position{X: st.X, Y: st.Y}
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("restore: unknown entities %v", missing)
	}
	return nil
}
