package save

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/interactor/internal/ecs"
)

func sampleSnapshot() ecs.Snapshot {
	return ecs.Snapshot{
		Level:    "demo",
		Player:   ecs.PlayerState{X: 3, Y: 4, Inventory: []string{"brass key"}},
		Doors:    map[string]ecs.DoorState{"cellar door": {Open: true}},
		Locks:    map[string]bool{"cellar door": false},
		Switches: map[string]bool{"lamp switch": true},
		Items:    map[string]ecs.ItemState{"brass key": {Held: true, X: 15, Y: 11}},
		Interact: map[string]bool{"lever": true},
		Pets:     map[string]ecs.PositionState{"cat": {X: 3, Y: 5}},
	}
}

func TestManager_WriteRead(t *testing.T) {
	m := NewManager(NewMemoryStore())
	assert.False(t, m.Has("slot1"))

	require.NoError(t, m.Write("slot1", sampleSnapshot()))
	assert.True(t, m.Has("slot1"))

	got, err := m.Read("slot1")
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestManager_ReadEmptySlot(t *testing.T) {
	m := NewManager(NewMemoryStore())

	_, err := m.Read("nothing")
	assert.ErrorIs(t, err, ErrNoSave)
}

func TestManager_ReadCorrupt(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("slot1", []byte("player: [")))

	_, err := NewManager(store).Read("slot1")
	assert.Error(t, err)
}

func TestMemoryStore_CopiesData(t *testing.T) {
	s := NewMemoryStore()
	data := []byte("abc")
	require.NoError(t, s.Save("a", data))
	data[0] = 'x'

	got, err := s.Load("a")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
}

func TestGdataStore(t *testing.T) {
	appName := fmt.Sprintf("interactor_test_%d", time.Now().UnixNano())
	s, err := OpenGdata(appName)
	if err != nil {
		t.Skip("Cannot create gdata manager for testing")
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			_ = os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})

	m := NewManager(s)
	require.NoError(t, m.Write("slot1", sampleSnapshot()))
	got, err := m.Read("slot1")
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)

	_, err = m.Read("slot2")
	assert.ErrorIs(t, err, ErrNoSave)
}
