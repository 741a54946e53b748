// Package save persists world snapshots. The gdata-backed store survives
// restarts; the memory store is used when no platform storage is available
// and in tests.
package save

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/interactor/internal/ecs"
	"github.com/younwookim/interactor/internal/infrastructure/logger"
)

// ErrNoSave is returned when a slot has never been written
var ErrNoSave = errors.New("save: slot is empty")

// snapshotObject is the gdata object every slot is a property of.
const snapshotObject = "snapshot"

// Store reads and writes raw slot data
type Store interface {
	Exists(slot string) bool
	Load(slot string) ([]byte, error)
	Save(slot string, data []byte) error
}

// GdataStore keeps slots in the platform's application data directory
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the gdata store for appName
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save storage %s: %w", appName, err)
	}
	return &GdataStore{m: m}, nil
}

func (s *GdataStore) Exists(slot string) bool {
	return s.m.ObjectPropExists(snapshotObject, slot)
}

func (s *GdataStore) Load(slot string) ([]byte, error) {
	if !s.Exists(slot) {
		return nil, ErrNoSave
	}
	return s.m.LoadObjectProp(snapshotObject, slot)
}

func (s *GdataStore) Save(slot string, data []byte) error {
	return s.m.SaveObjectProp(snapshotObject, slot, data)
}

// MemoryStore keeps slots in memory only
type MemoryStore struct {
	slots map[string][]byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string][]byte)}
}

func (s *MemoryStore) Exists(slot string) bool {
	_, ok := s.slots[slot]
	return ok
}

func (s *MemoryStore) Load(slot string) ([]byte, error) {
	data, ok := s.slots[slot]
	if !ok {
		return nil, ErrNoSave
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) Save(slot string, data []byte) error {
	s.slots[slot] = append([]byte(nil), data...)
	return nil
}

// Open returns the gdata store for appName, falling back to memory when
// platform storage cannot be opened.
func Open(appName string) Store {
	s, err := OpenGdata(appName)
	if err != nil {
		logger.Log.WithError(err).Warn("persistent saves unavailable, using memory")
		return NewMemoryStore()
	}
	return s
}

// Manager encodes snapshots into a store
type Manager struct {
	store Store
}

// NewManager creates a manager over store
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Has reports whether slot holds a snapshot
func (m *Manager) Has(slot string) bool {
	return m.store.Exists(slot)
}

// Write saves snap into slot
func (m *Manager) Write(slot string, snap ecs.Snapshot) error {
	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := m.store.Save(slot, data); err != nil {
		return fmt.Errorf("failed to save slot %s: %w", slot, err)
	}
	logger.Log.WithField("slot", slot).WithField("level", snap.Level).Info("game saved")
	return nil
}

// Read loads the snapshot in slot
func (m *Manager) Read(slot string) (ecs.Snapshot, error) {
	data, err := m.store.Load(slot)
	if err != nil {
		return ecs.Snapshot{}, fmt.Errorf("failed to load slot %s: %w", slot, err)
	}
	var snap ecs.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return ecs.Snapshot{}, fmt.Errorf("failed to unmarshal slot %s: %w", slot, err)
	}
	return snap, nil
}
