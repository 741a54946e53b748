package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoorRegistry(t *testing.T, subject *recorder) (*Registry, Handle, Handle) {
	t.Helper()
	r := NewRegistry()
	open, err := NewOpenableOpen(subject)
	require.NoError(t, err)
	closeIx, err := NewOpenableClose(subject)
	require.NoError(t, err)
	return r, r.Add(1, open), r.Add(1, closeIx)
}

func TestRegistry_AddAndEnumerate(t *testing.T) {
	r, hOpen, hClose := newDoorRegistry(t, &recorder{})

	assert.Equal(t, 2, r.Len())
	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, hOpen, all[0].Handle)
	assert.Equal(t, hClose, all[1].Handle)
	assert.Equal(t, OwnerID(1), all[0].Owner)

	e, ok := r.Lookup(VerbOpenableClose)
	require.True(t, ok)
	assert.Equal(t, hClose, e.Handle)

	_, ok = r.Lookup(VerbLockableLock)
	assert.False(t, ok)
}

func TestRegistry_OfferedSkipsDisabledAndHidden(t *testing.T) {
	subject := &recorder{}
	r, hOpen, _ := newDoorRegistry(t, subject)
	lock, err := NewLockableLock(subject, WithHidden(true))
	require.NoError(t, err)
	r.Add(1, lock)

	open, _ := r.Get(hOpen)
	open.SetEnabled(false)

	offered := r.Offered()
	require.Len(t, offered, 1)
	assert.Equal(t, VerbOpenableClose, offered[0].Interaction.Verb())
}

func TestRegistry_LifecycleOrdering(t *testing.T) {
	subject := &recorder{}
	r := NewRegistry()
	ix, err := NewInteract(subject)
	require.NoError(t, err)
	h := r.Add(5, ix)
	actor := &testActor{id: 2}

	assert.ErrorIs(t, r.Tick(actor), ErrNotActive)
	assert.ErrorIs(t, r.Complete(actor), ErrNotActive)
	assert.ErrorIs(t, r.Cancel(actor), ErrNotActive)

	require.NoError(t, r.Start(h, actor))
	active, ok := r.Active()
	require.True(t, ok)
	assert.Equal(t, h, active.Handle)

	require.NoError(t, r.Tick(actor))
	require.NoError(t, r.Complete(actor))

	_, ok = r.Active()
	assert.False(t, ok)
	assert.ErrorIs(t, r.Tick(actor), ErrNotActive)

	assert.Equal(t, []string{"InteractStart", "InteractTick", "InteractComplete"}, subject.calls)
}

func TestRegistry_MutualExclusion(t *testing.T) {
	subject := &recorder{}
	r, hOpen, hClose := newDoorRegistry(t, subject)
	actor := &testActor{}

	require.NoError(t, r.Start(hOpen, actor))
	assert.ErrorIs(t, r.Start(hClose, actor), ErrBusy)

	require.NoError(t, r.Cancel(actor))
	require.NoError(t, r.Start(hClose, actor))

	assert.Equal(t, []string{"Open", "Close"}, subject.calls)
}

func TestRegistry_StartDisabled(t *testing.T) {
	subject := &recorder{}
	r, hOpen, _ := newDoorRegistry(t, subject)
	open, _ := r.Get(hOpen)
	open.SetEnabled(false)

	err := r.Start(hOpen, &testActor{})

	assert.ErrorIs(t, err, ErrDisabled)
	assert.Empty(t, subject.calls)
	_, ok := r.Active()
	assert.False(t, ok)
}

func TestRegistry_DisabledMidInteractionStillTerminates(t *testing.T) {
	subject := &recorder{}
	r := NewRegistry()
	ix, err := NewInteract(subject)
	require.NoError(t, err)
	h := r.Add(1, ix)

	require.NoError(t, r.Start(h, &testActor{}))
	ix.SetEnabled(false)

	require.NoError(t, r.Tick(&testActor{}))
	require.NoError(t, r.Complete(&testActor{}))

	_, ok := r.Active()
	assert.False(t, ok)
	assert.Equal(t, []string{"InteractStart"}, subject.calls)
}

func TestRegistry_StaleHandle(t *testing.T) {
	r, hOpen, _ := newDoorRegistry(t, &recorder{})

	require.NoError(t, r.Remove(hOpen))
	assert.ErrorIs(t, r.Remove(hOpen), ErrStaleHandle)
	assert.ErrorIs(t, r.Start(hOpen, &testActor{}), ErrStaleHandle)

	_, ok := r.Get(hOpen)
	assert.False(t, ok)

	// The freed slot is reused with a new generation.
	ix, err := NewLockableUnlock(&recorder{})
	require.NoError(t, err)
	h := r.Add(2, ix)
	assert.NotEqual(t, hOpen, h)
	_, ok = r.Get(hOpen)
	assert.False(t, ok)

	assert.ErrorIs(t, r.Start(Handle{}, &testActor{}), ErrStaleHandle)
}

func TestRegistry_InsertionOrderAfterReuse(t *testing.T) {
	r, hOpen, _ := newDoorRegistry(t, &recorder{})
	require.NoError(t, r.Remove(hOpen))

	ix, err := NewLockableUnlock(&recorder{})
	require.NoError(t, err)
	r.Add(2, ix)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, VerbOpenableClose, all[0].Interaction.Verb())
	assert.Equal(t, VerbLockableUnlock, all[1].Interaction.Verb())
}

func TestRegistry_RemoveOwnerCancelsActive(t *testing.T) {
	door := &recorder{}
	r, hOpen, _ := newDoorRegistry(t, door)

	lamp := &recorder{}
	toggle, err := NewSwitchToggle(lamp)
	require.NoError(t, err)
	r.Add(2, toggle)

	interact, err := NewInteract(door)
	require.NoError(t, err)
	hInteract := r.Add(1, interact)

	require.NoError(t, r.Start(hInteract, &testActor{}))

	removed := r.RemoveOwner(1)

	assert.Equal(t, 3, removed)
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []string{"InteractStart", "InteractCancel"}, door.calls)
	_, ok := r.Active()
	assert.False(t, ok)
	_, ok = r.Get(hOpen)
	assert.False(t, ok)
}

func TestRegistry_Clear(t *testing.T) {
	r, _, _ := newDoorRegistry(t, &recorder{})
	r.Clear()

	assert.Zero(t, r.Len())
	assert.Empty(t, r.All())
}
