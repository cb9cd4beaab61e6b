package tracker_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/albwlogic/internal/engine"
	"github.com/roach88/albwlogic/internal/item"
	"github.com/roach88/albwlogic/internal/settings"
	"github.com/roach88/albwlogic/internal/store"
	"github.com/roach88/albwlogic/internal/testutil"
	"github.com/roach88/albwlogic/internal/tracker"
	"github.com/roach88/albwlogic/internal/world"
)

func newService(t *testing.T, opts ...engine.EngineOption) (*tracker.Service, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := tracker.New(st, engine.New(opts...),
		tracker.WithIDGenerator(testutil.NewSequentialIDs("session")))
	return svc, st
}

func TestStartAndLoad(t *testing.T) {
	svc, _ := newService(t, engine.WithWorld(testutil.TwoRegion()))
	ctx := context.Background()

	set := settings.Default()
	set.Mode = settings.Hard
	set.Lampless = true

	sess, err := svc.Start(ctx, set, 7, "practice")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sess.ID)
	assert.Equal(t, set.Fingerprint(), sess.SettingsHash)
	assert.NotEmpty(t, sess.WorldHash)

	loaded, err := svc.Load(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "practice", loaded.Label)
	assert.Equal(t, uint64(7), loaded.Seed)
	assert.Equal(t, settings.Hard, loaded.Settings.Mode)
	assert.True(t, loaded.Settings.Lampless)
	assert.Equal(t, sess.SettingsHash, loaded.Settings.Fingerprint())
	assert.Empty(t, loaded.Items)
}

func TestCollectAndAvailable(t *testing.T) {
	svc, _ := newService(t, engine.WithWorld(testutil.TwoRegion()))
	ctx := context.Background()

	sess, err := svc.Start(ctx, settings.Default(), 1, "")
	require.NoError(t, err)

	got, err := svc.Available(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"C0"}, got)

	require.NoError(t, svc.Collect(ctx, sess.ID, testutil.ItemX.String()))

	got, err = svc.Available(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"C0", "C1"}, got)

	require.NoError(t, svc.Drop(ctx, sess.ID, testutil.ItemX.String()))

	got, err = svc.Available(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"C0"}, got)
}

func TestCollect_UnknownToken(t *testing.T) {
	svc, st := newService(t, engine.WithWorld(testutil.TwoRegion()))
	ctx := context.Background()

	sess, err := svc.Start(ctx, settings.Default(), 1, "")
	require.NoError(t, err)

	err = svc.Collect(ctx, sess.ID, "MasterSword")
	var unknown *item.UnknownTokenError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "MasterSword", unknown.Token)

	items, err := st.Items(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDrop_NotCollected(t *testing.T) {
	svc, _ := newService(t, engine.WithWorld(testutil.TwoRegion()))
	ctx := context.Background()

	sess, err := svc.Start(ctx, settings.Default(), 1, "")
	require.NoError(t, err)

	err = svc.Drop(ctx, sess.ID, "Bow01")
	assert.True(t, errors.Is(err, tracker.ErrNotCollected), "got %v", err)
}

func TestMissingSession(t *testing.T) {
	svc, _ := newService(t, engine.WithWorld(testutil.TwoRegion()))
	ctx := context.Background()

	_, err := svc.Available(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = svc.Collect(ctx, "nope", "Bow01")
	assert.ErrorIs(t, err, store.ErrNotFound)

	err = svc.Drop(ctx, "nope", "Bow01")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPoolsFollowSeed(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	a, err := svc.Start(ctx, settings.Default(), 99, "")
	require.NoError(t, err)
	b, err := svc.Start(ctx, settings.Default(), 99, "")
	require.NoError(t, err)

	progA, trashA, err := svc.Pools(ctx, a.ID)
	require.NoError(t, err)
	progB, trashB, err := svc.Pools(ctx, b.ID)
	require.NoError(t, err)

	assert.Equal(t, progA, progB)
	assert.Equal(t, trashA, trashB)
}

func TestListAndDelete(t *testing.T) {
	svc, _ := newService(t, engine.WithWorld(testutil.TwoRegion()))
	ctx := context.Background()

	for _, label := range []string{"first", "second"} {
		_, err := svc.Start(ctx, settings.Default(), 0, label)
		require.NoError(t, err)
	}
	require.NoError(t, svc.Collect(ctx, "session-2", "Bow01"))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Label)
	assert.Equal(t, []string{"Bow01"}, list[1].Items)

	require.NoError(t, svc.Delete(ctx, "session-1"))
	list, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "session-2", list[0].ID)
}

func TestStart_WorldError(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	defer st.Close()

	broken := &world.Definition{Start: "Nowhere"}
	svc := tracker.New(st, engine.New(engine.WithWorld(broken)))

	_, err = svc.Start(context.Background(), settings.Default(), 0, "")
	assert.True(t, engine.IsWorldError(err), "got %v", err)
}
