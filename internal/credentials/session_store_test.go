package credentials

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomNest/internal/models"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewSessionStore(rdb, time.Hour), mr
}

func TestSessionStoreCreateGet(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, Session{
		UserID:       7,
		Role:         models.RoleUser,
		AccessToken:  "access",
		RefreshToken: "refresh",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 7, sess.UserID)
	assert.Equal(t, models.RoleUser, sess.Role)
	assert.Equal(t, "access", sess.AccessToken)
	assert.False(t, sess.CreatedAt.IsZero())
}

func TestSessionStoreGetUnknown(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSessionStoreUpdate(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, Session{UserID: 7, AccessToken: "old"})
	require.NoError(t, err)

	sess, err := store.Get(ctx, id)
	require.NoError(t, err)
	sess.AccessToken = "new"
	require.NoError(t, store.Update(ctx, id, sess))

	got, err := store.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)

	err = store.Update(ctx, "missing", sess)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}

func TestSessionStoreDelete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, Session{UserID: 7})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	// Deleting twice stays quiet.
	assert.NoError(t, store.Delete(ctx, id))
}

func TestSessionStoreTTLExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	id, err := store.Create(ctx, Session{UserID: 7})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, id)
	assert.ErrorIs(t, err, models.ErrSessionNotFound)
}
