package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/society-rp/staff-portal/v1/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStoreWithClient(client, time.Hour), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	principal := &models.Account{
		ID:        "usr_1",
		Username:  "Alice",
		DiscordID: "123",
		Rank:      "Sergeant",
		Tier:      models.TierGoldCommand,
	}

	sessionID, err := store.Create(ctx, principal)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	got, err := store.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, got.ID)
	assert.Equal(t, principal.Tier, got.Tier)
	assert.Equal(t, principal.DiscordID, got.DiscordID)
}

func TestGetUnknownSession(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDestroySession(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sessionID, err := store.Create(ctx, &models.Account{ID: "usr_1"})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, sessionID))
	_, err = store.Get(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNotFound)

	// destroying again is not an error
	assert.NoError(t, store.Destroy(ctx, sessionID))
}

func TestSessionExpiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sessionID, err := store.Create(ctx, &models.Account{ID: "usr_1"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)
	_, err = store.Get(ctx, sessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}
