package prefill

import (
	"context"
	"testing"
	"time"

	"khadamat/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, 5*time.Minute), mr
}

func TestCreateGetConsume(t *testing.T) {
	t.Parallel()
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, models.PrefillDraft{Category: "piscine", Firstname: " Youssef ", Phone: "0611", Location: "Rabat"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, 5*time.Minute, mr.TTL(keyPrefix+token))

	draft, err := store.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "Youssef", draft.Firstname)
	require.Equal(t, "piscine", draft.Category)

	draft, err = store.Consume(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "Rabat", draft.Location)

	_, err = store.Get(ctx, token)
	require.ErrorIs(t, err, ErrDraftNotFound)
	_, err = store.Consume(ctx, token)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDraftExpires(t *testing.T) {
	t.Parallel()
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, models.PrefillDraft{Firstname: "Sara"})
	require.NoError(t, err)
	mr.FastForward(6 * time.Minute)

	_, err = store.Get(ctx, token)
	require.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDefaultTTL(t *testing.T) {
	t.Parallel()
	require.Equal(t, DefaultTTL, NewStore(nil, 0).ttl)
}
