package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "github.com/mokobill/MedTrack/internal/models"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStoreWithClient(client, "med-diet-tracker-data"), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	st, mr := newTestRedisStore(t)
	ctx := context.Background()

	state := DefaultState()
	state.WeeklyTracking["2024-01-01"] = &model.WeeklyTracking{
		WeekStart: "2024-01-01",
		Items:     map[string]int{"fish": 3},
	}
	require.NoError(t, st.Save(ctx, "demo", state))

	// La clé suit le schéma "<namespace>-<username>"
	assert.True(t, mr.Exists("med-diet-tracker-data-demo"))

	loaded := st.Load(ctx, "demo")
	assert.Equal(t, 3, loaded.WeeklyTracking["2024-01-01"].Items["fish"])

	require.NoError(t, st.Clear(ctx, "demo"))
	assert.False(t, mr.Exists("med-diet-tracker-data-demo"))
}

func TestRedisStoreMissingKeyGivesDefaults(t *testing.T) {
	st, _ := newTestRedisStore(t)
	state := st.Load(context.Background(), "nobody")
	require.NotNil(t, state)
	assert.Len(t, state.FoodItems, 6)
	assert.Empty(t, state.Tracking)
}

func TestRedisStoreCorruptDataFallsBackToDefaults(t *testing.T) {
	st, mr := newTestRedisStore(t)
	require.NoError(t, mr.Set("med-diet-tracker-data-demo", "{not valid json"))

	state := st.Load(context.Background(), "demo")
	require.NotNil(t, state)
	assert.Len(t, state.FoodItems, 6)
	assert.Empty(t, state.Tracking)
}

func TestRedisStoreUnreachableServerGivesDefaults(t *testing.T) {
	st, mr := newTestRedisStore(t)
	mr.Close()

	state := st.Load(context.Background(), "demo")
	require.NotNil(t, state)
	assert.Len(t, state.FoodItems, 6)
}

func TestRedisStoreNamespacing(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	first := NewRedisStoreWithClient(client, "ns-one")
	second := NewRedisStoreWithClient(client, "ns-two")
	ctx := context.Background()

	state := DefaultState()
	state.LastWeekStart = "2024-01-01"
	require.NoError(t, first.Save(ctx, "demo", state))

	assert.Equal(t, "2024-01-01", first.Load(ctx, "demo").LastWeekStart)
	assert.Empty(t, second.Load(ctx, "demo").LastWeekStart)
}
