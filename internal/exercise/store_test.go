package exercise

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSession() *Session {
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &Session{
		ID:           "abc",
		UserID:       "u1",
		Exercise:     Squats,
		Stage:        "up",
		Reps:         3,
		Points:       30,
		Level:        1,
		Progress:     60,
		Achievements: []string{},
		Samples:      []Sample{{Time: t0, Reps: 1, Points: 10}, {Time: t0.Add(5 * time.Second), Reps: 3, Points: 30}},
		StartedAt:    t0,
		LastSample:   t0.Add(5 * time.Second),
	}
}

func testStore(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := sampleSession()
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	// The stored copy is independent of the caller's value.
	s.Reps = 99
	got, err = store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Reps)

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), sampleSession()))
	now = now.Add(2 * time.Minute)

	_, err := store.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStore_SaveEvictsAbandoned(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	abandoned := sampleSession()
	require.NoError(t, store.Save(ctx, abandoned))
	now = now.Add(2 * time.Minute)

	active := sampleSession()
	active.ID = "def"
	require.NoError(t, store.Save(ctx, active))

	store.mu.Lock()
	_, kept := store.entries[abandoned.ID]
	size := len(store.entries)
	store.mu.Unlock()
	assert.False(t, kept)
	assert.Equal(t, 1, size)

	got, err := store.Get(ctx, "def")
	require.NoError(t, err)
	assert.Equal(t, "def", got.ID)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, time.Hour)
	testStore(t, store)

	require.NoError(t, store.Save(context.Background(), sampleSession()))
	assert.True(t, mr.Exists(keyPrefix+"abc"))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"abc"))

	mr.FastForward(2 * time.Hour)
	_, err := store.Get(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleSession()))

	want := "exercise,time,reps,points\n" +
		"Squats,2024-05-01T10:00:00Z,1,10\n" +
		"Squats,2024-05-01T10:00:05Z,3,30\n"
	assert.Equal(t, want, buf.String())
}
