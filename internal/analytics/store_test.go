package analytics

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, now *time.Time) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	s.now = func() time.Time { return *now }
	return s
}

func TestRecordVisitAndStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	s := newTestStore(t, &now)
	h := NewHasherWithSalt("salt")

	// ten days ago, three days ago, today twice from the same visitor
	now = time.Date(2025, 5, 31, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordVisit(ctx, h.Hash("10.0.0.1"), "curl", "/"))
	now = time.Date(2025, 6, 7, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordVisit(ctx, h.Hash("10.0.0.2"), "firefox", "/"))
	now = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordVisit(ctx, h.Hash("10.0.0.3"), "chrome", "/"))
	now = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordVisit(ctx, h.Hash("10.0.0.3"), "chrome", "/portfolio"))

	now = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/portfolio", stats.RecentVisitors[0].Path)
	assert.Equal(t, h.Hash("10.0.0.3"), stats.RecentVisitors[0].HashedIP)
}

func TestRecordIntent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	s := newTestStore(t, &now)

	for _, intent := range []string{"skills", "resume", "skills", "fallback", "skills", "resume"} {
		require.NoError(t, s.RecordIntent(ctx, intent))
	}

	intents, err := s.Intents(ctx)
	require.NoError(t, err)
	require.Len(t, intents, 3)
	assert.Equal(t, "skills", intents[0].Intent)
	assert.Equal(t, int64(3), intents[0].Hits)
	assert.Equal(t, "resume", intents[1].Intent)
	assert.Equal(t, "fallback", intents[2].Intent)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalQuestions)
}

func TestCleanupVisitors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestStore(t, &now)

	require.NoError(t, s.RecordVisit(ctx, "old", "ua", "/"))
	now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.RecordVisit(ctx, "recent", "ua", "/"))

	now = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	n, err := s.CleanupVisitors(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	visitors, err := s.Visitors(ctx, 10)
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, "recent", visitors[0].HashedIP)
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.sqlite")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.RecordIntent(ctx, "greeting"))
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	intents, err := s.Intents(ctx)
	require.NoError(t, err)
	assert.Len(t, intents, 1)
}

func TestHasher(t *testing.T) {
	h := NewHasherWithSalt("pepper")
	assert.Len(t, h.Hash("127.0.0.1"), 16)
	assert.Equal(t, h.Hash("127.0.0.1"), h.Hash("127.0.0.1"))
	assert.NotEqual(t, h.Hash("127.0.0.1"), h.Hash("127.0.0.2"))
	assert.NotEqual(t, h.Hash("127.0.0.1"), NewHasherWithSalt("salt").Hash("127.0.0.1"))

	random, err := NewHasher()
	require.NoError(t, err)
	assert.Len(t, random.Hash("127.0.0.1"), 16)
}
