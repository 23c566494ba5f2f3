package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

type fakeCleaner struct {
	calls     int
	retention time.Duration
	err       error
}

func (f *fakeCleaner) CleanupVisitors(_ context.Context, retention time.Duration) (int64, error) {
	f.calls++
	f.retention = retention
	return 3, f.err
}

type fakeSweeper struct {
	idle time.Duration
	now  time.Time
}

func (f *fakeSweeper) Sweep(idle time.Duration, now time.Time) int {
	f.idle, f.now = idle, now
	return 1
}

func TestJobs(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cleaner := &fakeCleaner{}
	sweeper := &fakeSweeper{}
	j := &Jobs{
		Visitors:   cleaner,
		Retention:  time.Hour,
		Sessions:   sweeper,
		SessionTTL: time.Minute,
		Logger:     zap.NewNop(),
		Now:        func() time.Time { return now },
	}

	j.CleanupVisitors(context.Background())
	j.SweepSessions()

	assert.Equal(t, 1, cleaner.calls)
	assert.Equal(t, time.Hour, cleaner.retention)
	assert.Equal(t, time.Minute, sweeper.idle)
	assert.Equal(t, now, sweeper.now)

	cleaner.err = errors.New("disk full")
	j.CleanupVisitors(context.Background())
	assert.Equal(t, 2, cleaner.calls)
}

func TestJobsWithoutTargets(t *testing.T) {
	j := &Jobs{Logger: zap.NewNop()}
	j.CleanupVisitors(context.Background())
	j.SweepSessions()
}

func TestRunStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	cleaner := &fakeCleaner{}
	j := &Jobs{Visitors: cleaner, Retention: time.Hour, Logger: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Run(ctx, "@hourly") }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, 1, cleaner.calls, "cleanup runs once at startup")
}

func TestRunRejectsBadSchedule(t *testing.T) {
	j := &Jobs{Logger: zap.NewNop()}
	err := j.Run(context.Background(), "not a schedule")
	assert.Error(t, err)
}
