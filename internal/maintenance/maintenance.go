// Package maintenance runs the periodic housekeeping jobs: visitor data
// retention and idle chat session eviction.
package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// VisitorCleaner deletes visitor records older than a retention window.
type VisitorCleaner interface {
	CleanupVisitors(ctx context.Context, retention time.Duration) (int64, error)
}

// SessionSweeper evicts chat sessions idle for longer than idle.
type SessionSweeper interface {
	Sweep(idle time.Duration, now time.Time) int
}

type Jobs struct {
	Visitors   VisitorCleaner
	Retention  time.Duration
	Sessions   SessionSweeper
	SessionTTL time.Duration
	Logger     *zap.Logger
	Now        func() time.Time
}

// CleanupVisitors runs the privacy retention job once.
func (j *Jobs) CleanupVisitors(ctx context.Context) {
	if j.Visitors == nil {
		return
	}
	n, err := j.Visitors.CleanupVisitors(ctx, j.Retention)
	if err != nil {
		j.Logger.Error("privacy cleanup failed", zap.Error(err))
		return
	}
	if n > 0 {
		j.Logger.Info("privacy cleanup: removed old visitor records",
			zap.Int64("removed", n), zap.Duration("retention", j.Retention))
	}
}

// SweepSessions runs the idle session job once.
func (j *Jobs) SweepSessions() {
	if j.Sessions == nil {
		return
	}
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}
	if n := j.Sessions.Sweep(j.SessionTTL, now()); n > 0 {
		j.Logger.Debug("evicted idle chat sessions", zap.Int("count", n))
	}
}

// Run executes both jobs once at startup and then on schedule until ctx is
// cancelled.
func (j *Jobs) Run(ctx context.Context, schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		j.CleanupVisitors(ctx)
		j.SweepSessions()
	})
	if err != nil {
		return fmt.Errorf("schedule maintenance %q: %w", schedule, err)
	}

	j.CleanupVisitors(ctx)
	c.Start()
	j.Logger.Info("maintenance scheduled", zap.String("schedule", schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
