// Package scheduler runs the refresh pipeline on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
)

// Refresher is the pipeline triggered on every tick.
type Refresher interface {
	Refresh(ctx context.Context) (int64, error)
}

// Scheduler triggers Refresher on a cron schedule.
// A tick is skipped while the previous run is still in progress.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	timeout   time.Duration
}

// New parses schedule (standard 5-field cron or descriptors such as "@every 1h")
// and returns a stopped Scheduler. timeout bounds a single run; zero means no bound.
func New(schedule string, refresher Refresher, timeout time.Duration) (*Scheduler, error) {
	l := zapCronLogger{}
	s := &Scheduler{
		cron:      cron.New(cron.WithLogger(l), cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l))),
		refresher: refresher,
		timeout:   timeout,
	}

	if _, err := s.cron.AddFunc(schedule, s.runOnce); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins ticking in a background goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Log.Infow("refresh scheduler started", "next", s.cron.Entries()[0].Next)
}

// Stop prevents further ticks and waits for a running refresh to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		logger.Log.Info("refresh scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) runOnce() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	total, err := s.refresher.Refresh(ctx)
	if err != nil {
		logger.Log.Errorw("scheduled refresh failed", "duration", time.Since(start), "error", err)
		return
	}
	logger.Log.Infow("scheduled refresh finished", "total", total, "duration", time.Since(start))
}

// zapCronLogger routes cron's own messages to the global logger.
type zapCronLogger struct{}

func (zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Log.Debugw("cron: "+msg, keysAndValues...)
}

func (zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Log.Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}
