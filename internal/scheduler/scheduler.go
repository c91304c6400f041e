package scheduler

import (
	"context"
	"time"

	"github.com/musasahinkundakci/firebase-backend-recipe/internal/logger"
)

// Job is a unit of scheduled work.
type Job func(ctx context.Context) error

// Daily runs a job once per day at a fixed UTC hour. Runs get a bounded
// context; there is no overlap protection beyond the run timeout and no
// retry, a failed run is simply logged and the next one happens a day
// later.
type Daily struct {
	name    string
	hour    int
	timeout time.Duration
	job     Job
	now     func() time.Time
}

// NewDaily builds a daily schedule for the given UTC hour of day.
func NewDaily(name string, hour int, timeout time.Duration, job Job) *Daily {
	return &Daily{
		name:    name,
		hour:    hour,
		timeout: timeout,
		job:     job,
		now:     time.Now,
	}
}

// Start launches the schedule loop; it stops when ctx is cancelled.
func (d *Daily) Start(ctx context.Context) {
	go d.loop(ctx)
}

func (d *Daily) loop(ctx context.Context) {
	for {
		next := nextRun(d.now().UTC(), d.hour)
		timer := time.NewTimer(next.Sub(d.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Log.Infof("scheduler %s stopped", d.name)
			return
		case <-timer.C:
		}

		d.runOnce(ctx)
	}
}

func (d *Daily) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	logger.Log.Infof("scheduler %s: run starting", d.name)
	if err := d.job(runCtx); err != nil {
		logger.Log.Errorf("scheduler %s: run failed: %v", d.name, err)
		return
	}
	logger.Log.Infof("scheduler %s: run finished", d.name)
}

// nextRun returns the next instant at the given UTC hour strictly after
// now.
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
