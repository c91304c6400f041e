package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRun(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		hour int
		want time.Time
	}{
		{
			name: "before the hour runs same day",
			now:  time.Date(2024, 3, 10, 1, 30, 0, 0, time.UTC),
			hour: 3,
			want: time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "after the hour runs next day",
			now:  time.Date(2024, 3, 10, 4, 0, 0, 0, time.UTC),
			hour: 3,
			want: time.Date(2024, 3, 11, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly on the hour runs next day",
			now:  time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC),
			hour: 3,
			want: time.Date(2024, 3, 11, 3, 0, 0, 0, time.UTC),
		},
		{
			name: "midnight hour",
			now:  time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			hour: 0,
			want: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month rollover",
			now:  time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC),
			hour: 3,
			want: time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, nextRun(tc.now, tc.hour))
		})
	}
}

func TestDailyRunsWhenTimerFires(t *testing.T) {
	var runs atomic.Int64
	d := NewDaily("test-job", 3, time.Second, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	// Pin the clock just before the scheduled hour so the first timer
	// fires almost immediately.
	d.now = func() time.Time {
		return time.Date(2024, 3, 10, 2, 59, 59, 999_000_000, time.UTC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.GreaterOrEqual(t, runs.Load(), int64(1))
}

func TestDailyStopsOnCancel(t *testing.T) {
	var runs atomic.Int64
	d := NewDaily("test-job", 3, time.Second, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	// A run is a day away; cancelling must end the loop without one.
	d.now = func() time.Time {
		return time.Date(2024, 3, 10, 3, 0, 1, 0, time.UTC)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, runs.Load())
}

func TestRunOnceBoundsTheJob(t *testing.T) {
	var sawDeadline atomic.Bool
	d := NewDaily("test-job", 3, 10*time.Millisecond, func(ctx context.Context) error {
		deadline, ok := ctx.Deadline()
		sawDeadline.Store(ok && !deadline.IsZero())
		return errors.New("run failed")
	})

	d.runOnce(context.Background())
	assert.True(t, sawDeadline.Load())
}
