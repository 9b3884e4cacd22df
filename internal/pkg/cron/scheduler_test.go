package cron

import (
	"context"
	"testing"
	"time"
)

func TestUntilNextHour(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			"before midnight",
			time.Date(2026, 3, 18, 23, 30, 0, 0, time.UTC), 0,
			30 * time.Minute,
		},
		{
			"exactly on the hour rolls to tomorrow",
			time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC), 0,
			24 * time.Hour,
		},
		{
			"same day later hour",
			time.Date(2026, 3, 18, 3, 15, 0, 0, time.UTC), 5,
			time.Hour + 45*time.Minute,
		},
		{
			"hour already passed today",
			time.Date(2026, 3, 18, 6, 0, 1, 0, time.UTC), 6,
			24*time.Hour - time.Second,
		},
	}

	for _, c := range cases {
		got := untilNextHour(c.now, c.hour)
		if got != c.want {
			t.Errorf("%s: untilNextHour(%v, %d) = %v, want %v", c.name, c.now, c.hour, got, c.want)
		}
	}
}

func TestSchedulerRunOnce(t *testing.T) {
	s := NewScheduler()

	ran := make(map[string]int)
	s.AddJob("hourly", time.Hour, func(ctx context.Context) error {
		ran["hourly"]++
		return nil
	})
	s.AddDailyJob("nightly", 0, func(ctx context.Context) error {
		ran["nightly"]++
		return nil
	})

	s.RunOnce(context.Background())

	if ran["hourly"] != 1 || ran["nightly"] != 1 {
		t.Errorf("RunOnce executed jobs %v, want each exactly once", ran)
	}
}

func TestAddDailyJobDelay(t *testing.T) {
	s := NewScheduler()
	s.AddDailyJob("nightly", 0, func(ctx context.Context) error { return nil })

	job := s.jobs[0]
	if job.Interval != 24*time.Hour {
		t.Errorf("daily job interval = %v, want 24h", job.Interval)
	}
	if job.Delay <= 0 || job.Delay > 24*time.Hour {
		t.Errorf("daily job delay = %v, want within (0, 24h]", job.Delay)
	}
}
