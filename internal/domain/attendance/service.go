package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
// The authenticated employee is taken from the request context claims.
type AttendanceService interface {
	// ClockIn records the employee's arrival for today
	ClockIn(ctx context.Context, req ClockInRequest) (DayResponse, error)

	// ClockOut records the employee's departure and re-derives all flags
	ClockOut(ctx context.Context, req ClockOutRequest) (DayResponse, error)

	// RequestDayOff marks a future date as a requested day off
	RequestDayOff(ctx context.Context, req DayOffRequest) (DayResponse, error)

	// GetToday returns today's record with its computed segments
	GetToday(ctx context.Context) (DayResponse, error)

	// GetCalendar returns a full month: every day with segments, plus stats
	GetCalendar(ctx context.Context, filter CalendarFilter) (CalendarResponse, error)

	// GetMonthlyStats returns only the aggregated counters for a month
	GetMonthlyStats(ctx context.Context, filter CalendarFilter) (StatsResponse, error)
}
