package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeMonthlyStats_Classification(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time { return monday.AddDate(0, 0, offset) }

	days := []Day{
		{Date: day(0), Holiday: true},
		{Date: day(1), DayOff: true},
		{Date: day(2)}, // past, no clock data: absent
		workedDay(day(3), clockAt(day(3), 9, 30), clockAt(day(3), 16, 0)),  // late + early
		workedDay(day(4), clockAt(day(4), 8, 45), clockAt(day(4), 18, 30)), // overtime only
		workedDay(day(7), clockAt(day(7), 9, 15), clockAt(day(7), 17, 45)), // late + overtime
		{Date: day(30)}, // future, no clock data: nothing
	}

	stats := ComputeMonthlyStats(days, testToday)
	assert.Equal(t, MonthlyStats{
		DayOff:        2,
		LateClockIn:   2,
		EarlyClockOut: 1,
		Overtime:      2,
		Absent:        1,
	}, stats)
}

func TestComputeMonthlyStats_DayOffExcludesEverythingElse(t *testing.T) {
	date := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC) // Saturday

	// A worked holiday still counts only toward DayOff.
	d := workedDay(date, clockAt(date, 9, 30), clockAt(date, 18, 0))
	d.Holiday = true

	stats := ComputeMonthlyStats([]Day{d}, testToday)
	assert.Equal(t, MonthlyStats{DayOff: 1}, stats)
}

func TestComputeMonthlyStats_ClockedInDayIsNeverAbsent(t *testing.T) {
	past := testToday.AddDate(0, 0, -3)
	d := workedDay(past, clockAt(past, 9, 0), nil)

	stats := ComputeMonthlyStats([]Day{d}, testToday)
	assert.Equal(t, 0, stats.Absent)
}

func TestComputeMonthlyStats_Idempotent(t *testing.T) {
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	days := []Day{
		{Date: day, Holiday: true},
		workedDay(day.AddDate(0, 0, 1), clockAt(day, 9, 20), clockAt(day, 17, 30)),
		{Date: day.AddDate(0, 0, 2)},
	}

	first := ComputeMonthlyStats(days, testToday)
	second := ComputeMonthlyStats(days, testToday)
	assert.Equal(t, first, second)
}

func TestComputeMonthlyStats_EmptyMonth(t *testing.T) {
	assert.Equal(t, MonthlyStats{}, ComputeMonthlyStats(nil, testToday))
}
