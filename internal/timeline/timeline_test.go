package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, 3, 18, 10, 30, 0, 0, time.UTC)

func clockAt(day time.Time, hour, minute int) *time.Time {
	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	return &t
}

// workedDay builds a Day with flags derived the same way the service layer
// derives them: once, from the timestamps, via ComputeFlags.
func workedDay(date time.Time, clockIn, clockOut *time.Time) Day {
	d := Day{Date: date, ClockIn: clockIn, ClockOut: clockOut}
	if clockIn != nil {
		f := ComputeFlags(*clockIn, clockOut)
		d.Late, d.Early, d.Overtime = f.Late, f.Early, f.Overtime
	}
	return d
}

// assertWellFormed checks the ordering and non-overlap guarantees that hold
// for every segment list.
func assertWellFormed(t *testing.T, segs []Segment) {
	t.Helper()
	for i, s := range segs {
		assert.Less(t, s.Start, s.End, "segment %d must have start < end", i)
		if i > 0 {
			assert.LessOrEqual(t, segs[i-1].End, s.Start,
				"segment %d overlaps or precedes segment %d", i, i-1)
		}
	}
}

// assertTiles checks that the segments tile [start, end] with no gaps.
func assertTiles(t *testing.T, segs []Segment, start, end string) {
	t.Helper()
	require.NotEmpty(t, segs)
	assert.Equal(t, start, segs[0].Start)
	assert.Equal(t, end, segs[len(segs)-1].End)
	for i := 1; i < len(segs); i++ {
		assert.Equal(t, segs[i-1].End, segs[i].Start, "gap before segment %d", i)
	}
}

func segmentTypes(segs []Segment) []SegmentType {
	types := make([]SegmentType, 0, len(segs))
	for _, s := range segs {
		types = append(types, s.Type)
	}
	return types
}

func TestDaySegments_HolidayShortCircuit(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC) // Saturday

	// Holiday wins even when somebody clocked in on it.
	d := workedDay(date, clockAt(date, 8, 30), clockAt(date, 18, 0))
	d.Holiday = true

	segs := DaySegments(d, testToday)
	require.Len(t, segs, 1)
	assert.Equal(t, SegmentHoliday, segs[0].Type)
	assert.Equal(t, "09:00", segs[0].Start)
	assert.Equal(t, "17:00", segs[0].End)
}

func TestDaySegments_DayOffShortCircuit(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	d := Day{Date: date, DayOff: true}

	segs := DaySegments(d, testToday)
	require.Len(t, segs, 1)
	assert.Equal(t, SegmentDayOff, segs[0].Type)
	assert.Equal(t, "09:00", segs[0].Start)
	assert.Equal(t, "17:00", segs[0].End)
}

func TestDaySegments_PastDayWithoutClockInIsAbsent(t *testing.T) {
	yesterday := testToday.AddDate(0, 0, -1)
	segs := DaySegments(Day{Date: yesterday}, testToday)

	require.Len(t, segs, 1)
	assert.Equal(t, SegmentAbsent, segs[0].Type)
	assert.Equal(t, "09:00", segs[0].Start)
	assert.Equal(t, "17:00", segs[0].End)
}

func TestDaySegments_FutureAndCurrentDaysAreEmptyNotAbsent(t *testing.T) {
	tomorrow := testToday.AddDate(0, 0, 1)
	assert.Empty(t, DaySegments(Day{Date: tomorrow}, testToday))

	// Same calendar day as today, even if the moment has passed.
	assert.Empty(t, DaySegments(Day{Date: startOfDay(testToday)}, testToday))
}

func TestDaySegments_EarlyArrivalWithOvertime(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	d := workedDay(date, clockAt(date, 8, 55), clockAt(date, 17, 5))

	assert.False(t, d.Late)
	assert.False(t, d.Early)
	assert.True(t, d.Overtime)

	segs := DaySegments(d, testToday)
	assert.Equal(t,
		[]SegmentType{SegmentEarlyArrival, SegmentWorking, SegmentOvertime},
		segmentTypes(segs))
	assertWellFormed(t, segs)
	assertTiles(t, segs, "08:55", "17:05")

	assert.Equal(t, "08:55", segs[0].Start)
	assert.Equal(t, "09:00", segs[0].End)
	assert.Equal(t, "09:00", segs[1].Start)
	assert.Equal(t, "17:00", segs[1].End)
	assert.Equal(t, "17:00", segs[2].Start)
	assert.Equal(t, "17:05", segs[2].End)
}

func TestDaySegments_LateArrivalEarlyLeave(t *testing.T) {
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	d := workedDay(date, clockAt(date, 9, 30), clockAt(date, 16, 45))

	assert.True(t, d.Late)
	assert.True(t, d.Early)
	assert.False(t, d.Overtime)

	segs := DaySegments(d, testToday)
	assert.Equal(t,
		[]SegmentType{SegmentLate, SegmentWorking, SegmentEarly},
		segmentTypes(segs))
	assertWellFormed(t, segs)
	assertTiles(t, segs, "09:00", "17:00")

	assert.Equal(t, "09:30", segs[0].End)
	assert.Equal(t, "09:30", segs[1].Start)
	assert.Equal(t, "16:45", segs[1].End)
	assert.Equal(t, "16:45", segs[2].Start)
}

func TestDaySegments_StillClockedIn(t *testing.T) {
	date := startOfDay(testToday)
	d := workedDay(date, clockAt(date, 9, 10), nil)

	assert.True(t, d.Late)
	assert.False(t, d.Early)
	assert.False(t, d.Overtime)

	segs := DaySegments(d, testToday)
	assert.Equal(t, []SegmentType{SegmentLate, SegmentWorking}, segmentTypes(segs))
	assertTiles(t, segs, "09:00", "17:00")
}

func TestDaySegments_AfterWindowClockIn(t *testing.T) {
	date := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	d := workedDay(date, clockAt(date, 18, 0), clockAt(date, 19, 0))

	assert.True(t, d.Late)
	assert.False(t, d.Early)
	assert.True(t, d.Overtime)

	segs := DaySegments(d, testToday)
	assert.Equal(t, []SegmentType{SegmentLate, SegmentOvertime}, segmentTypes(segs))
	assertWellFormed(t, segs)

	// Late caps at the window end; the worked hour is all overtime.
	assert.Equal(t, "09:00", segs[0].Start)
	assert.Equal(t, "17:00", segs[0].End)
	assert.Equal(t, "18:00", segs[1].Start)
	assert.Equal(t, "19:00", segs[1].End)
}

func TestDaySegments_AfterWindowStillClockedIn(t *testing.T) {
	date := startOfDay(testToday)
	d := workedDay(date, clockAt(date, 17, 30), nil)

	segs := DaySegments(d, testToday)
	assert.Equal(t, []SegmentType{SegmentLate}, segmentTypes(segs))
	assertWellFormed(t, segs)
	assert.Equal(t, "09:00", segs[0].Start)
	assert.Equal(t, "17:00", segs[0].End)
}

func TestDaySegments_ExactOnTimeSuppressesZeroWidth(t *testing.T) {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	d := workedDay(date, clockAt(date, 9, 0), clockAt(date, 17, 0))

	assert.False(t, d.Late)
	assert.False(t, d.Early)
	assert.False(t, d.Overtime)

	segs := DaySegments(d, testToday)
	require.Len(t, segs, 1)
	assert.Equal(t, SegmentWorking, segs[0].Type)
	assert.Equal(t, "09:00", segs[0].Start)
	assert.Equal(t, "17:00", segs[0].End)
}

func TestDaySegments_LabelsAreDeterministic(t *testing.T) {
	date := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	d := workedDay(date, clockAt(date, 9, 30), clockAt(date, 16, 45))

	segs := DaySegments(d, testToday)
	require.NotEmpty(t, segs)
	assert.Equal(t, "Late", segs[0].Label)
	assert.Equal(t, "Late from 09:00 to 09:30", segs[0].FullLabel)

	// Same input, same output.
	assert.Equal(t, segs, DaySegments(d, testToday))
}

func TestComputeFlags(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		clockIn  *time.Time
		clockOut *time.Time
		want     Flags
	}{
		{"on time exact boundaries", clockAt(date, 9, 0), clockAt(date, 17, 0), Flags{}},
		{"one minute late", clockAt(date, 9, 1), clockAt(date, 17, 0), Flags{Late: true}},
		{"one minute early out", clockAt(date, 8, 0), clockAt(date, 16, 59), Flags{Early: true}},
		{"one minute overtime", clockAt(date, 8, 0), clockAt(date, 17, 1), Flags{Overtime: true}},
		{"no clock out yet", clockAt(date, 9, 45), nil, Flags{Late: true}},
		{"late and early", clockAt(date, 10, 0), clockAt(date, 15, 0), Flags{Late: true, Early: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeFlags(*tc.clockIn, tc.clockOut))
		})
	}
}
