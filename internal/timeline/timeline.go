// Package timeline derives display segments and monthly statistics from raw
// clock-in/clock-out data. Everything in here is pure: no clock reads, no
// I/O, and identical inputs always produce identical outputs, so callers are
// free to recompute on every render or request.
package timeline

import (
	"fmt"
	"time"
)

// Standard workday window and display scale, in minutes from midnight.
const (
	windowStart = 9 * 60  // 09:00
	windowEnd   = 17 * 60 // 17:00
	scaleStart  = 8 * 60  // 08:00, left edge of the rendered timeline
	scaleEnd    = 19 * 60 // 19:00, right edge of the rendered timeline
)

type SegmentType string

const (
	SegmentHoliday      SegmentType = "holiday"
	SegmentDayOff       SegmentType = "dayoff"
	SegmentAbsent       SegmentType = "absent"
	SegmentEarlyArrival SegmentType = "early-arrival"
	SegmentLate         SegmentType = "late"
	SegmentWorking      SegmentType = "working"
	SegmentEarly        SegmentType = "early"
	SegmentOvertime     SegmentType = "overtime"
)

// Segment is one labeled, time-bounded portion of a day's timeline.
// Start and End are "HH:MM" times of day; Start is always before End.
type Segment struct {
	Type      SegmentType `json:"type"`
	Start     string      `json:"start"`
	End       string      `json:"end"`
	Label     string      `json:"label"`
	FullLabel string      `json:"full_label"`
}

// Day is the engine's view of one employee-day. Late, Early and Overtime are
// authoritative inputs here: they are computed by ComputeFlags when clock
// data is recorded and are never re-derived from the timestamps during
// segment generation, so a single set of threshold comparisons governs both.
type Day struct {
	Date     time.Time
	Holiday  bool
	DayOff   bool
	ClockIn  *time.Time
	ClockOut *time.Time
	Late     bool
	Early    bool
	Overtime bool
}

// Flags are the derived booleans for a worked day.
type Flags struct {
	Late     bool
	Early    bool
	Overtime bool
}

// ComputeFlags derives the late/early/overtime flags from clock timestamps.
// All comparisons are strict: arriving at exactly 09:00 is not late, and
// leaving at exactly 17:00 is neither early nor overtime. A missing clock-out
// leaves Early and Overtime false.
func ComputeFlags(clockIn time.Time, clockOut *time.Time) Flags {
	f := Flags{
		Late: minuteOfDay(clockIn) > windowStart,
	}
	if clockOut != nil {
		out := minuteOfDay(*clockOut)
		f.Early = out < windowEnd
		f.Overtime = out > windowEnd
	}
	return f
}

// DaySegments maps one day to its ordered, non-overlapping segment list.
// today decides whether a clock-less weekday is absent (strictly in the past)
// or simply has no data yet. Rules are priority-ordered and short-circuit:
// holiday beats everything, then day-off, then absence, then clock tiling.
func DaySegments(d Day, today time.Time) []Segment {
	switch {
	case d.Holiday:
		return []Segment{fullWindowSegment(SegmentHoliday)}
	case d.DayOff:
		return []Segment{fullWindowSegment(SegmentDayOff)}
	case d.ClockIn == nil:
		if startOfDay(d.Date).Before(startOfDay(today)) {
			return []Segment{fullWindowSegment(SegmentAbsent)}
		}
		// Future or current day without clock data: nothing to show yet.
		return []Segment{}
	}

	ci := minuteOfDay(*d.ClockIn)

	effectiveEnd := windowEnd
	if d.Early && d.ClockOut != nil {
		effectiveEnd = minuteOfDay(*d.ClockOut)
	}

	var segs []Segment
	if ci <= windowStart {
		segs = appendSegment(segs, SegmentEarlyArrival, ci, windowStart)
		segs = appendSegment(segs, SegmentWorking, windowStart, effectiveEnd)
	} else {
		// A clock-in past the window caps the late segment at the window
		// end; the worked time then lands entirely in overtime below.
		segs = appendSegment(segs, SegmentLate, windowStart, min(ci, windowEnd))
		segs = appendSegment(segs, SegmentWorking, ci, effectiveEnd)
	}

	if d.ClockOut != nil {
		co := minuteOfDay(*d.ClockOut)
		if d.Early {
			segs = appendSegment(segs, SegmentEarly, co, windowEnd)
		}
		if d.Overtime {
			segs = appendSegment(segs, SegmentOvertime, max(windowEnd, ci), co)
		}
	}

	if segs == nil {
		segs = []Segment{}
	}
	return segs
}

// appendSegment adds a segment unless it would be zero-width or inverted.
func appendSegment(segs []Segment, typ SegmentType, start, end int) []Segment {
	if start >= end {
		return segs
	}
	return append(segs, newSegment(typ, start, end))
}

func fullWindowSegment(typ SegmentType) Segment {
	return newSegment(typ, windowStart, windowEnd)
}

func newSegment(typ SegmentType, start, end int) Segment {
	s, e := formatClock(start), formatClock(end)
	return Segment{
		Type:      typ,
		Start:     s,
		End:       e,
		Label:     segmentLabels[typ],
		FullLabel: fmt.Sprintf("%s from %s to %s", segmentLabels[typ], s, e),
	}
}

var segmentLabels = map[SegmentType]string{
	SegmentHoliday:      "Holiday",
	SegmentDayOff:       "Day Off",
	SegmentAbsent:       "Absent",
	SegmentEarlyArrival: "Early Arrival",
	SegmentLate:         "Late",
	SegmentWorking:      "Working",
	SegmentEarly:        "Left Early",
	SegmentOvertime:     "Overtime",
}

// minuteOfDay returns the time-of-day component of t in minutes. The date
// part is deliberately ignored: every threshold comparison in this package
// works on times of day only.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
