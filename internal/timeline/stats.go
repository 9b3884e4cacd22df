package timeline

import "time"

// MonthlyStats aggregates one calendar month of days. A day contributes to at
// most one of DayOff/Absent; LateClockIn, EarlyClockOut and Overtime are
// independent and can all fire on the same worked day.
type MonthlyStats struct {
	DayOff        int `json:"day_off"`
	LateClockIn   int `json:"late_clock_in"`
	EarlyClockOut int `json:"early_clock_out"`
	Overtime      int `json:"overtime"`
	Absent        int `json:"absent"`
}

// ComputeMonthlyStats recomputes the counters from scratch over the given
// days. It is always a full pass, never an incremental patch, so repeated
// calls over an unchanged set cannot drift.
func ComputeMonthlyStats(days []Day, today time.Time) MonthlyStats {
	var stats MonthlyStats
	todayStart := startOfDay(today)

	for _, d := range days {
		if d.Holiday || d.DayOff {
			// Holidays and day-offs never count toward any other bucket,
			// even if stray clock data or flags made it onto the record.
			stats.DayOff++
			continue
		}

		if d.ClockIn == nil {
			if startOfDay(d.Date).Before(todayStart) {
				stats.Absent++
			}
			continue
		}

		if d.Late {
			stats.LateClockIn++
		}
		if d.Early {
			stats.EarlyClockOut++
		}
		if d.Overtime {
			stats.Overtime++
		}
	}

	return stats
}
