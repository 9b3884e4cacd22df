package attendance

import (
	"time"
)

// Day record status values. A stored record holds exactly one of the first
// four; StatusPending is derived at read time for current or future days
// with no data yet and is never persisted.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusDayOff  = "dayoff"
	StatusHoliday = "holiday"
	StatusPending = "pending"
)

// DayRecord is one employee-day of attendance. The IsLate/IsEarly/HasOvertime
// columns are derived from the clock timestamps via timeline.ComputeFlags and
// are rewritten together with them on every mutation, never patched alone.
type DayRecord struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	Date        time.Time
	Status      string
	Holiday     bool
	DayOff      bool
	ClockIn     *time.Time
	ClockOut    *time.Time
	IsLate      bool
	IsEarly     bool
	HasOvertime bool
	Note        *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
