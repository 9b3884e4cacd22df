package attendance

import "errors"

// Attendance domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrDayOffRequested   = errors.New("a day off is requested for this date")

	// Day-off errors
	ErrDayOffConflict = errors.New("this date already has attendance data")
	ErrDayOffInPast   = errors.New("cannot request a day off for a past date")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
