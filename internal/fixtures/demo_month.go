// Package fixtures generates deterministic demo data. Nothing in here is
// part of the engine contract; tests and seed tooling use it because the
// same inputs always yield the same records, unlike a random generator.
package fixtures

import (
	"fmt"
	"time"

	"github.com/workhive/workhive-backend-go/internal/domain/attendance"
	"github.com/workhive/workhive-backend-go/internal/timeline"
)

func strPtr(s string) *string { return &s }

// DemoMonth builds one month of day records for an employee, following a
// fixed day-of-month pattern:
//
//	weekends        -> no record (the calendar synthesizes the holiday)
//	day % 10 == 9   -> requested day off
//	day % 10 == 7   -> no record (absent once the day has passed)
//	day % 10 == 5   -> late arrival 09:20, early leave 16:30
//	day % 10 == 3   -> early arrival 08:50, overtime until 18:15
//	otherwise       -> on the dot 09:00-17:00
func DemoMonth(employeeID, companyID string, year int, month time.Month) []attendance.DayRecord {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var records []attendance.DayRecord
	for date := monthStart; date.Before(monthEnd); date = date.AddDate(0, 0, 1) {
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		switch date.Day() % 10 {
		case 9:
			records = append(records, dayOffRecord(employeeID, companyID, date))
		case 7:
			// gap day
		case 5:
			records = append(records, workedRecord(employeeID, companyID, date, 9, 20, 16, 30))
		case 3:
			records = append(records, workedRecord(employeeID, companyID, date, 8, 50, 18, 15))
		default:
			records = append(records, workedRecord(employeeID, companyID, date, 9, 0, 17, 0))
		}
	}
	return records
}

func demoID(date time.Time) string {
	return fmt.Sprintf("demo-%s", date.Format("2006-01-02"))
}

func dayOffRecord(employeeID, companyID string, date time.Time) attendance.DayRecord {
	return attendance.DayRecord{
		ID:         demoID(date),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       date,
		Status:     attendance.StatusDayOff,
		DayOff:     true,
		Note:       strPtr("demo day off"),
	}
}

func workedRecord(employeeID, companyID string, date time.Time, inH, inM, outH, outM int) attendance.DayRecord {
	clockIn := time.Date(date.Year(), date.Month(), date.Day(), inH, inM, 0, 0, time.UTC)
	clockOut := time.Date(date.Year(), date.Month(), date.Day(), outH, outM, 0, 0, time.UTC)
	flags := timeline.ComputeFlags(clockIn, &clockOut)

	return attendance.DayRecord{
		ID:          demoID(date),
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		Date:        date,
		Status:      attendance.StatusPresent,
		ClockIn:     &clockIn,
		ClockOut:    &clockOut,
		IsLate:      flags.Late,
		IsEarly:     flags.Early,
		HasOvertime: flags.Overtime,
	}
}
