package attendance

import (
	"context"
	"time"
)

// DayRecordRepository defines data access methods for attendance day records.
// All methods include companyID to prevent cross-company data access.
type DayRecordRepository interface {
	// Create inserts a new day record
	Create(ctx context.Context, record DayRecord) (DayRecord, error)

	// Update rewrites an existing day record
	Update(ctx context.Context, record DayRecord) error

	// GetByID retrieves a record by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (DayRecord, error)

	// GetByEmployeeAndDate retrieves the record for one employee-day, nil if none.
	// Used to prevent double clock-in and day-off conflicts.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*DayRecord, error)

	// GetOpenSession retrieves the latest record with a clock-in but no clock-out
	GetOpenSession(ctx context.Context, employeeID string, companyID string) (DayRecord, error)

	// ListByRange retrieves all records for one employee with from <= date < to
	ListByRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]DayRecord, error)
}
