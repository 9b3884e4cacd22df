package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workhive/workhive-backend-go/internal/domain/attendance"
	"github.com/workhive/workhive-backend-go/internal/domain/employee"
)

// AttendanceJobs materializes absence records for closed-out days. The
// calendar and stats endpoints recompute absence from scratch on every read
// regardless; these rows exist so the audit trail has something to point at.
type AttendanceJobs struct {
	recordRepo   attendance.DayRecordRepository
	employeeRepo employee.EmployeeRepository
}

func NewAttendanceJobs(
	recordRepo attendance.DayRecordRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		recordRepo:   recordRepo,
		employeeRepo: employeeRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("materialize_absences", 0, j.MaterializeAbsences)
}

// MaterializeAbsences inserts an absent record for every active employee who
// has no record for yesterday. Scheduled daily at 00:00 UTC; safe to rerun
// since existing records are left alone. Weekends are skipped: they are
// holidays, not absences.
func (j *AttendanceJobs) MaterializeAbsences(ctx context.Context) error {
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	if wd := yesterday.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	marked := 0
	for _, emp := range employees {
		existing, err := j.recordRepo.GetByEmployeeAndDate(ctx, emp.ID, yesterday, emp.CompanyID)
		if err != nil {
			slog.Error("Cron: failed to check day record", "employee_id", emp.ID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		_, err = j.recordRepo.Create(ctx, attendance.DayRecord{
			ID:         uuid.NewString(),
			EmployeeID: emp.ID,
			CompanyID:  emp.CompanyID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		})
		if err != nil {
			slog.Error("Cron: failed to create absence record", "employee_id", emp.ID, "error", err)
			continue
		}
		marked++
	}

	if marked > 0 {
		slog.Info("Cron: materialized absences", "date", yesterday.Format("2006-01-02"), "count", marked)
	}
	return nil
}
