package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/workhive/workhive-backend-go/internal/domain/attendance"
	"github.com/workhive/workhive-backend-go/internal/domain/employee"
	"github.com/workhive/workhive-backend-go/internal/pkg/database"
	"github.com/workhive/workhive-backend-go/internal/repository/postgresql"
	"github.com/workhive/workhive-backend-go/internal/timeline"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.DayRecordRepository
	employee.EmployeeRepository

	// now is swappable for tests; defaults to time.Now
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	recordRepo attendance.DayRecordRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                  db,
		DayRecordRepository: recordRepo,
		EmployeeRepository:  employeeRepo,
		now:                 time.Now,
	}
}

// employeeFromClaims extracts the authenticated employee and company IDs.
func employeeFromClaims(ctx context.Context) (employeeID, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	companyID, ok = claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	employeeID, companyID, err := employeeFromClaims(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	nowUTC := s.now().UTC()
	today := startOfDay(nowUTC)

	flags := timeline.ComputeFlags(nowUTC, nil)

	record := attendance.DayRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       today,
		Status:     attendance.StatusPresent,
		ClockIn:    &nowUTC,
		IsLate:     flags.Late,
		Note:       req.Note,
	}

	// Check and write under one transaction so concurrent clock-ins for the
	// same day cannot both pass the existence check.
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.DayRecordRepository.GetByEmployeeAndDate(txCtx, employeeID, today, companyID)
		if err != nil {
			return fmt.Errorf("failed to check today's record: %w", err)
		}

		if existing != nil {
			if existing.ClockIn != nil {
				return attendance.ErrAlreadyClockedIn
			}
			if existing.DayOff {
				return attendance.ErrDayOffRequested
			}
			// An absence row was materialized before the clock-in arrived;
			// rewrite it rather than inserting a duplicate day.
			record.ID = existing.ID
			record.Holiday = existing.Holiday
			if err := s.DayRecordRepository.Update(txCtx, record); err != nil {
				return fmt.Errorf("failed to update day record: %w", err)
			}
			return nil
		}

		record, err = s.DayRecordRepository.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create day record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.DayResponse{}, err
	}

	return s.mapRecordToResponse(record), nil
}

// ClockOut implements attendance.AttendanceService. All three derived flags
// are recomputed from both timestamps in one call, so the stored flags can
// never drift from the clock data they were derived from.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	employeeID, companyID, err := employeeFromClaims(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	record, err := s.DayRecordRepository.GetOpenSession(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrNotClockedIn) {
			return attendance.DayResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.DayResponse{}, fmt.Errorf("failed to get open session: %w", err)
	}

	nowUTC := s.now().UTC()
	flags := timeline.ComputeFlags(*record.ClockIn, &nowUTC)

	record.ClockOut = &nowUTC
	record.IsLate = flags.Late
	record.IsEarly = flags.Early
	record.HasOvertime = flags.Overtime
	if req.Note != nil {
		record.Note = req.Note
	}

	if err := s.DayRecordRepository.Update(ctx, record); err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to update day record: %w", err)
	}

	return s.mapRecordToResponse(record), nil
}

// RequestDayOff implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RequestDayOff(ctx context.Context, req attendance.DayOffRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	employeeID, companyID, err := employeeFromClaims(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	nowUTC := s.now().UTC()
	if date.Before(startOfDay(nowUTC)) {
		return attendance.DayResponse{}, attendance.ErrDayOffInPast
	}

	record := attendance.DayRecord{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       date,
		Status:     attendance.StatusDayOff,
		DayOff:     true,
		Note:       req.Reason,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		existing, err := s.DayRecordRepository.GetByEmployeeAndDate(txCtx, employeeID, date, companyID)
		if err != nil {
			return fmt.Errorf("failed to check existing record: %w", err)
		}
		if existing != nil {
			return attendance.ErrDayOffConflict
		}

		record, err = s.DayRecordRepository.Create(txCtx, record)
		if err != nil {
			return fmt.Errorf("failed to create day-off record: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.DayResponse{}, err
	}

	return s.mapRecordToResponse(record), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.DayResponse, error) {
	employeeID, companyID, err := employeeFromClaims(ctx)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	nowUTC := s.now().UTC()
	today := startOfDay(nowUTC)

	record, err := s.DayRecordRepository.GetByEmployeeAndDate(ctx, employeeID, today, companyID)
	if err != nil {
		return attendance.DayResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}

	if record == nil {
		// No data yet: synthesize an empty day so the client still gets
		// the holiday overlay on weekends.
		return s.mapDayToResponse(synthesizeDay(today), nil), nil
	}

	return s.mapRecordToResponse(*record), nil
}

// GetCalendar implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetCalendar(ctx context.Context, filter attendance.CalendarFilter) (attendance.CalendarResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	employeeID, companyID, err := employeeFromClaims(ctx)
	if err != nil {
		return attendance.CalendarResponse{}, err
	}

	nowUTC := s.now().UTC()
	monthStart := monthFromFilter(filter, nowUTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	records, err := s.DayRecordRepository.ListByRange(ctx, employeeID, monthStart, monthEnd, companyID)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to list month records: %w", err)
	}

	days, responses := s.assembleMonth(monthStart, monthEnd, records)

	return attendance.CalendarResponse{
		Month: monthStart.Format("2006-01"),
		Days:  responses,
		Stats: timeline.ComputeMonthlyStats(days, nowUTC),
	}, nil
}

// GetMonthlyStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMonthlyStats(ctx context.Context, filter attendance.CalendarFilter) (attendance.StatsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	employeeID, companyID, err := employeeFromClaims(ctx)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	nowUTC := s.now().UTC()
	monthStart := monthFromFilter(filter, nowUTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	records, err := s.DayRecordRepository.ListByRange(ctx, employeeID, monthStart, monthEnd, companyID)
	if err != nil {
		return attendance.StatsResponse{}, fmt.Errorf("failed to list month records: %w", err)
	}

	days, _ := s.assembleMonth(monthStart, monthEnd, records)

	return attendance.StatsResponse{
		Month: monthStart.Format("2006-01"),
		Stats: timeline.ComputeMonthlyStats(days, nowUTC),
	}, nil
}

// assembleMonth merges stored records with synthesized days so every calendar
// day of the month appears exactly once, in order.
func (s *AttendanceServiceImpl) assembleMonth(monthStart, monthEnd time.Time, records []attendance.DayRecord) ([]timeline.Day, []attendance.DayResponse) {
	byDate := make(map[string]attendance.DayRecord, len(records))
	for _, rec := range records {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}

	var days []timeline.Day
	var responses []attendance.DayResponse
	for date := monthStart; date.Before(monthEnd); date = date.AddDate(0, 0, 1) {
		if rec, ok := byDate[date.Format("2006-01-02")]; ok {
			days = append(days, recordToDay(rec))
			responses = append(responses, s.mapRecordToResponse(rec))
		} else {
			day := synthesizeDay(date)
			days = append(days, day)
			responses = append(responses, s.mapDayToResponse(day, nil))
		}
	}
	return days, responses
}

// recordToDay builds the engine input for a stored record. Weekends are
// holidays even when the stored record doesn't say so.
func recordToDay(rec attendance.DayRecord) timeline.Day {
	return timeline.Day{
		Date:     rec.Date,
		Holiday:  rec.Holiday || isWeekend(rec.Date),
		DayOff:   rec.DayOff,
		ClockIn:  rec.ClockIn,
		ClockOut: rec.ClockOut,
		Late:     rec.IsLate,
		Early:    rec.IsEarly,
		Overtime: rec.HasOvertime,
	}
}

func synthesizeDay(date time.Time) timeline.Day {
	return timeline.Day{
		Date:    date,
		Holiday: isWeekend(date),
	}
}

func (s *AttendanceServiceImpl) mapRecordToResponse(rec attendance.DayRecord) attendance.DayResponse {
	resp := s.mapDayToResponse(recordToDay(rec), rec.Note)
	resp.Status = rec.Status
	return resp
}

func (s *AttendanceServiceImpl) mapDayToResponse(day timeline.Day, note *string) attendance.DayResponse {
	nowUTC := s.now().UTC()
	segments := timeline.DaySegments(day, nowUTC)

	return attendance.DayResponse{
		Date:            day.Date.Format("2006-01-02"),
		Status:          statusForDay(day, nowUTC),
		IsHoliday:       day.Holiday,
		DayOffRequested: day.DayOff,
		ClockIn:         clockPtrToString(day.ClockIn),
		ClockOut:        clockPtrToString(day.ClockOut),
		IsLate:          day.Late,
		IsEarly:         day.Early,
		HasOvertime:     day.Overtime,
		Note:            note,
		Segments:        segments,
	}
}

// statusForDay derives the display status for synthesized days.
func statusForDay(day timeline.Day, now time.Time) string {
	switch {
	case day.Holiday:
		return attendance.StatusHoliday
	case day.DayOff:
		return attendance.StatusDayOff
	case day.ClockIn != nil:
		return attendance.StatusPresent
	case startOfDay(day.Date).Before(startOfDay(now)):
		return attendance.StatusAbsent
	default:
		return attendance.StatusPending
	}
}

func monthFromFilter(filter attendance.CalendarFilter, now time.Time) time.Time {
	if filter.Month != "" {
		month, _ := time.Parse("2006-01", filter.Month)
		return month
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// clockPtrToString safely converts a *time.Time to an "HH:MM" string.
func clockPtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04")
	return &formatted
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
