package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workhive/workhive-backend-go/internal/domain/attendance"
	"github.com/workhive/workhive-backend-go/internal/pkg/database"
)

type dayRecordRepository struct {
	db *database.DB
}

func NewDayRecordRepository(db *database.DB) attendance.DayRecordRepository {
	return &dayRecordRepository{db: db}
}

const dayRecordColumns = `
	id, employee_id, company_id, date, status, is_holiday, day_off_requested,
	clock_in, clock_out, is_late, is_early, has_overtime, note,
	created_at, updated_at
`

func scanDayRecord(row pgx.Row) (attendance.DayRecord, error) {
	var rec attendance.DayRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date, &rec.Status,
		&rec.Holiday, &rec.DayOff,
		&rec.ClockIn, &rec.ClockOut,
		&rec.IsLate, &rec.IsEarly, &rec.HasOvertime, &rec.Note,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.DayRecordRepository.
func (r *dayRecordRepository) Create(ctx context.Context, record attendance.DayRecord) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_records (
			id, employee_id, company_id, date, status, is_holiday, day_off_requested,
			clock_in, clock_out, is_late, is_early, has_overtime, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.CompanyID,
		record.Date,
		record.Status,
		record.Holiday,
		record.DayOff,
		record.ClockIn,
		record.ClockOut,
		record.IsLate,
		record.IsEarly,
		record.HasOvertime,
		record.Note,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.DayRecord{}, fmt.Errorf("failed to create day record: %w", err)
	}

	return record, nil
}

// Update implements attendance.DayRecordRepository.
func (r *dayRecordRepository) Update(ctx context.Context, record attendance.DayRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE day_records SET
			status = $1,
			is_holiday = $2,
			day_off_requested = $3,
			clock_in = $4,
			clock_out = $5,
			is_late = $6,
			is_early = $7,
			has_overtime = $8,
			note = $9,
			updated_at = NOW()
		WHERE id = $10 AND company_id = $11
	`

	tag, err := q.Exec(ctx, query,
		record.Status,
		record.Holiday,
		record.DayOff,
		record.ClockIn,
		record.ClockOut,
		record.IsLate,
		record.IsEarly,
		record.HasOvertime,
		record.Note,
		record.ID,
		record.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update day record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// GetByID implements attendance.DayRecordRepository.
func (r *dayRecordRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayRecordColumns + `
		FROM day_records
		WHERE id = $1 AND company_id = $2
	`

	rec, err := scanDayRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.DayRecord{}, fmt.Errorf("failed to get day record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.DayRecordRepository.
func (r *dayRecordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayRecordColumns + `
		FROM day_records
		WHERE employee_id = $1 AND date = $2 AND company_id = $3
	`

	rec, err := scanDayRecord(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day record by date: %w", err)
	}

	return &rec, nil
}

// GetOpenSession implements attendance.DayRecordRepository.
func (r *dayRecordRepository) GetOpenSession(ctx context.Context, employeeID string, companyID string) (attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayRecordColumns + `
		FROM day_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND clock_in IS NOT NULL
		  AND clock_out IS NULL
		ORDER BY clock_in DESC
		LIMIT 1
	`

	rec, err := scanDayRecord(q.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DayRecord{}, attendance.ErrNotClockedIn
		}
		return attendance.DayRecord{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return rec, nil
}

// ListByRange implements attendance.DayRecordRepository.
func (r *dayRecordRepository) ListByRange(ctx context.Context, employeeID string, from, to time.Time, companyID string) ([]attendance.DayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dayRecordColumns + `
		FROM day_records
		WHERE employee_id = $1
		  AND company_id = $2
		  AND date >= $3 AND date < $4
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list day records: %w", err)
	}
	defer rows.Close()

	var records []attendance.DayRecord
	for rows.Next() {
		rec, err := scanDayRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan day record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day records: %w", err)
	}

	return records, nil
}
