package attendance

import (
	"github.com/workhive/workhive-backend-go/internal/pkg/validator"
	"github.com/workhive/workhive-backend-go/internal/timeline"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	Note *string `json:"note,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	Note *string `json:"note,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayOffRequest struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Reason *string `json:"reason,omitempty"`
}

func (r *DayOffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CalendarFilter selects one calendar month of a single employee.
type CalendarFilter struct {
	Month string `json:"month"` // YYYY-MM, defaults to the current month
}

func (f *CalendarFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != "" {
		if _, ok := validator.IsValidMonth(f.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayResponse is one calendar day with its computed timeline.
type DayResponse struct {
	Date            string             `json:"date"`
	Status          string             `json:"status"`
	IsHoliday       bool               `json:"is_holiday"`
	DayOffRequested bool               `json:"day_off_requested"`
	ClockIn         *string            `json:"clock_in,omitempty"`
	ClockOut        *string            `json:"clock_out,omitempty"`
	IsLate          bool               `json:"is_late"`
	IsEarly         bool               `json:"is_early"`
	HasOvertime     bool               `json:"has_overtime"`
	Note            *string            `json:"note,omitempty"`
	Segments        []timeline.Segment `json:"segments"`
}

// CalendarResponse is a full month view: every day of the month in order,
// plus the aggregated counters recomputed from the same day set.
type CalendarResponse struct {
	Month string                `json:"month"`
	Days  []DayResponse         `json:"days"`
	Stats timeline.MonthlyStats `json:"stats"`
}

type StatsResponse struct {
	Month string                `json:"month"`
	Stats timeline.MonthlyStats `json:"stats"`
}
