package employee

import "time"

// Employee is the minimal roster entry attendance records belong to.
type Employee struct {
	ID        string
	CompanyID string
	Code      string // login code, format NNNN-NNNN
	Name      string
	Position  *string
	PINHash   string // bcrypt hash of the clock-in PIN
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
