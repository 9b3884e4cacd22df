package employee

import "context"

type EmployeeRepository interface {
	// GetByID retrieves an employee by ID with company isolation
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetByCode retrieves an employee by their globally unique login code
	GetByCode(ctx context.Context, code string) (Employee, error)

	// ListActive retrieves every active employee, all companies.
	// Used by the absence materialization job.
	ListActive(ctx context.Context) ([]Employee, error)
}
