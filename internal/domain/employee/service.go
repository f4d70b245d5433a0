package employee

import "context"

// EmployeeService defines the admin-facing directory surface plus the
// worker's own record lookup.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Me(ctx context.Context) (EmployeeResponse, error)
}
