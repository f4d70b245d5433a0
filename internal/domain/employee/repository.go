package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
// The attendance and vacation cores consume the baseline and balance
// methods; everything else serves the admin CRUD surface.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// List returns all employees joined with their user email, newest first.
	List(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	// GetDailyBaseline returns the worker's contracted daily hours,
	// falling back to DefaultDailyHours when no record exists.
	GetDailyBaseline(ctx context.Context, userID string) (float64, error)

	GetVacationBalance(ctx context.Context, userID string) (VacationBalance, error)

	// SetVacationUsed overwrites used days and balance year (year rollover).
	SetVacationUsed(ctx context.Context, userID string, used, year int) error

	// IncrementVacationUsed adds days to the used counter unconditionally.
	IncrementVacationUsed(ctx context.Context, userID string, days int) error
}
