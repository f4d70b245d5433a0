package employee

import "time"

// DefaultDailyHours is the contracted daily baseline applied when an
// employee record carries none.
const DefaultDailyHours = 8

// DefaultVacationDays is the yearly vacation allowance for new workers.
const DefaultVacationDays = 22

type Employee struct {
	ID               string
	UserID           string
	OvertimeRate     float64
	AllowDiets       bool
	AllowTransport   bool
	AllowLodging     bool
	Salary           float64
	DailyHours       float64
	WeeklyHours      float64
	VacationDays     int
	VacationDaysUsed int
	VacationYear     int
	DNI              *string
	Birthdate        *string
	Phone            *string
	ContactEmail     *string
	Position         *string
	ContractType     *string
	PayInstallments  int
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined from users for listings
	Email *string
}

// VacationBalance is the slice of the employee record the vacation
// workflow consumes.
type VacationBalance struct {
	TotalDays int
	UsedDays  int
	Year      int
}

// Available returns the days still open for booking.
func (b VacationBalance) Available() int {
	return b.TotalDays - b.UsedDays
}
