package employee

import "github.com/jornadahq/jornada-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	OvertimeRate    *float64 `json:"overtime_rate,omitempty"`
	AllowDiets      *bool    `json:"allow_diets,omitempty"`
	AllowTransport  *bool    `json:"allow_transport,omitempty"`
	AllowLodging    *bool    `json:"allow_lodging,omitempty"`
	Salary          *float64 `json:"salary,omitempty"`
	DailyHours      *float64 `json:"daily_hours,omitempty"`
	WeeklyHours     *float64 `json:"weekly_hours,omitempty"`
	VacationDays    *int     `json:"vacation_days,omitempty"`
	DNI             *string  `json:"dni,omitempty"`
	Birthdate       *string  `json:"birthdate,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	ContactEmail    *string  `json:"contact_email,omitempty"`
	Position        *string  `json:"position,omitempty"`
	ContractType    *string  `json:"contract_type,omitempty"`
	PayInstallments *int     `json:"pay_installments,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if r.DailyHours != nil && (*r.DailyHours <= 0 || *r.DailyHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_hours",
			Message: "daily_hours must be between 0 and 24",
		})
	}

	if r.VacationDays != nil && *r.VacationDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_days",
			Message: "vacation_days must not be negative",
		})
	}

	if r.Birthdate != nil && *r.Birthdate != "" {
		if _, ok := validator.IsValidDate(*r.Birthdate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birthdate",
				Message: "birthdate must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID             string   `json:"-"`
	OvertimeRate   *float64 `json:"overtime_rate,omitempty"`
	AllowDiets     *bool    `json:"allow_diets,omitempty"`
	AllowTransport *bool    `json:"allow_transport,omitempty"`
	AllowLodging   *bool    `json:"allow_lodging,omitempty"`
	Salary         *float64 `json:"salary,omitempty"`
	DailyHours     *float64 `json:"daily_hours,omitempty"`
	WeeklyHours    *float64 `json:"weekly_hours,omitempty"`
	VacationDays   *int     `json:"vacation_days,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.DailyHours != nil && (*r.DailyHours <= 0 || *r.DailyHours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_hours",
			Message: "daily_hours must be between 0 and 24",
		})
	}

	if r.VacationDays != nil && *r.VacationDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_days",
			Message: "vacation_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	OvertimeRate     float64 `json:"overtime_rate"`
	AllowDiets       bool    `json:"allow_diets"`
	AllowTransport   bool    `json:"allow_transport"`
	AllowLodging     bool    `json:"allow_lodging"`
	Salary           float64 `json:"salary"`
	DailyHours       float64 `json:"daily_hours"`
	WeeklyHours      float64 `json:"weekly_hours"`
	VacationDays     int     `json:"vacation_days"`
	VacationDaysUsed int     `json:"vacation_days_used"`
	VacationYear     int     `json:"vacation_year"`
	DNI              *string `json:"dni,omitempty"`
	Birthdate        *string `json:"birthdate,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	ContactEmail     *string `json:"contact_email,omitempty"`
	Position         *string `json:"position,omitempty"`
	ContractType     *string `json:"contract_type,omitempty"`
	PayInstallments  int     `json:"pay_installments"`
}
