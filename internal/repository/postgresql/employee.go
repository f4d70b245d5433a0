package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/employee"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
)

const employeeColumns = `
	id, user_id, overtime_rate, allow_diets, allow_transport, allow_lodging,
	salary, daily_hours, weekly_hours, vacation_days, vacation_days_used,
	vacation_year, dni, birthdate, phone, contact_email, position,
	contract_type, pay_installments, created_at, updated_at
`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row, emp *employee.Employee) error {
	return row.Scan(
		&emp.ID,
		&emp.UserID,
		&emp.OvertimeRate,
		&emp.AllowDiets,
		&emp.AllowTransport,
		&emp.AllowLodging,
		&emp.Salary,
		&emp.DailyHours,
		&emp.WeeklyHours,
		&emp.VacationDays,
		&emp.VacationDaysUsed,
		&emp.VacationYear,
		&emp.DNI,
		&emp.Birthdate,
		&emp.Phone,
		&emp.ContactEmail,
		&emp.Position,
		&emp.ContractType,
		&emp.PayInstallments,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, err
	}

	query := `
		INSERT INTO employees (
			id, user_id, overtime_rate, allow_diets, allow_transport, allow_lodging,
			salary, daily_hours, weekly_hours, vacation_days, vacation_days_used,
			vacation_year, dni, birthdate, phone, contact_email, position,
			contract_type, pay_installments
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING` + employeeColumns

	var created employee.Employee
	err = scanEmployee(q.QueryRow(ctx, query,
		id.String(),
		emp.UserID,
		emp.OvertimeRate,
		emp.AllowDiets,
		emp.AllowTransport,
		emp.AllowLodging,
		emp.Salary,
		emp.DailyHours,
		emp.WeeklyHours,
		emp.VacationDays,
		emp.VacationDaysUsed,
		emp.VacationYear,
		emp.DNI,
		emp.Birthdate,
		emp.Phone,
		emp.ContactEmail,
		emp.Position,
		emp.ContractType,
		emp.PayInstallments,
	), &created)
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + `FROM employees WHERE id = $1`

	var found employee.Employee
	err := scanEmployee(q.QueryRow(ctx, query, id), &found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + employeeColumns + `FROM employees WHERE user_id = $1`

	var found employee.Employee
	err := scanEmployee(q.QueryRow(ctx, query, userID), &found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	return found, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.overtime_rate, e.allow_diets, e.allow_transport,
			   e.allow_lodging, e.salary, e.daily_hours, e.weekly_hours,
			   e.vacation_days, e.vacation_days_used, e.vacation_year, e.dni,
			   e.birthdate, e.phone, e.contact_email, e.position, e.contract_type,
			   e.pay_installments, e.created_at, e.updated_at, u.email
		FROM employees e
		JOIN users u ON u.id = e.user_id
		ORDER BY e.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID,
			&emp.UserID,
			&emp.OvertimeRate,
			&emp.AllowDiets,
			&emp.AllowTransport,
			&emp.AllowLodging,
			&emp.Salary,
			&emp.DailyHours,
			&emp.WeeklyHours,
			&emp.VacationDays,
			&emp.VacationDaysUsed,
			&emp.VacationYear,
			&emp.DNI,
			&emp.Birthdate,
			&emp.Phone,
			&emp.ContactEmail,
			&emp.Position,
			&emp.ContractType,
			&emp.PayInstallments,
			&emp.CreatedAt,
			&emp.UpdatedAt,
			&emp.Email,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET overtime_rate = $1, allow_diets = $2, allow_transport = $3,
			allow_lodging = $4, salary = $5, daily_hours = $6, weekly_hours = $7,
			vacation_days = $8, dni = $9, birthdate = $10, phone = $11,
			contact_email = $12, position = $13, contract_type = $14,
			pay_installments = $15, updated_at = NOW()
		WHERE id = $16
	`

	tag, err := q.Exec(ctx, query,
		emp.OvertimeRate,
		emp.AllowDiets,
		emp.AllowTransport,
		emp.AllowLodging,
		emp.Salary,
		emp.DailyHours,
		emp.WeeklyHours,
		emp.VacationDays,
		emp.DNI,
		emp.Birthdate,
		emp.Phone,
		emp.ContactEmail,
		emp.Position,
		emp.ContractType,
		emp.PayInstallments,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// GetDailyBaseline implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetDailyBaseline(ctx context.Context, userID string) (float64, error) {
	q := GetQuerier(ctx, r.db)

	var hours float64
	err := q.QueryRow(ctx, `SELECT daily_hours FROM employees WHERE user_id = $1`, userID).Scan(&hours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.DefaultDailyHours, nil
		}
		return 0, err
	}
	if hours <= 0 {
		return employee.DefaultDailyHours, nil
	}

	return hours, nil
}

// GetVacationBalance implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetVacationBalance(ctx context.Context, userID string) (employee.VacationBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT vacation_days, vacation_days_used, vacation_year
		FROM employees
		WHERE user_id = $1
	`

	var balance employee.VacationBalance
	err := q.QueryRow(ctx, query, userID).Scan(
		&balance.TotalDays,
		&balance.UsedDays,
		&balance.Year,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.VacationBalance{
				TotalDays: employee.DefaultVacationDays,
				Year:      time.Now().UTC().Year(),
			}, nil
		}
		return employee.VacationBalance{}, err
	}

	return balance, nil
}

// SetVacationUsed implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetVacationUsed(ctx context.Context, userID string, used, year int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET vacation_days_used = $1, vacation_year = $2, updated_at = NOW()
		WHERE user_id = $3
	`

	_, err := q.Exec(ctx, query, used, year, userID)
	return err
}

// IncrementVacationUsed implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) IncrementVacationUsed(ctx context.Context, userID string, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET vacation_days_used = vacation_days_used + $1, updated_at = NOW()
		WHERE user_id = $2
	`

	_, err := q.Exec(ctx, query, days, userID)
	return err
}
