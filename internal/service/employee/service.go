package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jornadahq/jornada-backend-go/internal/domain/employee"
	"github.com/jornadahq/jornada-backend-go/internal/domain/user"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
	"github.com/jornadahq/jornada-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	user.UserRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, userRepo user.UserRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		UserRepository:     userRepo,
	}
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               emp.ID,
		OvertimeRate:     emp.OvertimeRate,
		AllowDiets:       emp.AllowDiets,
		AllowTransport:   emp.AllowTransport,
		AllowLodging:     emp.AllowLodging,
		Salary:           emp.Salary,
		DailyHours:       emp.DailyHours,
		WeeklyHours:      emp.WeeklyHours,
		VacationDays:     emp.VacationDays,
		VacationDaysUsed: emp.VacationDaysUsed,
		VacationYear:     emp.VacationYear,
		DNI:              emp.DNI,
		Birthdate:        emp.Birthdate,
		Phone:            emp.Phone,
		ContactEmail:     emp.ContactEmail,
		Position:         emp.Position,
		ContractType:     emp.ContractType,
		PayInstallments:  emp.PayInstallments,
	}
	if emp.Email != nil {
		resp.Email = *emp.Email
	}
	return resp
}

// Create implements employee.EmployeeService.
//
// The user account and the employee record are written in one
// transaction so a failed employee insert never leaves an orphaned
// login.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := employee.Employee{
		OvertimeRate:    1.0,
		DailyHours:      employee.DefaultDailyHours,
		WeeklyHours:     employee.DefaultDailyHours * 5,
		VacationDays:    employee.DefaultVacationDays,
		VacationYear:    time.Now().UTC().Year(),
		PayInstallments: 12,
	}
	if req.OvertimeRate != nil {
		newEmployee.OvertimeRate = *req.OvertimeRate
	}
	if req.AllowDiets != nil {
		newEmployee.AllowDiets = *req.AllowDiets
	}
	if req.AllowTransport != nil {
		newEmployee.AllowTransport = *req.AllowTransport
	}
	if req.AllowLodging != nil {
		newEmployee.AllowLodging = *req.AllowLodging
	}
	if req.Salary != nil {
		newEmployee.Salary = *req.Salary
	}
	if req.DailyHours != nil {
		newEmployee.DailyHours = *req.DailyHours
	}
	if req.WeeklyHours != nil {
		newEmployee.WeeklyHours = *req.WeeklyHours
	}
	if req.VacationDays != nil {
		newEmployee.VacationDays = *req.VacationDays
	}
	if req.PayInstallments != nil {
		newEmployee.PayInstallments = *req.PayInstallments
	}
	newEmployee.DNI = req.DNI
	newEmployee.Birthdate = req.Birthdate
	newEmployee.Phone = req.Phone
	newEmployee.ContactEmail = req.ContactEmail
	newEmployee.Position = req.Position
	newEmployee.ContractType = req.ContractType

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		createdUser, err := s.UserRepository.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			Role:         user.RoleWorker,
		})
		if err != nil {
			return err
		}

		newEmployee.UserID = createdUser.ID
		created, err = s.EmployeeRepository.Create(txCtx, newEmployee)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		created.Email = &createdUser.Email
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.OvertimeRate != nil {
		current.OvertimeRate = *req.OvertimeRate
	}
	if req.AllowDiets != nil {
		current.AllowDiets = *req.AllowDiets
	}
	if req.AllowTransport != nil {
		current.AllowTransport = *req.AllowTransport
	}
	if req.AllowLodging != nil {
		current.AllowLodging = *req.AllowLodging
	}
	if req.Salary != nil {
		current.Salary = *req.Salary
	}
	if req.DailyHours != nil {
		current.DailyHours = *req.DailyHours
	}
	if req.WeeklyHours != nil {
		current.WeeklyHours = *req.WeeklyHours
	}
	if req.VacationDays != nil {
		current.VacationDays = *req.VacationDays
	}

	if err := s.EmployeeRepository.Update(ctx, current); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(current), nil
}

// Me implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return employee.EmployeeResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if email, ok := claims["email"].(string); ok && emp.Email == nil {
		emp.Email = &email
	}

	return toResponse(emp), nil
}
