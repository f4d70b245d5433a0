package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/employee"
	"github.com/jornadahq/jornada-backend-go/internal/domain/vacation"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
	"github.com/jornadahq/jornada-backend-go/internal/repository/postgresql"
)

type VacationServiceImpl struct {
	db *database.DB
	vacation.VacationRequestRepository
	employee.EmployeeRepository
}

func NewVacationService(db *database.DB, requestRepo vacation.VacationRequestRepository, employeeRepo employee.EmployeeRepository) vacation.VacationService {
	return &VacationServiceImpl{
		db:                        db,
		VacationRequestRepository: requestRepo,
		EmployeeRepository:        employeeRepo,
	}
}

func claimsUserID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

func toResponse(req vacation.VacationRequest) vacation.VacationRequestResponse {
	return vacation.VacationRequestResponse{
		ID:         req.ID,
		UserID:     req.UserID,
		Email:      req.Email,
		StartDate:  req.StartDate.Format("2006-01-02"),
		EndDate:    req.EndDate.Format("2006-01-02"),
		Days:       req.Days,
		Status:     string(req.Status),
		Reason:     req.Reason,
		CreatedAt:  req.CreatedAt.Format(time.RFC3339),
		ApprovedBy: req.ApprovedBy,
	}
}

// availableBalance applies the lazy year rollover before reading the
// balance: a balance carried from a prior year is reset to zero used
// days for the current year first.
func (s *VacationServiceImpl) availableBalance(ctx context.Context, userID string) (employee.VacationBalance, error) {
	balance, err := s.EmployeeRepository.GetVacationBalance(ctx, userID)
	if err != nil {
		return employee.VacationBalance{}, fmt.Errorf("failed to get vacation balance: %w", err)
	}

	currentYear := time.Now().UTC().Year()
	if balance.Year < currentYear {
		if err := s.EmployeeRepository.SetVacationUsed(ctx, userID, 0, currentYear); err != nil {
			return employee.VacationBalance{}, fmt.Errorf("failed to roll over vacation year: %w", err)
		}
		balance.UsedDays = 0
		balance.Year = currentYear
	}

	return balance, nil
}

// CreateRequest implements vacation.VacationService.
//
// The balance is checked at submit time but not decremented; only
// approval consumes days.
func (s *VacationServiceImpl) CreateRequest(ctx context.Context, req vacation.CreateVacationRequestRequest) (vacation.VacationRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return vacation.VacationRequestResponse{}, err
	}

	userID, err := claimsUserID(ctx)
	if err != nil {
		return vacation.VacationRequestResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return vacation.VacationRequestResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return vacation.VacationRequestResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
	}

	if endDate.Before(startDate) {
		return vacation.VacationRequestResponse{}, vacation.ErrInvalidDateRange
	}

	days := vacation.DayCount(startDate, endDate)

	balance, err := s.availableBalance(ctx, userID)
	if err != nil {
		return vacation.VacationRequestResponse{}, err
	}

	if days > balance.Available() {
		return vacation.VacationRequestResponse{}, &vacation.InsufficientBalanceError{
			Available: balance.Available(),
			Requested: days,
		}
	}

	created, err := s.VacationRequestRepository.Create(ctx, vacation.VacationRequest{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Days:      days,
	})
	if err != nil {
		return vacation.VacationRequestResponse{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return toResponse(created), nil
}

// ListMyRequests implements vacation.VacationService.
func (s *VacationServiceImpl) ListMyRequests(ctx context.Context) ([]vacation.VacationRequestResponse, error) {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.VacationRequestRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}

	responses := make([]vacation.VacationRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return responses, nil
}

// MyBalance implements vacation.VacationService.
func (s *VacationServiceImpl) MyBalance(ctx context.Context) (vacation.VacationBalanceResponse, error) {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return vacation.VacationBalanceResponse{}, err
	}

	balance, err := s.availableBalance(ctx, userID)
	if err != nil {
		return vacation.VacationBalanceResponse{}, err
	}

	return vacation.VacationBalanceResponse{
		TotalDays:     balance.TotalDays,
		UsedDays:      balance.UsedDays,
		AvailableDays: balance.Available(),
		Year:          balance.Year,
	}, nil
}

// ListPendingRequests implements vacation.VacationService.
func (s *VacationServiceImpl) ListPendingRequests(ctx context.Context) ([]vacation.VacationRequestResponse, error) {
	requests, err := s.VacationRequestRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending vacation requests: %w", err)
	}

	responses := make([]vacation.VacationRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return responses, nil
}

// ApproveRequest implements vacation.VacationService.
//
// Approval increments used days by the day count stored on the
// request without re-checking the balance; the submit-time check is
// the only gate. The status flip and the increment share one
// transaction so a losing duplicate decision touches nothing.
func (s *VacationServiceImpl) ApproveRequest(ctx context.Context, id string) error {
	adminID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		decided, err := s.VacationRequestRepository.Decide(txCtx, id, vacation.StatusAccepted, adminID, nil)
		if err != nil {
			return err
		}

		days := vacation.DayCount(decided.StartDate, decided.EndDate)
		if err := s.EmployeeRepository.IncrementVacationUsed(txCtx, decided.UserID, days); err != nil {
			return fmt.Errorf("failed to increment used vacation days: %w", err)
		}

		return nil
	})
}

// RejectRequest implements vacation.VacationService.
func (s *VacationServiceImpl) RejectRequest(ctx context.Context, req vacation.RejectVacationRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	adminID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	_, err = s.VacationRequestRepository.Decide(ctx, req.ID, vacation.StatusRejected, adminID, &req.Reason)
	return err
}
