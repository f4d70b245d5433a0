package ticket

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/employee"
	"github.com/jornadahq/jornada-backend-go/internal/domain/ticket"
)

type TicketServiceImpl struct {
	ticket.TicketRepository
	employee.EmployeeRepository
}

func NewTicketService(ticketRepo ticket.TicketRepository, employeeRepo employee.EmployeeRepository) ticket.TicketService {
	return &TicketServiceImpl{
		TicketRepository:   ticketRepo,
		EmployeeRepository: employeeRepo,
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

func toResponse(t ticket.Ticket) ticket.TicketResponse {
	return ticket.TicketResponse{
		ID:         t.ID,
		UserID:     t.UserID,
		Email:      t.Email,
		Category:   string(t.Category),
		Amount:     t.Amount,
		Date:       t.Date.Format("2006-01-02"),
		ReceiptURL: t.ReceiptURL,
		Status:     string(t.Status),
		Reason:     t.Reason,
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
		ApprovedBy: t.ApprovedBy,
	}
}

func categoryAllowed(emp employee.Employee, category ticket.Category) bool {
	switch category {
	case ticket.CategoryDiets:
		return emp.AllowDiets
	case ticket.CategoryTransport:
		return emp.AllowTransport
	case ticket.CategoryLodging:
		return emp.AllowLodging
	}
	return false
}

// Create implements ticket.TicketService.
func (s *TicketServiceImpl) Create(ctx context.Context, req ticket.CreateTicketRequest) (ticket.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return ticket.TicketResponse{}, err
	}

	userID, err := claimsUserID(ctx)
	if err != nil {
		return ticket.TicketResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return ticket.TicketResponse{}, err
	}

	category := ticket.Category(req.Category)
	if !categoryAllowed(emp, category) {
		return ticket.TicketResponse{}, ticket.ErrCategoryNotAllowed
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return ticket.TicketResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.TicketRepository.Create(ctx, ticket.Ticket{
		UserID:     userID,
		Category:   category,
		Amount:     req.Amount,
		Date:       date,
		ReceiptURL: req.ReceiptURL,
	})
	if err != nil {
		return ticket.TicketResponse{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	return toResponse(created), nil
}

// ListMine implements ticket.TicketService.
func (s *TicketServiceImpl) ListMine(ctx context.Context) ([]ticket.TicketResponse, error) {
	userID, err := claimsUserID(ctx)
	if err != nil {
		return nil, err
	}

	tickets, err := s.TicketRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	responses := make([]ticket.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, toResponse(t))
	}

	return responses, nil
}

// ListPending implements ticket.TicketService.
func (s *TicketServiceImpl) ListPending(ctx context.Context) ([]ticket.TicketResponse, error) {
	tickets, err := s.TicketRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending tickets: %w", err)
	}

	responses := make([]ticket.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		responses = append(responses, toResponse(t))
	}

	return responses, nil
}

// Approve implements ticket.TicketService.
func (s *TicketServiceImpl) Approve(ctx context.Context, id string) error {
	adminID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	return s.TicketRepository.Decide(ctx, id, ticket.StatusAccepted, adminID, nil)
}

// Reject implements ticket.TicketService.
func (s *TicketServiceImpl) Reject(ctx context.Context, req ticket.RejectTicketRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	adminID, err := claimsUserID(ctx)
	if err != nil {
		return err
	}

	return s.TicketRepository.Decide(ctx, req.ID, ticket.StatusRejected, adminID, &req.Reason)
}
