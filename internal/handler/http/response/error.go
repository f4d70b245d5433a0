package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jornadahq/jornada-backend-go/internal/domain/auth"
	"github.com/jornadahq/jornada-backend-go/internal/domain/company"
	"github.com/jornadahq/jornada-backend-go/internal/domain/employee"
	"github.com/jornadahq/jornada-backend-go/internal/domain/ticket"
	"github.com/jornadahq/jornada-backend-go/internal/domain/timesheet"
	"github.com/jornadahq/jornada-backend-go/internal/domain/user"
	"github.com/jornadahq/jornada-backend-go/internal/domain/vacation"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Insufficient vacation balance carries the numbers the client
	// needs to render the remaining days.
	var insufficient *vacation.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		BadRequest(w, "Insufficient vacation balance", map[string]string{
			"available": strconv.Itoa(insufficient.Available),
			"requested": strconv.Itoa(insufficient.Requested),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role errors
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrWorkerAccessRequired):
		Forbidden(w, "Worker access required")

	// Directory errors
	case errors.Is(err, user.ErrEmailExists), errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Clock state machine errors
	case errors.Is(err, timesheet.ErrSessionAlreadyOpen):
		Conflict(w, "A session is already open")
	case errors.Is(err, timesheet.ErrNoOpenSession):
		Conflict(w, "No open session")
	case errors.Is(err, timesheet.ErrNoBreakStarted):
		Conflict(w, "No break has been started")
	case errors.Is(err, timesheet.ErrBreakAlreadyStarted):
		Conflict(w, "Break already started")
	case errors.Is(err, timesheet.ErrBreakAlreadyEnded):
		Conflict(w, "Break already ended")
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")

	// Request workflow errors
	case errors.Is(err, timesheet.ErrRequestNotFound):
		NotFound(w, "Schedule-change request not found")
	case errors.Is(err, timesheet.ErrRequestAlreadyDecided):
		Conflict(w, "Schedule-change request already decided")
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrRequestAlreadyDecided):
		Conflict(w, "Vacation request already decided")
	case errors.Is(err, vacation.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Ticket errors
	case errors.Is(err, ticket.ErrTicketNotFound):
		NotFound(w, "Ticket not found")
	case errors.Is(err, ticket.ErrTicketAlreadyDecided):
		Conflict(w, "Ticket already decided")
	case errors.Is(err, ticket.ErrCategoryNotAllowed):
		BadRequest(w, "Expense category not allowed for this employee", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
