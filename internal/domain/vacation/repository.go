package vacation

import "context"

type VacationRequestRepository interface {
	Create(ctx context.Context, req VacationRequest) (VacationRequest, error)

	GetByID(ctx context.Context, id string) (VacationRequest, error)

	ListByUser(ctx context.Context, userID string) ([]VacationRequest, error)

	// ListPending returns pending requests joined with requester email.
	ListPending(ctx context.Context) ([]VacationRequest, error)

	// Decide flips a PENDING request to the given status in one guarded
	// statement and returns the decided row; returns
	// ErrRequestAlreadyDecided when the request has left PENDING,
	// ErrRequestNotFound when the id is unknown.
	Decide(ctx context.Context, id string, status RequestStatus, approvedBy string, reason *string) (VacationRequest, error)
}
