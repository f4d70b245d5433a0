package ticket

import "context"

type TicketRepository interface {
	Create(ctx context.Context, t Ticket) (Ticket, error)

	GetByID(ctx context.Context, id string) (Ticket, error)

	ListByUser(ctx context.Context, userID string) ([]Ticket, error)

	// ListPending returns pending tickets joined with claimant email.
	ListPending(ctx context.Context) ([]Ticket, error)

	// Decide flips a PENDING ticket to the given status in one guarded
	// statement; returns ErrTicketAlreadyDecided when the ticket has
	// left PENDING, ErrTicketNotFound when the id is unknown.
	Decide(ctx context.Context, id string, status Status, approvedBy string, reason *string) error
}
