package ticket

import "context"

// TicketService covers the worker-side expense claims and the
// admin-side approval flow. Identity comes from the JWT claims in ctx.
type TicketService interface {
	Create(ctx context.Context, req CreateTicketRequest) (TicketResponse, error)
	ListMine(ctx context.Context) ([]TicketResponse, error)

	ListPending(ctx context.Context) ([]TicketResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, req RejectTicketRequest) error
}
