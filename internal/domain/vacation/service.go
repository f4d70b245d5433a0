package vacation

import "context"

// VacationService covers the worker-side request/balance flow and the
// admin-side approval flow. Identity comes from the JWT claims in ctx.
type VacationService interface {
	CreateRequest(ctx context.Context, req CreateVacationRequestRequest) (VacationRequestResponse, error)
	ListMyRequests(ctx context.Context) ([]VacationRequestResponse, error)
	MyBalance(ctx context.Context) (VacationBalanceResponse, error)

	ListPendingRequests(ctx context.Context) ([]VacationRequestResponse, error)
	ApproveRequest(ctx context.Context, id string) error
	RejectRequest(ctx context.Context, req RejectVacationRequestRequest) error
}
