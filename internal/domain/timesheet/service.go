package timesheet

import "context"

// TimesheetService covers the clock state machine for the
// authenticated worker plus the admin-side listing and the
// schedule-change approval flow. Identity comes from the JWT claims
// in ctx.
type TimesheetService interface {
	// Clock actions, worker only.
	Start(ctx context.Context, req ClockActionRequest) (ClockActionResponse, error)
	BreakStart(ctx context.Context) error
	BreakEnd(ctx context.Context) error
	End(ctx context.Context, req ClockActionRequest) (ClockActionResponse, error)
	SessionState(ctx context.Context) (SessionStateResponse, error)

	// Listings.
	ListMine(ctx context.Context) ([]TimesheetResponse, error)
	ListByUser(ctx context.Context, userID string) ([]TimesheetResponse, error)

	// Schedule-change requests.
	CreateRequest(ctx context.Context, req CreateTimesheetRequestRequest) (TimesheetRequestResponse, error)
	ListMyRequests(ctx context.Context) ([]TimesheetRequestResponse, error)
	ListPendingRequests(ctx context.Context) ([]TimesheetRequestResponse, error)
	ApproveRequest(ctx context.Context, id string) error
	RejectRequest(ctx context.Context, req RejectTimesheetRequestRequest) error

	// Monthly overtime rollup, admin only. userID selects the worker.
	OvertimeSummary(ctx context.Context, userID string) ([]OvertimeSummaryEntry, error)
}
