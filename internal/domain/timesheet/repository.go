package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository defines data access for attendance records.
// Mutating methods carry their state guard into the store (single
// guarded statement) so concurrent clock actions for the same worker
// cannot both succeed.
type TimesheetRepository interface {
	// StartSession inserts a new open record unless the worker already
	// has one; returns ErrSessionAlreadyOpen otherwise.
	StartSession(ctx context.Context, ts Timesheet) (Timesheet, error)

	// GetOpenSession returns the worker's open record, or ErrNoOpenSession.
	GetOpenSession(ctx context.Context, userID string) (Timesheet, error)

	// SetBreakStart stamps break_start on an open record that has none.
	SetBreakStart(ctx context.Context, id string, at time.Time) error

	// SetBreakEnd stamps break_end on an open record with a started break.
	SetBreakEnd(ctx context.Context, id string, at time.Time) error

	// CloseSession stamps end time and end location on an open record.
	CloseSession(ctx context.Context, id string, at time.Time, lat, lng float64, within bool) error

	// Create inserts an already-closed record (request materialization).
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)

	// ListByUser returns all records for a worker, (date desc, id desc).
	ListByUser(ctx context.Context, userID string) ([]Timesheet, error)

	// ListClosed returns closed records for monthly aggregation,
	// company-wide when userID is nil.
	ListClosed(ctx context.Context, userID *string) ([]Timesheet, error)
}

// TimesheetRequestRepository defines data access for schedule-change
// requests.
type TimesheetRequestRepository interface {
	Create(ctx context.Context, req TimesheetRequest) (TimesheetRequest, error)

	GetByID(ctx context.Context, id string) (TimesheetRequest, error)

	ListByUser(ctx context.Context, userID string) ([]TimesheetRequest, error)

	// ListPending returns pending requests joined with requester email.
	ListPending(ctx context.Context) ([]TimesheetRequest, error)

	// Decide flips a PENDING request to the given status in one guarded
	// statement; returns ErrRequestAlreadyDecided when the request has
	// left PENDING, ErrRequestNotFound when the id is unknown.
	Decide(ctx context.Context, id string, status RequestStatus, approvedBy string, reason *string) error
}
