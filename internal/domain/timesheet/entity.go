package timesheet

import "time"

// Timesheet is one worker-day attendance record. A record with EndTime
// unset is the worker's open session; the store guarantees at most one
// open record per worker at any instant. Closed records are never
// mutated again, only read.
type Timesheet struct {
	ID          string
	UserID      string
	Date        time.Time
	StartTime   *time.Time
	StartLat    *float64
	StartLng    *float64
	StartWithin bool
	BreakStart  *time.Time
	BreakEnd    *time.Time
	EndTime     *time.Time
	EndLat      *float64
	EndLng      *float64
	EndWithin   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// State is the explicit session state. Transitions:
// NONE -> OPEN -> ON_BREAK -> OPEN -> CLOSED.
type State string

const (
	StateNone    State = "NONE"
	StateOpen    State = "OPEN"
	StateOnBreak State = "ON_BREAK"
	StateClosed  State = "CLOSED"
)

// StateOf derives the session state from a record. A nil record means
// the worker has no open session.
func StateOf(t *Timesheet) State {
	switch {
	case t == nil:
		return StateNone
	case t.EndTime != nil:
		return StateClosed
	case t.BreakStart != nil && t.BreakEnd == nil:
		return StateOnBreak
	default:
		return StateOpen
	}
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusAccepted RequestStatus = "ACCEPTED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// TimesheetRequest is a worker-submitted schedule-change proposal for a
// day not covered by live clock actions. Immutable once decided.
type TimesheetRequest struct {
	ID         string
	UserID     string
	Date       time.Time
	StartTime  string // "HH:MM"
	EndTime    string // "HH:MM"
	Status     RequestStatus
	Reason     *string
	CreatedAt  time.Time
	ApprovedBy *string

	// Joined from users for the admin pending list
	Email *string
}

// Materialize builds the closed attendance record an approved request
// synthesizes: start/end composed from the request's date and clock
// times, no break.
func (r TimesheetRequest) Materialize() Timesheet {
	start := atClockTime(r.Date, r.StartTime)
	end := atClockTime(r.Date, r.EndTime)
	return Timesheet{
		UserID:    r.UserID,
		Date:      r.Date,
		StartTime: &start,
		EndTime:   &end,
	}
}

func atClockTime(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}
