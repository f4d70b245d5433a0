package timesheet

import "errors"

// Timesheet domain errors
var (
	// Clock-action errors
	ErrSessionAlreadyOpen  = errors.New("an open session already exists")
	ErrNoOpenSession       = errors.New("no open session")
	ErrNoBreakStarted      = errors.New("no break has been started")
	ErrBreakAlreadyStarted = errors.New("a break has already been started")
	ErrBreakAlreadyEnded   = errors.New("the break has already ended")

	// General errors
	ErrTimesheetNotFound     = errors.New("timesheet not found")
	ErrRequestNotFound       = errors.New("timesheet request not found")
	ErrRequestAlreadyDecided = errors.New("timesheet request has already been decided")
)
