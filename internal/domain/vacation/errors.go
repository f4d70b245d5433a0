package vacation

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound       = errors.New("vacation request not found")
	ErrRequestAlreadyDecided = errors.New("vacation request already decided")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
)

// InsufficientBalanceError carries the numbers the client needs to
// show the worker what remains.
type InsufficientBalanceError struct {
	Available int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient vacation balance: %d days available, %d requested", e.Available, e.Requested)
}
