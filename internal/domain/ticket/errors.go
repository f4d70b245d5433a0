package ticket

import "errors"

var (
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrTicketAlreadyDecided = errors.New("ticket already decided")
	ErrCategoryNotAllowed   = errors.New("expense category not allowed for this employee")
)
