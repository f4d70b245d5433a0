package vacation

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "PENDING"
	StatusAccepted RequestStatus = "ACCEPTED"
	StatusRejected RequestStatus = "REJECTED"
)

type VacationRequest struct {
	ID         string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Status     RequestStatus
	Reason     *string
	CreatedAt  time.Time
	ApprovedBy *string

	// Joined from users for admin listings.
	Email *string
}

// DayCount returns the inclusive number of calendar days between start
// and end. Both bounds are date-only (midnight UTC).
func DayCount(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
