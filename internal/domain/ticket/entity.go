package ticket

import "time"

type Category string

const (
	CategoryDiets     Category = "DIETAS"
	CategoryTransport Category = "TRANSPORTE"
	CategoryLodging   Category = "ALOJAMIENTO"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDiets, CategoryTransport, CategoryLodging:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Ticket is an expense claim. ReceiptURL is opaque to the backend; the
// client stores the receipt wherever it wants and hands us the link.
type Ticket struct {
	ID         string
	UserID     string
	Category   Category
	Amount     float64
	Date       time.Time
	ReceiptURL *string
	Status     Status
	Reason     *string
	CreatedAt  time.Time
	ApprovedBy *string

	// Joined from users for admin listings.
	Email *string
}
