package company

import "time"

// Company holds the single company record. Lat/Lng is the reference
// coordinate every clock action is geofenced against.
type Company struct {
	ID            string
	Name          string
	FiscalAddress *string
	TaxID         *string
	Phone         *string
	Lat           float64
	Lng           float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Location is the reference coordinate consumed by the attendance core.
type Location struct {
	Lat float64
	Lng float64
}
