package company

import "context"

// CompanyRepository persists the single company record.
type CompanyRepository interface {
	// Get returns the company record.
	Get(ctx context.Context) (Company, error)

	// GetReferenceLocation returns the geofence reference coordinate.
	GetReferenceLocation(ctx context.Context) (Location, error)

	// UpdateLocation moves the reference coordinate.
	UpdateLocation(ctx context.Context, lat, lng float64) (Company, error)
}
