package company

import "context"

// CompanyService defines company-level business logic
type CompanyService interface {
	Get(ctx context.Context) (CompanyResponse, error)

	// UpdateLocation moves the geofence reference coordinate (admin only)
	UpdateLocation(ctx context.Context, req UpdateLocationRequest) (CompanyResponse, error)
}
