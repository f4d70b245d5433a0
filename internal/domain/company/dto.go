package company

import "github.com/jornadahq/jornada-backend-go/internal/pkg/validator"

type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (r *UpdateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidCoordinate(r.Lat, r.Lng) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "lat/lng must be a valid coordinate",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompanyResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	FiscalAddress *string `json:"fiscal_address,omitempty"`
	TaxID         *string `json:"tax_id,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}
