package company

import (
	"context"
	"fmt"

	"github.com/jornadahq/jornada-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{CompanyRepository: companyRepo}
}

func toResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		FiscalAddress: c.FiscalAddress,
		TaxID:         c.TaxID,
		Phone:         c.Phone,
		Lat:           c.Lat,
		Lng:           c.Lng,
	}
}

// Get implements company.CompanyService.
func (s *CompanyServiceImpl) Get(ctx context.Context) (company.CompanyResponse, error) {
	found, err := s.CompanyRepository.Get(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return toResponse(found), nil
}

// UpdateLocation implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateLocation(ctx context.Context, req company.UpdateLocationRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.CompanyRepository.UpdateLocation(ctx, req.Lat, req.Lng)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to update company location: %w", err)
	}

	return toResponse(updated), nil
}
