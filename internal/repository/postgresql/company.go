package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/company"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Get implements company.CompanyRepository.
func (r *companyRepositoryImpl) Get(ctx context.Context) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, fiscal_address, tax_id, phone, lat, lng, created_at, updated_at
		FROM companies
		ORDER BY created_at
		LIMIT 1
	`

	var found company.Company
	err := q.QueryRow(ctx, query).Scan(
		&found.ID,
		&found.Name,
		&found.FiscalAddress,
		&found.TaxID,
		&found.Phone,
		&found.Lat,
		&found.Lng,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}

	return found, nil
}

// GetReferenceLocation implements company.CompanyRepository.
func (r *companyRepositoryImpl) GetReferenceLocation(ctx context.Context) (company.Location, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lat, lng
		FROM companies
		ORDER BY created_at
		LIMIT 1
	`

	var loc company.Location
	err := q.QueryRow(ctx, query).Scan(&loc.Lat, &loc.Lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Location{}, company.ErrCompanyNotFound
		}
		return company.Location{}, err
	}

	return loc, nil
}

// UpdateLocation implements company.CompanyRepository.
func (r *companyRepositoryImpl) UpdateLocation(ctx context.Context, lat, lng float64) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE companies
		SET lat = $1, lng = $2, updated_at = NOW()
		WHERE id = (SELECT id FROM companies ORDER BY created_at LIMIT 1)
		RETURNING id, name, fiscal_address, tax_id, phone, lat, lng, created_at, updated_at
	`

	var updated company.Company
	err := q.QueryRow(ctx, query, lat, lng).Scan(
		&updated.ID,
		&updated.Name,
		&updated.FiscalAddress,
		&updated.TaxID,
		&updated.Phone,
		&updated.Lat,
		&updated.Lng,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, err
	}

	return updated, nil
}
