package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/vacation"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
)

type vacationRequestRepositoryImpl struct {
	db *database.DB
}

func NewVacationRequestRepository(db *database.DB) vacation.VacationRequestRepository {
	return &vacationRequestRepositoryImpl{db: db}
}

// Create implements vacation.VacationRequestRepository.
func (r *vacationRequestRepositoryImpl) Create(ctx context.Context, req vacation.VacationRequest) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return vacation.VacationRequest{}, err
	}

	query := `
		INSERT INTO vacation_requests (id, user_id, start_date, end_date, days, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, start_date, end_date, days, status, reason, created_at, approved_by
	`

	var created vacation.VacationRequest
	err = q.QueryRow(ctx, query,
		id.String(),
		req.UserID,
		req.StartDate,
		req.EndDate,
		req.Days,
		vacation.StatusPending,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.StartDate,
		&created.EndDate,
		&created.Days,
		&created.Status,
		&created.Reason,
		&created.CreatedAt,
		&created.ApprovedBy,
	)
	if err != nil {
		return vacation.VacationRequest{}, err
	}

	return created, nil
}

// GetByID implements vacation.VacationRequestRepository.
func (r *vacationRequestRepositoryImpl) GetByID(ctx context.Context, id string) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, days, status, reason, created_at, approved_by
		FROM vacation_requests
		WHERE id = $1
	`

	var found vacation.VacationRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.StartDate,
		&found.EndDate,
		&found.Days,
		&found.Status,
		&found.Reason,
		&found.CreatedAt,
		&found.ApprovedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationRequest{}, vacation.ErrRequestNotFound
		}
		return vacation.VacationRequest{}, err
	}

	return found, nil
}

// ListByUser implements vacation.VacationRequestRepository.
func (r *vacationRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, start_date, end_date, days, status, reason, created_at, approved_by
		FROM vacation_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []vacation.VacationRequest
	for rows.Next() {
		var req vacation.VacationRequest
		err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.StartDate,
			&req.EndDate,
			&req.Days,
			&req.Status,
			&req.Reason,
			&req.CreatedAt,
			&req.ApprovedBy,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListPending implements vacation.VacationRequestRepository.
func (r *vacationRequestRepositoryImpl) ListPending(ctx context.Context) ([]vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT vr.id, vr.user_id, vr.start_date, vr.end_date, vr.days, vr.status,
			   vr.reason, vr.created_at, vr.approved_by, u.email
		FROM vacation_requests vr
		JOIN users u ON u.id = vr.user_id
		WHERE vr.status = $1
		ORDER BY vr.created_at
	`

	rows, err := q.Query(ctx, query, vacation.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []vacation.VacationRequest
	for rows.Next() {
		var req vacation.VacationRequest
		err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.StartDate,
			&req.EndDate,
			&req.Days,
			&req.Status,
			&req.Reason,
			&req.CreatedAt,
			&req.ApprovedBy,
			&req.Email,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// Decide implements vacation.VacationRequestRepository.
//
// The status check is part of the update predicate, so two concurrent
// decisions race on the row and only one wins.
func (r *vacationRequestRepositoryImpl) Decide(ctx context.Context, id string, status vacation.RequestStatus, approvedBy string, reason *string) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE vacation_requests
		SET status = $2, approved_by = $3, reason = COALESCE($4, reason)
		WHERE id = $1 AND status = $5
		RETURNING id, user_id, start_date, end_date, days, status, reason, created_at, approved_by
	`

	var decided vacation.VacationRequest
	err := q.QueryRow(ctx, query, id, status, approvedBy, reason, vacation.StatusPending).Scan(
		&decided.ID,
		&decided.UserID,
		&decided.StartDate,
		&decided.EndDate,
		&decided.Days,
		&decided.Status,
		&decided.Reason,
		&decided.CreatedAt,
		&decided.ApprovedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM vacation_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
				return vacation.VacationRequest{}, err
			}
			if !exists {
				return vacation.VacationRequest{}, vacation.ErrRequestNotFound
			}
			return vacation.VacationRequest{}, vacation.ErrRequestAlreadyDecided
		}
		return vacation.VacationRequest{}, err
	}

	return decided, nil
}
