package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/timesheet"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
)

type timesheetRequestRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRequestRepository(db *database.DB) timesheet.TimesheetRequestRepository {
	return &timesheetRequestRepositoryImpl{db: db}
}

// Create implements timesheet.TimesheetRequestRepository.
func (r *timesheetRequestRepositoryImpl) Create(ctx context.Context, req timesheet.TimesheetRequest) (timesheet.TimesheetRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return timesheet.TimesheetRequest{}, err
	}

	query := `
		INSERT INTO timesheet_requests (id, user_id, date, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, date, start_time, end_time, status, reason, created_at, approved_by
	`

	var created timesheet.TimesheetRequest
	err = q.QueryRow(ctx, query,
		id.String(),
		req.UserID,
		req.Date,
		req.StartTime,
		req.EndTime,
		timesheet.RequestStatusPending,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Date,
		&created.StartTime,
		&created.EndTime,
		&created.Status,
		&created.Reason,
		&created.CreatedAt,
		&created.ApprovedBy,
	)
	if err != nil {
		return timesheet.TimesheetRequest{}, err
	}

	return created, nil
}

// GetByID implements timesheet.TimesheetRequestRepository.
func (r *timesheetRequestRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.TimesheetRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, start_time, end_time, status, reason, created_at, approved_by
		FROM timesheet_requests
		WHERE id = $1
	`

	var found timesheet.TimesheetRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.Date,
		&found.StartTime,
		&found.EndTime,
		&found.Status,
		&found.Reason,
		&found.CreatedAt,
		&found.ApprovedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.TimesheetRequest{}, timesheet.ErrRequestNotFound
		}
		return timesheet.TimesheetRequest{}, err
	}

	return found, nil
}

// ListByUser implements timesheet.TimesheetRequestRepository.
func (r *timesheetRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]timesheet.TimesheetRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, start_time, end_time, status, reason, created_at, approved_by
		FROM timesheet_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []timesheet.TimesheetRequest
	for rows.Next() {
		var req timesheet.TimesheetRequest
		err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.Date,
			&req.StartTime,
			&req.EndTime,
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

// ListPending implements timesheet.TimesheetRequestRepository.
func (r *timesheetRequestRepositoryImpl) ListPending(ctx context.Context) ([]timesheet.TimesheetRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tr.id, tr.user_id, tr.date, tr.start_time, tr.end_time, tr.status,
			   tr.reason, tr.created_at, tr.approved_by, u.email
		FROM timesheet_requests tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.status = $1
		ORDER BY tr.created_at
	`

	rows, err := q.Query(ctx, query, timesheet.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []timesheet.TimesheetRequest
	for rows.Next() {
		var req timesheet.TimesheetRequest
		err := rows.Scan(
			&req.ID,
			&req.UserID,
			&req.Date,
			&req.StartTime,
			&req.EndTime,
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

// Decide implements timesheet.TimesheetRequestRepository.
//
// The status check is part of the update predicate, so two concurrent
// decisions race on the row and only one wins.
func (r *timesheetRequestRepositoryImpl) Decide(ctx context.Context, id string, status timesheet.RequestStatus, approvedBy string, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheet_requests
		SET status = $2, approved_by = $3, reason = COALESCE($4, reason)
		WHERE id = $1 AND status = $5
	`

	tag, err := q.Exec(ctx, query, id, status, approvedBy, reason, timesheet.RequestStatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM timesheet_requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return timesheet.ErrRequestNotFound
		}
		return timesheet.ErrRequestAlreadyDecided
	}

	return nil
}
