package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/timesheet"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
)

const timesheetColumns = `
	id, user_id, date, start_time, start_lat, start_lng, start_within,
	break_start, break_end, end_time, end_lat, end_lng, end_within,
	created_at, updated_at
`

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

func scanTimesheet(row pgx.Row, ts *timesheet.Timesheet) error {
	return row.Scan(
		&ts.ID,
		&ts.UserID,
		&ts.Date,
		&ts.StartTime,
		&ts.StartLat,
		&ts.StartLng,
		&ts.StartWithin,
		&ts.BreakStart,
		&ts.BreakEnd,
		&ts.EndTime,
		&ts.EndLat,
		&ts.EndLng,
		&ts.EndWithin,
		&ts.CreatedAt,
		&ts.UpdatedAt,
	)
}

// StartSession implements timesheet.TimesheetRepository.
//
// The insert and the open-session check are one statement, so two
// concurrent starts for the same worker cannot both succeed.
func (r *timesheetRepositoryImpl) StartSession(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	query := `
		INSERT INTO timesheets (id, user_id, date, start_time, start_lat, start_lng, start_within)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM timesheets WHERE user_id = $2 AND end_time IS NULL
		)
		RETURNING` + timesheetColumns

	var created timesheet.Timesheet
	err = scanTimesheet(q.QueryRow(ctx, query,
		id.String(),
		ts.UserID,
		ts.Date,
		ts.StartTime,
		ts.StartLat,
		ts.StartLng,
		ts.StartWithin,
	), &created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrSessionAlreadyOpen
		}
		return timesheet.Timesheet{}, err
	}

	return created, nil
}

// GetOpenSession implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetOpenSession(ctx context.Context, userID string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timesheetColumns + `FROM timesheets WHERE user_id = $1 AND end_time IS NULL`

	var found timesheet.Timesheet
	err := scanTimesheet(q.QueryRow(ctx, query, userID), &found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrNoOpenSession
		}
		return timesheet.Timesheet{}, err
	}

	return found, nil
}

// SetBreakStart implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) SetBreakStart(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET break_start = $2, updated_at = NOW()
		WHERE id = $1 AND end_time IS NULL AND break_start IS NULL
	`

	tag, err := q.Exec(ctx, query, id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrBreakAlreadyStarted
	}

	return nil
}

// SetBreakEnd implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) SetBreakEnd(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET break_end = $2, updated_at = NOW()
		WHERE id = $1 AND end_time IS NULL AND break_start IS NOT NULL AND break_end IS NULL
	`

	tag, err := q.Exec(ctx, query, id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrBreakAlreadyEnded
	}

	return nil
}

// CloseSession implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) CloseSession(ctx context.Context, id string, at time.Time, lat, lng float64, within bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET end_time = $2, end_lat = $3, end_lng = $4, end_within = $5, updated_at = NOW()
		WHERE id = $1 AND end_time IS NULL
	`

	tag, err := q.Exec(ctx, query, id, at, lat, lng, within)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrNoOpenSession
	}

	return nil
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	query := `
		INSERT INTO timesheets (
			id, user_id, date, start_time, start_lat, start_lng, start_within,
			break_start, break_end, end_time, end_lat, end_lng, end_within
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING` + timesheetColumns

	var created timesheet.Timesheet
	err = scanTimesheet(q.QueryRow(ctx, query,
		id.String(),
		ts.UserID,
		ts.Date,
		ts.StartTime,
		ts.StartLat,
		ts.StartLng,
		ts.StartWithin,
		ts.BreakStart,
		ts.BreakEnd,
		ts.EndTime,
		ts.EndLat,
		ts.EndLng,
		ts.EndWithin,
	), &created)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	return created, nil
}

// ListByUser implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timesheetColumns + `
		FROM timesheets
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimesheets(rows)
}

// ListClosed implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListClosed(ctx context.Context, userID *string) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + timesheetColumns + `
		FROM timesheets
		WHERE end_time IS NOT NULL AND ($1::uuid IS NULL OR user_id = $1)
		ORDER BY date, id
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTimesheets(rows)
}

func collectTimesheets(rows pgx.Rows) ([]timesheet.Timesheet, error) {
	var timesheets []timesheet.Timesheet
	for rows.Next() {
		var ts timesheet.Timesheet
		if err := scanTimesheet(rows, &ts); err != nil {
			return nil, err
		}
		timesheets = append(timesheets, ts)
	}
	return timesheets, rows.Err()
}
