package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jornadahq/jornada-backend-go/internal/domain/ticket"
	"github.com/jornadahq/jornada-backend-go/internal/pkg/database"
)

type ticketRepositoryImpl struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) ticket.TicketRepository {
	return &ticketRepositoryImpl{db: db}
}

// Create implements ticket.TicketRepository.
func (r *ticketRepositoryImpl) Create(ctx context.Context, t ticket.Ticket) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return ticket.Ticket{}, err
	}

	query := `
		INSERT INTO tickets (id, user_id, category, amount, date, receipt_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, category, amount, date, receipt_url, status, reason, created_at, approved_by
	`

	var created ticket.Ticket
	err = q.QueryRow(ctx, query,
		id.String(),
		t.UserID,
		t.Category,
		t.Amount,
		t.Date,
		t.ReceiptURL,
		ticket.StatusPending,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Category,
		&created.Amount,
		&created.Date,
		&created.ReceiptURL,
		&created.Status,
		&created.Reason,
		&created.CreatedAt,
		&created.ApprovedBy,
	)
	if err != nil {
		return ticket.Ticket{}, err
	}

	return created, nil
}

// GetByID implements ticket.TicketRepository.
func (r *ticketRepositoryImpl) GetByID(ctx context.Context, id string) (ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, category, amount, date, receipt_url, status, reason, created_at, approved_by
		FROM tickets
		WHERE id = $1
	`

	var found ticket.Ticket
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.Category,
		&found.Amount,
		&found.Date,
		&found.ReceiptURL,
		&found.Status,
		&found.Reason,
		&found.CreatedAt,
		&found.ApprovedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ticket.Ticket{}, ticket.ErrTicketNotFound
		}
		return ticket.Ticket{}, err
	}

	return found, nil
}

// ListByUser implements ticket.TicketRepository.
func (r *ticketRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, category, amount, date, receipt_url, status, reason, created_at, approved_by
		FROM tickets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []ticket.Ticket
	for rows.Next() {
		var t ticket.Ticket
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Category,
			&t.Amount,
			&t.Date,
			&t.ReceiptURL,
			&t.Status,
			&t.Reason,
			&t.CreatedAt,
			&t.ApprovedBy,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, rows.Err()
}

// ListPending implements ticket.TicketRepository.
func (r *ticketRepositoryImpl) ListPending(ctx context.Context) ([]ticket.Ticket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.user_id, t.category, t.amount, t.date, t.receipt_url,
			   t.status, t.reason, t.created_at, t.approved_by, u.email
		FROM tickets t
		JOIN users u ON u.id = t.user_id
		WHERE t.status = $1
		ORDER BY t.created_at
	`

	rows, err := q.Query(ctx, query, ticket.StatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []ticket.Ticket
	for rows.Next() {
		var t ticket.Ticket
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.Category,
			&t.Amount,
			&t.Date,
			&t.ReceiptURL,
			&t.Status,
			&t.Reason,
			&t.CreatedAt,
			&t.ApprovedBy,
			&t.Email,
		)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}

	return tickets, rows.Err()
}

// Decide implements ticket.TicketRepository.
func (r *ticketRepositoryImpl) Decide(ctx context.Context, id string, status ticket.Status, approvedBy string, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tickets
		SET status = $2, approved_by = $3, reason = COALESCE($4, reason)
		WHERE id = $1 AND status = $5
	`

	tag, err := q.Exec(ctx, query, id, status, approvedBy, reason, ticket.StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tickets WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ticket.ErrTicketNotFound
		}
		return ticket.ErrTicketAlreadyDecided
	}

	return nil
}
