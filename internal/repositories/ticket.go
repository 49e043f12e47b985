package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"ticket-commerce-platform/internal/models"
)

// TicketRepository handles ticket catalog data operations, including the
// one-way redemption of a ticket at check-in.
type TicketRepository struct {
	db *sql.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Create creates a new ticket for a session
func (r *TicketRepository) Create(req *models.TicketCreateRequest) (*models.Ticket, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO tickets (session_id, name, price, used, created_at, updated_at)
		VALUES ($1, $2, $3, FALSE, $4, $4)
		RETURNING id, session_id, name, price, used, created_at, updated_at`

	ticket := &models.Ticket{}
	err := r.db.QueryRow(
		query,
		req.SessionID,
		req.Name,
		req.Price,
		time.Now(),
	).Scan(
		&ticket.ID,
		&ticket.SessionID,
		&ticket.Name,
		&ticket.Price,
		&ticket.Used,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	return ticket, nil
}

// GetByID retrieves a ticket by ID
func (r *TicketRepository) GetByID(id int) (*models.Ticket, error) {
	query := `
		SELECT id, session_id, name, price, used, created_at, updated_at
		FROM tickets
		WHERE id = $1`

	ticket := &models.Ticket{}
	err := r.db.QueryRow(query, id).Scan(
		&ticket.ID,
		&ticket.SessionID,
		&ticket.Name,
		&ticket.Price,
		&ticket.Used,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

// GetBySession retrieves all tickets for a session
func (r *TicketRepository) GetBySession(sessionID int) ([]*models.Ticket, error) {
	query := `
		SELECT id, session_id, name, price, used, created_at, updated_at
		FROM tickets
		WHERE session_id = $1
		ORDER BY price ASC, created_at ASC`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets by session: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		err := rows.Scan(
			&ticket.ID,
			&ticket.SessionID,
			&ticket.Name,
			&ticket.Price,
			&ticket.Used,
			&ticket.CreatedAt,
			&ticket.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// Update updates a ticket's catalog fields. The used flag is not touched
// here; it only moves through Redeem.
func (r *TicketRepository) Update(id int, req *models.TicketUpdateRequest) (*models.Ticket, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	query := `
		UPDATE tickets
		SET session_id = $2, name = $3, price = $4, updated_at = $5
		WHERE id = $1
		RETURNING id, session_id, name, price, used, created_at, updated_at`

	ticket := &models.Ticket{}
	err := r.db.QueryRow(
		query,
		id,
		req.SessionID,
		req.Name,
		req.Price,
		time.Now(),
	).Scan(
		&ticket.ID,
		&ticket.SessionID,
		&ticket.Name,
		&ticket.Price,
		&ticket.Used,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	return ticket, nil
}

// Redeem marks an unused ticket as used. The check and the write are one
// conditional update, so concurrent redemptions of the same ticket can never
// both succeed: the losers see zero rows affected and get
// models.ErrTicketUnavailable, which also covers unknown ids.
func (r *TicketRepository) Redeem(id int) error {
	result, err := r.db.Exec(`
		UPDATE tickets
		SET used = TRUE, updated_at = $2
		WHERE id = $1 AND used = FALSE`, id, time.Now())

	if err != nil {
		return fmt.Errorf("failed to redeem ticket: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrTicketUnavailable
	}

	return nil
}

// Delete deletes a ticket
func (r *TicketRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM tickets WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrTicketNotFound
	}

	return nil
}
