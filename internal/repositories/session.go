package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"ticket-commerce-platform/internal/models"
)

// SessionRepository handles event session data operations
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(req *models.SessionCreateRequest) (*models.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO sessions (name, location, starts_at, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, name, location, starts_at, description, created_at, updated_at`

	session := &models.Session{}
	err := r.db.QueryRow(
		query,
		req.Name,
		req.Location,
		req.StartsAt,
		req.Description,
		time.Now(),
	).Scan(
		&session.ID,
		&session.Name,
		&session.Location,
		&session.StartsAt,
		&session.Description,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetByID retrieves a session by ID
func (r *SessionRepository) GetByID(id int) (*models.Session, error) {
	query := `
		SELECT id, name, location, starts_at, description, created_at, updated_at
		FROM sessions
		WHERE id = $1`

	session := &models.Session{}
	err := r.db.QueryRow(query, id).Scan(
		&session.ID,
		&session.Name,
		&session.Location,
		&session.StartsAt,
		&session.Description,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// GetAll retrieves all sessions ordered by start date
func (r *SessionRepository) GetAll() ([]*models.Session, error) {
	query := `
		SELECT id, name, location, starts_at, description, created_at, updated_at
		FROM sessions
		ORDER BY starts_at ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session := &models.Session{}
		err := rows.Scan(
			&session.ID,
			&session.Name,
			&session.Location,
			&session.StartsAt,
			&session.Description,
			&session.CreatedAt,
			&session.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

// Update updates an existing session
func (r *SessionRepository) Update(id int, req *models.SessionUpdateRequest) (*models.Session, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	query := `
		UPDATE sessions
		SET name = $2, location = $3, starts_at = $4, description = $5, updated_at = $6
		WHERE id = $1
		RETURNING id, name, location, starts_at, description, created_at, updated_at`

	session := &models.Session{}
	err := r.db.QueryRow(
		query,
		id,
		req.Name,
		req.Location,
		req.StartsAt,
		req.Description,
		time.Now(),
	).Scan(
		&session.ID,
		&session.Name,
		&session.Location,
		&session.StartsAt,
		&session.Description,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return session, nil
}

// Delete deletes a session
func (r *SessionRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM sessions WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrSessionNotFound
	}

	return nil
}
