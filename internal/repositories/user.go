package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ticket-commerce-platform/internal/models"

	"github.com/lib/pq"
)

// UserRepository handles user account and auth token data operations
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user account with the given password hash
func (r *UserRepository) Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO users (account, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, account, email, password_hash, role, created_at, updated_at`

	user := &models.User{}
	err := r.db.QueryRow(
		query,
		req.Account,
		req.Email,
		passwordHash,
		models.RoleUser,
		time.Now(),
	).Scan(
		&user.ID,
		&user.Account,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, models.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	return r.getBy("id = $1", id)
}

// GetByAccount retrieves a user by account name
func (r *UserRepository) GetByAccount(account string) (*models.User, error) {
	return r.getBy("account = $1", account)
}

func (r *UserRepository) getBy(where string, arg interface{}) (*models.User, error) {
	query := `
		SELECT id, account, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE ` + where

	user := &models.User{}
	err := r.db.QueryRow(query, arg).Scan(
		&user.ID,
		&user.Account,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// SetRole updates a user's role
func (r *UserRepository) SetRole(userID int, role models.UserRole) error {
	result, err := r.db.Exec(`
		UPDATE users
		SET role = $2, updated_at = $3
		WHERE id = $1`, userID, role, time.Now())

	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}

	return nil
}

// AddToken stores an issued auth token for the user
func (r *UserRepository) AddToken(userID int, token string) error {
	_, err := r.db.Exec(`
		INSERT INTO user_tokens (user_id, token, created_at)
		VALUES ($1, $2, $3)`, userID, token, time.Now())

	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	return nil
}

// RemoveToken deletes a stored auth token, revoking it
func (r *UserRepository) RemoveToken(userID int, token string) error {
	_, err := r.db.Exec(`
		DELETE FROM user_tokens
		WHERE user_id = $1 AND token = $2`, userID, token)

	if err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}

	return nil
}

// ReplaceToken swaps a stored token for a fresh one in place
func (r *UserRepository) ReplaceToken(userID int, oldToken, newToken string) error {
	result, err := r.db.Exec(`
		UPDATE user_tokens
		SET token = $3, created_at = $4
		WHERE user_id = $1 AND token = $2`, userID, oldToken, newToken, time.Now())

	if err != nil {
		return fmt.Errorf("failed to replace token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrUnauthorized
	}

	return nil
}

// HasToken reports whether the token is currently stored for the user
func (r *UserRepository) HasToken(userID int, token string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM user_tokens WHERE user_id = $1 AND token = $2
		)`, userID, token).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}

	return exists, nil
}
