package models

import (
	"errors"
	"strings"
	"time"
)

// Session represents a ticketed event occurrence (a show date at a venue).
// Tickets reference the session they admit to.
type Session struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Location    string    `json:"location" db:"location"`
	StartsAt    time.Time `json:"starts_at" db:"starts_at"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// SessionCreateRequest represents the data needed to create a session
type SessionCreateRequest struct {
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	Description string    `json:"description"`
}

// SessionUpdateRequest represents the data that can be updated for a session
type SessionUpdateRequest struct {
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"starts_at"`
	Description string    `json:"description"`
}

// Validate validates session creation data
func (req *SessionCreateRequest) Validate() error {
	return validateSessionFields(req.Name, req.Location, req.StartsAt, req.Description)
}

// Validate validates session update data
func (req *SessionUpdateRequest) Validate() error {
	return validateSessionFields(req.Name, req.Location, req.StartsAt, req.Description)
}

func validateSessionFields(name, location string, startsAt time.Time, description string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("session name is required")
	}

	if strings.TrimSpace(location) == "" {
		return errors.New("session location is required")
	}

	if startsAt.IsZero() {
		return errors.New("session date is required")
	}

	if strings.TrimSpace(description) == "" {
		return errors.New("session description is required")
	}

	return nil
}
