package models

import (
	"errors"
	"strings"
	"time"
)

// Ticket represents a redeemable catalog ticket for a session. Used
// transitions false to true exactly once at gate check-in; there is no
// transition back.
type Ticket struct {
	ID        int       `json:"id" db:"id"`
	SessionID int       `json:"session_id" db:"session_id"`
	Name      string    `json:"name" db:"name"`
	Price     int       `json:"price" db:"price"` // Price in cents
	Used      bool      `json:"used" db:"used"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TicketCreateRequest represents the data needed to create a ticket
type TicketCreateRequest struct {
	SessionID int    `json:"session_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
}

// TicketUpdateRequest represents the data that can be updated for a ticket
type TicketUpdateRequest struct {
	SessionID int    `json:"session_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
}

// Validate validates ticket creation data
func (req *TicketCreateRequest) Validate() error {
	return validateTicketFields(req.SessionID, req.Name, req.Price)
}

// Validate validates ticket update data
func (req *TicketUpdateRequest) Validate() error {
	return validateTicketFields(req.SessionID, req.Name, req.Price)
}

func validateTicketFields(sessionID int, name string, price int) error {
	if sessionID <= 0 {
		return errors.New("ticket session is required")
	}

	if strings.TrimSpace(name) == "" {
		return errors.New("ticket name is required")
	}

	if price < 0 {
		return errors.New("ticket price cannot be negative")
	}

	return nil
}

// CanBeRedeemed returns true if the ticket has not been used yet
func (t *Ticket) CanBeRedeemed() bool {
	return !t.Used
}

// PriceInCurrency returns the price in the main currency as a float
func (t *Ticket) PriceInCurrency() float64 {
	return float64(t.Price) / 100.0
}
