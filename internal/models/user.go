package models

import (
	"errors"
	"regexp"
	"time"
)

// UserRole represents the role of a user
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User represents a registered account. It is the aggregate root for the two
// cart line collections: every cart mutation goes through it, and the cart
// quantity totals are derived from the live lines on each read.
type User struct {
	ID           int       `json:"id" db:"id"`
	Account      string    `json:"account" db:"account"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         UserRole  `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	CartMerch  []MerchCartItem  `json:"cart_merch"`
	CartTicket []TicketCartItem `json:"cart_ticket"`
}

// UserCreateRequest represents the data needed to register a new user
type UserCreateRequest struct {
	Account  string `json:"account"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

var (
	accountRegex   = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	userEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Validate validates user registration data. The password is checked before
// hashing; the stored hash has no length constraint.
func (req *UserCreateRequest) Validate() error {
	if err := validateAccount(req.Account); err != nil {
		return err
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if err := ValidatePassword(req.Password); err != nil {
		return err
	}

	return nil
}

// validateAccount validates the account name
func validateAccount(account string) error {
	if account == "" {
		return errors.New("account is required")
	}

	if len(account) < 4 || len(account) > 20 {
		return errors.New("account must be between 4 and 20 characters")
	}

	if !accountRegex.MatchString(account) {
		return errors.New("account must be alphanumeric")
	}

	return nil
}

// validateEmail validates the email address
func validateEmail(email string) error {
	if email == "" {
		return errors.New("email is required")
	}

	if len(email) > 255 {
		return errors.New("email must be less than 255 characters")
	}

	if !userEmailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}

	return nil
}

// ValidatePassword validates a plaintext password prior to hashing
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}

	if len(password) < 4 || len(password) > 20 {
		return errors.New("password must be between 4 and 20 characters")
	}

	return nil
}

// MerchQuantity returns the derived merchandise cart total for the loaded
// cart lines.
func (u *User) MerchQuantity() int {
	return MerchQuantityTotal(u.CartMerch)
}

// TicketQuantity returns the derived ticket cart total for the loaded cart
// lines.
func (u *User) TicketQuantity() int {
	return TicketQuantityTotal(u.CartTicket)
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
