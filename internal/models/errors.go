package models

import "errors"

// Common errors used throughout the application
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrOrderNotFound   = errors.New("order not found")

	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrUnauthorized   = errors.New("unauthorized access")

	// ErrNotSellable is returned when a new cart line references a product
	// that has been withdrawn from sale.
	ErrNotSellable = errors.New("product is not for sale")

	// ErrEmptyCart is returned when order finalization is attempted on a
	// cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrTicketUnavailable is returned on redemption when no unused ticket
	// matches the given identifier. Unknown ids and already-used tickets
	// surface identically.
	ErrTicketUnavailable = errors.New("ticket is invalid or already used")
)
