package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

// Order is an immutable snapshot of a user's cart taken at finalization. The
// lines are copies: later cart edits cannot retroactively change a past
// order. Orders are never mutated or deleted.
type Order struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	OrderNumber string    `json:"order_number" db:"order_number"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	MerchLines  []MerchCartItem  `json:"merch_lines"`
	TicketLines []TicketCartItem `json:"ticket_lines"`
}

// OrderWithOwner pairs an order with its owner's account name, used by the
// admin listing.
type OrderWithOwner struct {
	Order
	OwnerAccount string `json:"owner_account"`
}

// Order number format: ORD-YYYYMMDD-XXXXXX (e.g., ORD-20240101-123456)
var orderNumberRegex = regexp.MustCompile(`^ORD-\d{8}-\d{6}$`)

// Validate validates the order snapshot before it is persisted. An order
// must contain at least one line across both collections; empty orders are
// rejected at creation, never after.
func (o *Order) Validate() error {
	if o.UserID <= 0 {
		return errors.New("order user is required")
	}

	if o.OrderNumber == "" {
		return errors.New("order number is required")
	}

	if !orderNumberRegex.MatchString(o.OrderNumber) {
		return errors.New("order number format is invalid")
	}

	if len(o.MerchLines) == 0 && len(o.TicketLines) == 0 {
		return errors.New("order must contain at least one line")
	}

	for _, line := range o.MerchLines {
		if line.Quantity <= 0 {
			return errors.New("order line quantity must be positive")
		}
	}

	for _, line := range o.TicketLines {
		if line.Quantity <= 0 {
			return errors.New("order line quantity must be positive")
		}
		if len(line.SeatInfo) == 0 {
			return errors.New("order ticket line seat info is required")
		}
	}

	return nil
}

// GenerateOrderNumber generates a unique order number
func GenerateOrderNumber() string {
	now := time.Now()
	dateStr := now.Format("20060102")

	max := big.NewInt(1000000)
	randomNum, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to timestamp-based generation if crypto/rand fails
		return fmt.Sprintf("ORD-%s-%06d", dateStr, now.UnixNano()%1000000)
	}

	return fmt.Sprintf("ORD-%s-%06d", dateStr, randomNum.Int64())
}
