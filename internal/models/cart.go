package models

// CartKind identifies which of a user's two cart lines an operation targets.
type CartKind string

const (
	CartMerch  CartKind = "merch"
	CartTicket CartKind = "ticket"
)

// MerchCartItem is one merchandise line in a user's cart. A line only exists
// while its quantity is positive; merges and removals happen through the cart
// service, never by storing zero or negative quantities.
type MerchCartItem struct {
	ProductID int `json:"product_id" db:"product_id"`
	Quantity  int `json:"quantity" db:"quantity"`
}

// TicketCartItem is one ticket line in a user's cart. SeatInfo is the ordered
// list of seat identifiers chosen when the line was first added; quantity
// edits never touch it.
type TicketCartItem struct {
	TicketID int      `json:"ticket_id" db:"ticket_id"`
	Quantity int      `json:"quantity" db:"quantity"`
	SeatInfo []string `json:"seat_info" db:"seat_info"`
}

// MerchCartLine is a merchandise cart line with its catalog data joined in,
// used by read-only cart projections.
type MerchCartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// TicketCartLine is a ticket cart line with its catalog data joined in.
type TicketCartLine struct {
	Ticket   Ticket   `json:"ticket"`
	Quantity int      `json:"quantity"`
	SeatInfo []string `json:"seat_info"`
}

// MerchQuantityTotal sums the quantities of the given merchandise lines. It
// is recomputed on every read and never stored.
func MerchQuantityTotal(items []MerchCartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// TicketQuantityTotal sums the quantities of the given ticket lines.
func TicketQuantityTotal(items []TicketCartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// ApplyQuantityDelta merges a signed quantity delta into an existing line's
// quantity. The second return value reports whether the line survives: a
// merged quantity of zero or below means the line must be deleted outright.
func ApplyQuantityDelta(current, delta int) (int, bool) {
	merged := current + delta
	if merged <= 0 {
		return 0, false
	}
	return merged, true
}
