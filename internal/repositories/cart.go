package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"ticket-commerce-platform/internal/models"

	"github.com/lib/pq"
)

// CartRepository handles the cart line rows owned by a user record. Callers
// are expected to serialize mutations per user; the repository itself only
// guarantees that no zero or negative quantity is ever stored.
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Merchandise cart operations

// GetMerchItem retrieves the merchandise line for one product, or nil when
// the user has no such line.
func (r *CartRepository) GetMerchItem(userID, productID int) (*models.MerchCartItem, error) {
	item := &models.MerchCartItem{}
	err := r.db.QueryRow(`
		SELECT product_id, quantity
		FROM cart_merch_items
		WHERE user_id = $1 AND product_id = $2`, userID, productID).Scan(&item.ProductID, &item.Quantity)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get merch cart item: %w", err)
	}

	return item, nil
}

// InsertMerchItem adds a brand-new merchandise line
func (r *CartRepository) InsertMerchItem(userID, productID, quantity int) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_merch_items (user_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4)`, userID, productID, quantity, time.Now())

	if err != nil {
		return fmt.Errorf("failed to insert merch cart item: %w", err)
	}

	return nil
}

// UpdateMerchItemQuantity sets the quantity of an existing merchandise line
func (r *CartRepository) UpdateMerchItemQuantity(userID, productID, quantity int) error {
	_, err := r.db.Exec(`
		UPDATE cart_merch_items
		SET quantity = $3
		WHERE user_id = $1 AND product_id = $2`, userID, productID, quantity)

	if err != nil {
		return fmt.Errorf("failed to update merch cart item: %w", err)
	}

	return nil
}

// DeleteMerchItem removes a merchandise line outright
func (r *CartRepository) DeleteMerchItem(userID, productID int) error {
	_, err := r.db.Exec(`
		DELETE FROM cart_merch_items
		WHERE user_id = $1 AND product_id = $2`, userID, productID)

	if err != nil {
		return fmt.Errorf("failed to delete merch cart item: %w", err)
	}

	return nil
}

// GetMerchItems retrieves all merchandise lines for a user in insertion order
func (r *CartRepository) GetMerchItems(userID int) ([]models.MerchCartItem, error) {
	rows, err := r.db.Query(`
		SELECT product_id, quantity
		FROM cart_merch_items
		WHERE user_id = $1
		ORDER BY created_at ASC`, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to get merch cart items: %w", err)
	}
	defer rows.Close()

	var items []models.MerchCartItem
	for rows.Next() {
		var item models.MerchCartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan merch cart item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetMerchLines retrieves the user's merchandise cart with product data
// joined in, for the read-only cart projection.
func (r *CartRepository) GetMerchLines(userID int) ([]models.MerchCartLine, error) {
	rows, err := r.db.Query(`
		SELECT p.id, p.name, p.price, p.description, p.category, p.image_url, p.sell,
		       p.created_at, p.updated_at, c.quantity
		FROM cart_merch_items c
		JOIN products p ON p.id = c.product_id
		WHERE c.user_id = $1
		ORDER BY c.created_at ASC`, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to get merch cart lines: %w", err)
	}
	defer rows.Close()

	var lines []models.MerchCartLine
	for rows.Next() {
		var line models.MerchCartLine
		err := rows.Scan(
			&line.Product.ID,
			&line.Product.Name,
			&line.Product.Price,
			&line.Product.Description,
			&line.Product.Category,
			&line.Product.ImageURL,
			&line.Product.Sell,
			&line.Product.CreatedAt,
			&line.Product.UpdatedAt,
			&line.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan merch cart line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// GetMerchTotal returns the derived merchandise quantity total
func (r *CartRepository) GetMerchTotal(userID int) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COALESCE(SUM(quantity), 0)
		FROM cart_merch_items
		WHERE user_id = $1`, userID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("failed to get merch cart total: %w", err)
	}

	return total, nil
}

// Ticket cart operations

// GetTicketItem retrieves the ticket line for one ticket, or nil when the
// user has no such line.
func (r *CartRepository) GetTicketItem(userID, ticketID int) (*models.TicketCartItem, error) {
	item := &models.TicketCartItem{}
	err := r.db.QueryRow(`
		SELECT ticket_id, quantity, seat_info
		FROM cart_ticket_items
		WHERE user_id = $1 AND ticket_id = $2`, userID, ticketID).
		Scan(&item.TicketID, &item.Quantity, pq.Array(&item.SeatInfo))

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket cart item: %w", err)
	}

	return item, nil
}

// InsertTicketItem adds a brand-new ticket line with its seat info
func (r *CartRepository) InsertTicketItem(userID, ticketID, quantity int, seatInfo []string) error {
	_, err := r.db.Exec(`
		INSERT INTO cart_ticket_items (user_id, ticket_id, quantity, seat_info, created_at)
		VALUES ($1, $2, $3, $4, $5)`, userID, ticketID, quantity, pq.Array(seatInfo), time.Now())

	if err != nil {
		return fmt.Errorf("failed to insert ticket cart item: %w", err)
	}

	return nil
}

// UpdateTicketItemQuantity sets the quantity of an existing ticket line.
// Seat info is left untouched.
func (r *CartRepository) UpdateTicketItemQuantity(userID, ticketID, quantity int) error {
	_, err := r.db.Exec(`
		UPDATE cart_ticket_items
		SET quantity = $3
		WHERE user_id = $1 AND ticket_id = $2`, userID, ticketID, quantity)

	if err != nil {
		return fmt.Errorf("failed to update ticket cart item: %w", err)
	}

	return nil
}

// DeleteTicketItem removes a ticket line outright
func (r *CartRepository) DeleteTicketItem(userID, ticketID int) error {
	_, err := r.db.Exec(`
		DELETE FROM cart_ticket_items
		WHERE user_id = $1 AND ticket_id = $2`, userID, ticketID)

	if err != nil {
		return fmt.Errorf("failed to delete ticket cart item: %w", err)
	}

	return nil
}

// GetTicketItems retrieves all ticket lines for a user in insertion order
func (r *CartRepository) GetTicketItems(userID int) ([]models.TicketCartItem, error) {
	rows, err := r.db.Query(`
		SELECT ticket_id, quantity, seat_info
		FROM cart_ticket_items
		WHERE user_id = $1
		ORDER BY created_at ASC`, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to get ticket cart items: %w", err)
	}
	defer rows.Close()

	var items []models.TicketCartItem
	for rows.Next() {
		var item models.TicketCartItem
		if err := rows.Scan(&item.TicketID, &item.Quantity, pq.Array(&item.SeatInfo)); err != nil {
			return nil, fmt.Errorf("failed to scan ticket cart item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetTicketLines retrieves the user's ticket cart with ticket data joined in
func (r *CartRepository) GetTicketLines(userID int) ([]models.TicketCartLine, error) {
	rows, err := r.db.Query(`
		SELECT t.id, t.session_id, t.name, t.price, t.used, t.created_at, t.updated_at,
		       c.quantity, c.seat_info
		FROM cart_ticket_items c
		JOIN tickets t ON t.id = c.ticket_id
		WHERE c.user_id = $1
		ORDER BY c.created_at ASC`, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to get ticket cart lines: %w", err)
	}
	defer rows.Close()

	var lines []models.TicketCartLine
	for rows.Next() {
		var line models.TicketCartLine
		err := rows.Scan(
			&line.Ticket.ID,
			&line.Ticket.SessionID,
			&line.Ticket.Name,
			&line.Ticket.Price,
			&line.Ticket.Used,
			&line.Ticket.CreatedAt,
			&line.Ticket.UpdatedAt,
			&line.Quantity,
			pq.Array(&line.SeatInfo),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket cart line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// GetTicketTotal returns the derived ticket quantity total
func (r *CartRepository) GetTicketTotal(userID int) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COALESCE(SUM(quantity), 0)
		FROM cart_ticket_items
		WHERE user_id = $1`, userID).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("failed to get ticket cart total: %w", err)
	}

	return total, nil
}
