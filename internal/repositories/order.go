package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"ticket-commerce-platform/internal/models"

	"github.com/lib/pq"
)

// OrderRepository handles order data operations. Orders are write-once: the
// only mutation this repository performs is their creation.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateFromCart persists the order snapshot and clears the source cart of
// the given kind in one transaction. After commit either both the order and
// the empty cart are durable, or neither is; a reader can never observe the
// order next to an uncleared cart.
func (r *OrderRepository) CreateFromCart(order *models.Order, kind models.CartKind) (*models.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	created := &models.Order{
		MerchLines:  order.MerchLines,
		TicketLines: order.TicketLines,
	}
	err = tx.QueryRow(`
		INSERT INTO orders (user_id, order_number, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, order_number, created_at`,
		order.UserID, order.OrderNumber, time.Now()).
		Scan(&created.ID, &created.UserID, &created.OrderNumber, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	for _, line := range order.MerchLines {
		_, err = tx.Exec(`
			INSERT INTO order_merch_lines (order_id, product_id, quantity)
			VALUES ($1, $2, $3)`, created.ID, line.ProductID, line.Quantity)

		if err != nil {
			return nil, fmt.Errorf("failed to create order merch line: %w", err)
		}
	}

	for _, line := range order.TicketLines {
		_, err = tx.Exec(`
			INSERT INTO order_ticket_lines (order_id, ticket_id, quantity, seat_info)
			VALUES ($1, $2, $3, $4)`, created.ID, line.TicketID, line.Quantity, pq.Array(line.SeatInfo))

		if err != nil {
			return nil, fmt.Errorf("failed to create order ticket line: %w", err)
		}
	}

	// Clear the source cart inside the same transaction
	switch kind {
	case models.CartMerch:
		_, err = tx.Exec("DELETE FROM cart_merch_items WHERE user_id = $1", order.UserID)
	case models.CartTicket:
		_, err = tx.Exec("DELETE FROM cart_ticket_items WHERE user_id = $1", order.UserID)
	default:
		return nil, fmt.Errorf("%w: unknown cart kind %q", models.ErrInvalidInput, kind)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return created, nil
}

// GetByID retrieves an order with its lines
func (r *OrderRepository) GetByID(id int) (*models.Order, error) {
	order := &models.Order{}
	err := r.db.QueryRow(`
		SELECT id, user_id, order_number, created_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&order.ID, &order.UserID, &order.OrderNumber, &order.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if err := r.loadLines(order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetByUser retrieves a user's orders that contain lines of the given kind,
// newest first.
func (r *OrderRepository) GetByUser(userID int, kind models.CartKind) ([]*models.Order, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, order_number, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.UserID, &order.OrderNumber, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.filterByKind(orders, kind)
}

// GetAllWithOwner retrieves every order containing lines of the given kind,
// with the owner's account joined in, for the admin listing.
func (r *OrderRepository) GetAllWithOwner(kind models.CartKind) ([]*models.OrderWithOwner, error) {
	rows, err := r.db.Query(`
		SELECT o.id, o.user_id, o.order_number, o.created_at, u.account
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC`)

	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.OrderWithOwner
	for rows.Next() {
		order := &models.OrderWithOwner{}
		err := rows.Scan(&order.ID, &order.UserID, &order.OrderNumber, &order.CreatedAt, &order.OwnerAccount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var result []*models.OrderWithOwner
	for _, order := range orders {
		if err := r.loadLines(&order.Order); err != nil {
			return nil, err
		}
		if (kind == models.CartMerch && len(order.MerchLines) > 0) ||
			(kind == models.CartTicket && len(order.TicketLines) > 0) {
			result = append(result, order)
		}
	}

	return result, nil
}

// filterByKind loads lines for the given orders and keeps those that have
// lines of the requested kind.
func (r *OrderRepository) filterByKind(orders []*models.Order, kind models.CartKind) ([]*models.Order, error) {
	var result []*models.Order
	for _, order := range orders {
		if err := r.loadLines(order); err != nil {
			return nil, err
		}
		if (kind == models.CartMerch && len(order.MerchLines) > 0) ||
			(kind == models.CartTicket && len(order.TicketLines) > 0) {
			result = append(result, order)
		}
	}
	return result, nil
}

// loadLines populates both line collections of an order
func (r *OrderRepository) loadLines(order *models.Order) error {
	merchRows, err := r.db.Query(`
		SELECT product_id, quantity
		FROM order_merch_lines
		WHERE order_id = $1
		ORDER BY id ASC`, order.ID)

	if err != nil {
		return fmt.Errorf("failed to get order merch lines: %w", err)
	}
	defer merchRows.Close()

	for merchRows.Next() {
		var line models.MerchCartItem
		if err := merchRows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return fmt.Errorf("failed to scan order merch line: %w", err)
		}
		order.MerchLines = append(order.MerchLines, line)
	}
	if err := merchRows.Err(); err != nil {
		return err
	}

	ticketRows, err := r.db.Query(`
		SELECT ticket_id, quantity, seat_info
		FROM order_ticket_lines
		WHERE order_id = $1
		ORDER BY id ASC`, order.ID)

	if err != nil {
		return fmt.Errorf("failed to get order ticket lines: %w", err)
	}
	defer ticketRows.Close()

	for ticketRows.Next() {
		var line models.TicketCartItem
		if err := ticketRows.Scan(&line.TicketID, &line.Quantity, pq.Array(&line.SeatInfo)); err != nil {
			return fmt.Errorf("failed to scan order ticket line: %w", err)
		}
		order.TicketLines = append(order.TicketLines, line)
	}

	return ticketRows.Err()
}
