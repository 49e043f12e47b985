package services

import (
	"ticket-commerce-platform/internal/models"
)

// OrderService converts a user's live cart into an immutable order. The read
// of the cart, the validation, the order insert and the cart clear all happen
// under the user's mutex, and the insert plus clear are one repository
// transaction, so a given cart snapshot is consumed into at most one order.
type OrderService struct {
	orderRepo   OrderRepository
	cartRepo    CartRepository
	productRepo ProductReader
	locks       *LockRegistry
}

// OrderRepository interface for order data operations
type OrderRepository interface {
	CreateFromCart(order *models.Order, kind models.CartKind) (*models.Order, error)
	GetByID(id int) (*models.Order, error)
	GetByUser(userID int, kind models.CartKind) ([]*models.Order, error)
	GetAllWithOwner(kind models.CartKind) ([]*models.OrderWithOwner, error)
}

// NewOrderService creates a new order service. The lock registry must be the
// one the cart service uses, otherwise a concurrent cart edit could slip into
// the middle of a finalization.
func NewOrderService(orderRepo OrderRepository, cartRepo CartRepository, productRepo ProductReader, locks *LockRegistry) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		locks:       locks,
	}
}

// FinalizeMerchOrder snapshots the user's merchandise cart into a new order
// and clears the cart. Every line's product is re-checked for sellability: a
// product withdrawn after it was added to the cart fails the whole
// finalization before anything is written.
func (s *OrderService) FinalizeMerchOrder(userID int) (*models.Order, error) {
	lock := s.locks.User(userID)
	lock.Lock()
	defer lock.Unlock()

	items, err := s.cartRepo.GetMerchItems(userID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, models.ErrEmptyCart
	}

	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Sell {
			return nil, models.ErrNotSellable
		}
	}

	order := &models.Order{
		UserID:      userID,
		OrderNumber: models.GenerateOrderNumber(),
		MerchLines:  copyMerchLines(items),
	}

	return s.orderRepo.CreateFromCart(order, models.CartMerch)
}

// FinalizeTicketOrder snapshots the user's ticket cart into a new order and
// clears the cart. Seat info is copied verbatim into the order lines. There
// is no sellability re-check here: tickets carry no such flag.
func (s *OrderService) FinalizeTicketOrder(userID int) (*models.Order, error) {
	lock := s.locks.User(userID)
	lock.Lock()
	defer lock.Unlock()

	items, err := s.cartRepo.GetTicketItems(userID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, models.ErrEmptyCart
	}

	order := &models.Order{
		UserID:      userID,
		OrderNumber: models.GenerateOrderNumber(),
		TicketLines: copyTicketLines(items),
	}

	return s.orderRepo.CreateFromCart(order, models.CartTicket)
}

// GetUserOrders returns the user's orders containing lines of the given kind
func (s *OrderService) GetUserOrders(userID int, kind models.CartKind) ([]*models.Order, error) {
	return s.orderRepo.GetByUser(userID, kind)
}

// GetAllOrders returns every order containing lines of the given kind with
// owner accounts joined in, for the admin listing.
func (s *OrderService) GetAllOrders(kind models.CartKind) ([]*models.OrderWithOwner, error) {
	return s.orderRepo.GetAllWithOwner(kind)
}

// copyMerchLines deep-copies cart lines into an order snapshot
func copyMerchLines(items []models.MerchCartItem) []models.MerchCartItem {
	lines := make([]models.MerchCartItem, len(items))
	copy(lines, items)
	return lines
}

// copyTicketLines deep-copies cart lines, including each line's seat list, so
// later cart or slice mutation cannot reach into the order.
func copyTicketLines(items []models.TicketCartItem) []models.TicketCartItem {
	lines := make([]models.TicketCartItem, len(items))
	for i, item := range items {
		seats := make([]string, len(item.SeatInfo))
		copy(seats, item.SeatInfo)
		lines[i] = models.TicketCartItem{
			TicketID: item.TicketID,
			Quantity: item.Quantity,
			SeatInfo: seats,
		}
	}
	return lines
}
