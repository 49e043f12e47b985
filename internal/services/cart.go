package services

import (
	"fmt"

	"ticket-commerce-platform/internal/models"
)

// CartService owns the mutation rules for a user's two cart lines. Every
// upsert runs under the user's mutex from the shared lock registry, so two
// concurrent edits are applied one after the other and neither is lost.
type CartService struct {
	cartRepo    CartRepository
	productRepo ProductReader
	ticketRepo  TicketReader
	locks       *LockRegistry
}

// CartRepository interface for cart line data operations
type CartRepository interface {
	GetMerchItem(userID, productID int) (*models.MerchCartItem, error)
	InsertMerchItem(userID, productID, quantity int) error
	UpdateMerchItemQuantity(userID, productID, quantity int) error
	DeleteMerchItem(userID, productID int) error
	GetMerchItems(userID int) ([]models.MerchCartItem, error)
	GetMerchLines(userID int) ([]models.MerchCartLine, error)
	GetMerchTotal(userID int) (int, error)

	GetTicketItem(userID, ticketID int) (*models.TicketCartItem, error)
	InsertTicketItem(userID, ticketID, quantity int, seatInfo []string) error
	UpdateTicketItemQuantity(userID, ticketID, quantity int) error
	DeleteTicketItem(userID, ticketID int) error
	GetTicketItems(userID int) ([]models.TicketCartItem, error)
	GetTicketLines(userID int) ([]models.TicketCartLine, error)
	GetTicketTotal(userID int) (int, error)
}

// ProductReader interface for resolving product references
type ProductReader interface {
	GetByID(id int) (*models.Product, error)
}

// TicketReader interface for resolving ticket references
type TicketReader interface {
	GetByID(id int) (*models.Ticket, error)
}

// NewCartService creates a new cart service
func NewCartService(cartRepo CartRepository, productRepo ProductReader, ticketRepo TicketReader, locks *LockRegistry) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		ticketRepo:  ticketRepo,
		locks:       locks,
	}
}

// UpsertMerchLine merges a signed quantity delta into the user's merchandise
// cart and returns the new merchandise quantity total.
//
// An existing line absorbs the delta; a merged quantity at or below zero
// deletes the line outright. A brand-new line requires a positive delta, an
// existing product, and the product to be currently for sale. Sellability is
// checked only on that first insert: quantity edits of a line already in the
// cart go through even if the product was withdrawn in the meantime (the
// withdrawn product is caught again at order finalization).
func (s *CartService) UpsertMerchLine(userID, productID, delta int) (int, error) {
	lock := s.locks.User(userID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.cartRepo.GetMerchItem(userID, productID)
	if err != nil {
		return 0, err
	}

	if item != nil {
		quantity, keep := models.ApplyQuantityDelta(item.Quantity, delta)
		if !keep {
			if err := s.cartRepo.DeleteMerchItem(userID, productID); err != nil {
				return 0, err
			}
		} else {
			if err := s.cartRepo.UpdateMerchItemQuantity(userID, productID, quantity); err != nil {
				return 0, err
			}
		}
	} else {
		if delta <= 0 {
			return 0, fmt.Errorf("%w: quantity for a new cart line must be positive", models.ErrInvalidInput)
		}

		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return 0, err
		}

		if !product.Sell {
			return 0, models.ErrNotSellable
		}

		if err := s.cartRepo.InsertMerchItem(userID, productID, delta); err != nil {
			return 0, err
		}
	}

	return s.cartRepo.GetMerchTotal(userID)
}

// UpsertTicketLine merges a signed quantity delta into the user's ticket cart
// and returns the new ticket quantity total.
//
// Same merge rules as merchandise, with two differences: a brand-new line
// must carry a non-empty seat list, and there is no sellability check because
// tickets carry no such flag. Seat info is fixed at first insert; quantity
// edits never touch it.
func (s *CartService) UpsertTicketLine(userID, ticketID, delta int, seatInfo []string) (int, error) {
	lock := s.locks.User(userID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.cartRepo.GetTicketItem(userID, ticketID)
	if err != nil {
		return 0, err
	}

	if item != nil {
		quantity, keep := models.ApplyQuantityDelta(item.Quantity, delta)
		if !keep {
			if err := s.cartRepo.DeleteTicketItem(userID, ticketID); err != nil {
				return 0, err
			}
		} else {
			if err := s.cartRepo.UpdateTicketItemQuantity(userID, ticketID, quantity); err != nil {
				return 0, err
			}
		}
	} else {
		if delta <= 0 {
			return 0, fmt.Errorf("%w: quantity for a new cart line must be positive", models.ErrInvalidInput)
		}

		if len(seatInfo) == 0 {
			return 0, fmt.Errorf("%w: seat info is required for a new ticket line", models.ErrInvalidInput)
		}

		if _, err := s.ticketRepo.GetByID(ticketID); err != nil {
			return 0, err
		}

		if err := s.cartRepo.InsertTicketItem(userID, ticketID, delta, seatInfo); err != nil {
			return 0, err
		}
	}

	return s.cartRepo.GetTicketTotal(userID)
}

// GetMerchCart returns the user's merchandise cart with product data joined in
func (s *CartService) GetMerchCart(userID int) ([]models.MerchCartLine, error) {
	return s.cartRepo.GetMerchLines(userID)
}

// GetTicketCart returns the user's ticket cart with ticket data joined in
func (s *CartService) GetTicketCart(userID int) ([]models.TicketCartLine, error) {
	return s.cartRepo.GetTicketLines(userID)
}

// GetTotals returns both derived cart quantity totals
func (s *CartService) GetTotals(userID int) (merchTotal, ticketTotal int, err error) {
	merchTotal, err = s.cartRepo.GetMerchTotal(userID)
	if err != nil {
		return 0, 0, err
	}

	ticketTotal, err = s.cartRepo.GetTicketTotal(userID)
	if err != nil {
		return 0, 0, err
	}

	return merchTotal, ticketTotal, nil
}
