package handlers

import (
	"net/http"

	"ticket-commerce-platform/internal/middleware"
	"ticket-commerce-platform/internal/services"
)

// CartHandler handles cart mutation and projection requests. The two cart
// kinds share one implementation parameterized by the request shape.
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// editMerchRequest carries a signed quantity delta for one product
type editMerchRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// editTicketRequest carries a signed quantity delta for one ticket; seat
// info is only consulted when the line does not exist yet.
type editTicketRequest struct {
	TicketID int      `json:"ticket_id"`
	Quantity int      `json:"quantity"`
	SeatInfo []string `json:"seat_info"`
}

// EditMerchCart merges a quantity delta into the merchandise cart and
// returns the new merchandise total.
func (h *CartHandler) EditMerchCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req editMerchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	total, err := h.cartService.UpsertMerchLine(user.ID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, total)
}

// GetMerchCart returns the merchandise cart with product data joined in
func (h *CartHandler) GetMerchCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	lines, err := h.cartService.GetMerchCart(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, lines)
}

// EditTicketCart merges a quantity delta into the ticket cart and returns
// the new ticket total.
func (h *CartHandler) EditTicketCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	var req editTicketRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	total, err := h.cartService.UpsertTicketLine(user.ID, req.TicketID, req.Quantity, req.SeatInfo)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, total)
}

// GetTicketCart returns the ticket cart with ticket data joined in
func (h *CartHandler) GetTicketCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	lines, err := h.cartService.GetTicketCart(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, lines)
}

// cartTotals is the totals response payload
type cartTotals struct {
	MerchTotal  int `json:"merch_total"`
	TicketTotal int `json:"ticket_total"`
}

// GetTotals returns both derived cart quantity totals
func (h *CartHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	merchTotal, ticketTotal, err := h.cartService.GetTotals(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, cartTotals{MerchTotal: merchTotal, TicketTotal: ticketTotal})
}
