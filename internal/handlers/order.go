package handlers

import (
	"net/http"

	"ticket-commerce-platform/internal/metrics"
	"ticket-commerce-platform/internal/middleware"
	"ticket-commerce-platform/internal/models"
	"ticket-commerce-platform/internal/services"
)

// OrderHandler handles order finalization and listing for both cart kinds
// through one parameterized implementation.
type OrderHandler struct {
	orderService *services.OrderService
	metrics      *metrics.ServerMetrics
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService, m *metrics.ServerMetrics) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		metrics:      m,
	}
}

// CreateMerchOrder finalizes the authenticated user's merchandise cart
func (h *OrderHandler) CreateMerchOrder(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, models.CartMerch)
}

// CreateTicketOrder finalizes the authenticated user's ticket cart
func (h *OrderHandler) CreateTicketOrder(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, models.CartTicket)
}

func (h *OrderHandler) create(w http.ResponseWriter, r *http.Request, kind models.CartKind) {
	user := middleware.GetUserFromContext(r.Context())

	var order *models.Order
	var err error
	switch kind {
	case models.CartMerch:
		order, err = h.orderService.FinalizeMerchOrder(user.ID)
	case models.CartTicket:
		order, err = h.orderService.FinalizeTicketOrder(user.ID)
	}

	if err != nil {
		respondError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.OrdersFinalized.WithLabelValues(string(kind)).Inc()
	}

	respondResult(w, http.StatusOK, order)
}

// GetMerchOrders returns the user's orders containing merchandise lines
func (h *OrderHandler) GetMerchOrders(w http.ResponseWriter, r *http.Request) {
	h.listMine(w, r, models.CartMerch)
}

// GetTicketOrders returns the user's orders containing ticket lines
func (h *OrderHandler) GetTicketOrders(w http.ResponseWriter, r *http.Request) {
	h.listMine(w, r, models.CartTicket)
}

func (h *OrderHandler) listMine(w http.ResponseWriter, r *http.Request, kind models.CartKind) {
	user := middleware.GetUserFromContext(r.Context())

	orders, err := h.orderService.GetUserOrders(user.ID, kind)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, orders)
}

// GetAllMerchOrders returns every merchandise order (admin)
func (h *OrderHandler) GetAllMerchOrders(w http.ResponseWriter, r *http.Request) {
	h.listAll(w, models.CartMerch)
}

// GetAllTicketOrders returns every ticket order (admin)
func (h *OrderHandler) GetAllTicketOrders(w http.ResponseWriter, r *http.Request) {
	h.listAll(w, models.CartTicket)
}

func (h *OrderHandler) listAll(w http.ResponseWriter, kind models.CartKind) {
	orders, err := h.orderService.GetAllOrders(kind)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, orders)
}
