package handlers

import (
	"errors"
	"net/http"

	"ticket-commerce-platform/internal/metrics"
	"ticket-commerce-platform/internal/models"
	"ticket-commerce-platform/internal/repositories"
	"ticket-commerce-platform/internal/services"
)

// TicketHandler handles ticket catalog and redemption requests
type TicketHandler struct {
	ticketRepo *repositories.TicketRepository
	redemption *services.RedemptionService
	metrics    *metrics.ServerMetrics
}

// NewTicketHandler creates a new ticket handler
func NewTicketHandler(ticketRepo *repositories.TicketRepository, redemption *services.RedemptionService, m *metrics.ServerMetrics) *TicketHandler {
	return &TicketHandler{
		ticketRepo: ticketRepo,
		redemption: redemption,
		metrics:    m,
	}
}

// Create creates a new ticket type (admin)
func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TicketCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ticket, err := h.ticketRepo.Create(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, ticket)
}

// Get returns one ticket by id
func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	ticket, err := h.ticketRepo.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, ticket)
}

// ListBySession returns all tickets for one event session
func (h *TicketHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	tickets, err := h.ticketRepo.GetBySession(sessionID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, tickets)
}

// Update updates ticket name and price; redemption state is not editable here (admin)
func (h *TicketHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.TicketUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	ticket, err := h.ticketRepo.Update(id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, ticket)
}

// Redeem marks a ticket as used; a second attempt on the same ticket fails (admin)
func (h *TicketHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.redemption.Redeem(id); err != nil {
		if h.metrics != nil && errors.Is(err, models.ErrTicketUnavailable) {
			h.metrics.TicketsRedeemed.WithLabelValues("rejected").Inc()
		}
		respondError(w, err)
		return
	}

	if h.metrics != nil {
		h.metrics.TicketsRedeemed.WithLabelValues("redeemed").Inc()
	}
	respondOK(w, "ticket redeemed")
}

// Delete deletes a ticket (admin)
func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.ticketRepo.Delete(id); err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, "")
}
