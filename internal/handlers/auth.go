package handlers

import (
	"net/http"

	"ticket-commerce-platform/internal/middleware"
	"ticket-commerce-platform/internal/models"
	"ticket-commerce-platform/internal/services"
)

// AuthHandler handles registration, login and profile requests
type AuthHandler struct {
	authService *services.AuthService
	cartService *services.CartService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cartService *services.CartService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cartService: cartService,
	}
}

// Register creates a new user account
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.UserCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, "")
}

// loginRequest is the login request body
type loginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// loginResult is the login response payload, including both derived cart
// totals so the client can render the cart badge immediately.
type loginResult struct {
	Token       string          `json:"token"`
	Account     string          `json:"account"`
	Role        models.UserRole `json:"role"`
	MerchTotal  int             `json:"merch_total"`
	TicketTotal int             `json:"ticket_total"`
}

// Login verifies credentials and issues a token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	user, token, err := h.authService.Login(req.Account, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	merchTotal, ticketTotal, err := h.cartService.GetTotals(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, loginResult{
		Token:       token,
		Account:     user.Account,
		Role:        user.Role,
		MerchTotal:  merchTotal,
		TicketTotal: ticketTotal,
	})
}

// Logout revokes the presented token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	token := middleware.GetTokenFromContext(r.Context())

	if err := h.authService.Logout(user.ID, token); err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, "")
}

// Extend swaps the presented token for a fresh one
func (h *AuthHandler) Extend(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	token := middleware.GetTokenFromContext(r.Context())

	newToken, err := h.authService.Extend(user.ID, token)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, newToken)
}

// profileResult is the profile response payload
type profileResult struct {
	Account     string          `json:"account"`
	Role        models.UserRole `json:"role"`
	MerchTotal  int             `json:"merch_total"`
	TicketTotal int             `json:"ticket_total"`
}

// Profile returns the authenticated user's account data and cart totals
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())

	merchTotal, ticketTotal, err := h.cartService.GetTotals(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, profileResult{
		Account:     user.Account,
		Role:        user.Role,
		MerchTotal:  merchTotal,
		TicketTotal: ticketTotal,
	})
}
