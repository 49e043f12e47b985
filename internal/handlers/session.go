package handlers

import (
	"net/http"

	"ticket-commerce-platform/internal/models"
	"ticket-commerce-platform/internal/repositories"
)

// SessionHandler handles event session catalog requests
type SessionHandler struct {
	sessionRepo *repositories.SessionRepository
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionRepo *repositories.SessionRepository) *SessionHandler {
	return &SessionHandler{sessionRepo: sessionRepo}
}

// Create creates a new event session (admin)
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.SessionCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	session, err := h.sessionRepo.Create(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, session)
}

// Get returns one session by id
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	session, err := h.sessionRepo.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, session)
}

// List returns all sessions ordered by start time
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionRepo.GetAll()
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, sessions)
}

// Update updates an existing session (admin)
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.SessionUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	session, err := h.sessionRepo.Update(id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondResult(w, http.StatusOK, session)
}

// Delete deletes a session (admin)
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.sessionRepo.Delete(id); err != nil {
		respondError(w, err)
		return
	}

	respondOK(w, "")
}
