package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ticket-commerce-platform/internal/models"
)

// Response is the uniform JSON envelope returned by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Result  interface{} `json:"result,omitempty"`
}

// respondResult writes a successful response with a payload
func respondResult(w http.ResponseWriter, status int, result interface{}) {
	writeJSON(w, status, Response{Success: true, Result: result})
}

// respondOK writes a successful response with no payload
func respondOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{Success: true, Message: message})
}

// respondError maps a core error to its HTTP status and writes the failure
// envelope. Anything unrecognized is an internal error: the cause is logged,
// not leaked.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "unknown error"

	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrNotSellable),
		errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrTicketUnavailable):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrProductNotFound),
		errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrTicketNotFound),
		errors.Is(err, models.ErrOrderNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, models.ErrDuplicateEntry):
		status = http.StatusConflict
		message = models.ErrDuplicateEntry.Error()
	case errors.Is(err, models.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = models.ErrUnauthorized.Error()
	default:
		log.Printf("internal error: %v", err)
	}

	writeJSON(w, status, Response{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// decodeJSON parses a request body into dst
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return models.ErrInvalidInput
	}
	return nil
}
