package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"roomNest/internal/api"
	"roomNest/internal/models"
)

// errorResponse is the uniform error body every handler emits. Details is
// whatever structure the backend attached, passed through untouched.
type errorResponse struct {
	Error   string          `json:"error"`
	Status  int             `json:"status"`
	Details json.RawMessage `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message, Status: status})
}

// respondServiceError maps service-layer failures onto HTTP statuses:
// sentinel not-found errors become 404, backend verdicts keep their status,
// timeouts and transport trouble become 502.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrRoomNotFound),
		errors.Is(err, models.ErrRoomieNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrNoRecord):
		respondError(w, http.StatusNotFound, "not found")
		return
	case errors.Is(err, models.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	case errors.Is(err, models.ErrSessionNotFound):
		respondError(w, http.StatusUnauthorized, "session expired")
		return
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			// Client-class backend verdicts pass through unchanged.
			status = apiErr.Status
		}
		respondJSON(w, status, errorResponse{Error: apiErr.Message, Status: status, Details: apiErr.Details})
		return
	}

	log.Printf("internal error: %v", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}
