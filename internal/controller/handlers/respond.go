package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mergington/activities/internal/model"
	"go.uber.org/zap"
)

// respondJSON writes the payload with the given status and logs if the
// encode fails.
func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondDetail writes an error body in the {"detail": ...} shape the
// web UI reads.
func (h *Handlers) respondDetail(w http.ResponseWriter, status int, detail string) {
	h.respondJSON(w, status, map[string]string{"detail": detail})
}

// respondError maps a service error onto its HTTP status and detail.
// Anything unrecognized is logged and reported as a 500.
func (h *Handlers) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		h.respondDetail(w, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, model.ErrActivityNotFound):
		h.respondDetail(w, http.StatusNotFound, "Activity not found")
	case errors.Is(err, model.ErrAlreadySignedUp):
		h.respondDetail(w, http.StatusBadRequest, "Student is already signed up")
	case errors.Is(err, model.ErrNotSignedUp):
		h.respondDetail(w, http.StatusBadRequest, "Student is not signed up for this activity")
	default:
		h.logger.Error("Request failed", zap.Error(err))
		h.respondDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
