package handlers

import (
	"fmt"
	"net/http"
)

// HandleListActivities returns the whole catalog keyed by activity name.
// No authentication required.
func (h *Handlers) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.activityService.List())
}

// HandleSignup registers a student for an activity. Teachers only.
func (h *Handlers) HandleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	email := r.URL.Query().Get("email")
	if email == "" {
		h.respondDetail(w, http.StatusBadRequest, "email is required")
		return
	}

	if !h.requireTeacher(w, r, "Only teachers can register students") {
		return
	}

	if err := h.activityService.SignUp(name, email); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// HandleUnregister removes a student from an activity. Teachers only.
func (h *Handlers) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	email := r.URL.Query().Get("email")
	if email == "" {
		h.respondDetail(w, http.StatusBadRequest, "email is required")
		return
	}

	if !h.requireTeacher(w, r, "Only teachers can unregister students") {
		return
	}

	if err := h.activityService.Unregister(name, email); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}
