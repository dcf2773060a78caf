package handlers

import "net/http"

// requireTeacher checks that the request carries a valid teacher session.
// Returns true if OK; otherwise writes the 403 refusal and returns false.
// The refusal text differs between signup and unregister, so the caller
// supplies it.
func (h *Handlers) requireTeacher(w http.ResponseWriter, r *http.Request, refusal string) bool {
	if h.authService.VerifySession(bearerToken(r)) {
		return true
	}

	h.respondDetail(w, http.StatusForbidden, refusal)
	return false
}
