package handlers

import (
	"net/http"
	"strings"
)

// HandleLogin exchanges username/password query parameters for a session
// token. Credentials are checked against the teachers file on every call.
func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	password := r.URL.Query().Get("password")

	if username == "" || password == "" {
		h.respondDetail(w, http.StatusBadRequest, "username and password are required")
		return
	}

	token, err := h.authService.Login(username, password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"token":   token,
		"message": "Login successful",
	})
}

// HandleLogout drops the caller's session if one exists. It always
// succeeds, so a second logout with the same token is harmless.
func (h *Handlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(bearerToken(r))

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Logout successful",
	})
}

// HandleVerifySession reports whether the caller holds a live teacher
// session.
func (h *Handlers) HandleVerifySession(w http.ResponseWriter, r *http.Request) {
	authenticated := h.authService.VerifySession(bearerToken(r))

	h.respondJSON(w, http.StatusOK, map[string]bool{
		"authenticated": authenticated,
	})
}

// bearerToken extracts the session token from the Authorization header.
// A "Bearer " prefix is stripped if present; otherwise the raw header
// value is the token.
func bearerToken(r *http.Request) string {
	return strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
}
