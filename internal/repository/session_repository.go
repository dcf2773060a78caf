package repository

import (
	"sync"

	"github.com/mergington/activities/internal/model"
)

// SessionRepository maps opaque session tokens to roles, in memory only:
// every session dies with the process. There is no expiry; a token lives
// until it is explicitly deleted.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]model.Role
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]model.Role)}
}

// Create stores the token with the given role.
func (r *SessionRepository) Create(token string, role model.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = role
}

// Role returns the role stored for the token and whether the token exists.
func (r *SessionRepository) Role(token string) (model.Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, ok := r.sessions[token]
	return role, ok
}

// Delete removes the token and reports whether a session existed.
// Deleting an unknown token is a no-op.
func (r *SessionRepository) Delete(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[token]
	if ok {
		delete(r.sessions, token)
	}
	return ok
}
