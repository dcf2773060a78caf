package repository

import (
	"sync"

	"github.com/mergington/activities/internal/model"
)

// ActivityRepository holds the activity catalog in memory. The catalog is
// seeded once at construction and exists only for the life of the process.
// A write lock spans every membership check and the mutation that follows
// it, so concurrent signups cannot corrupt a roster.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

func NewActivityRepository(seed []*model.Activity) *ActivityRepository {
	activities := make(map[string]*model.Activity, len(seed))
	for _, a := range seed {
		activities[a.Name] = a.Clone()
	}
	return &ActivityRepository{activities: activities}
}

// List returns a snapshot of the catalog keyed by activity name.
func (r *ActivityRepository) List() map[string]*model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*model.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out
}

// Get returns a snapshot of one activity, or nil if the name is unknown.
func (r *ActivityRepository) Get(name string) *model.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil
	}
	return a.Clone()
}

// AddParticipant appends the email to the named activity's roster.
// Returns ErrActivityNotFound for an unknown name and ErrAlreadySignedUp
// when the email is already registered.
func (r *ActivityRepository) AddParticipant(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return model.ErrActivityNotFound
	}
	return a.SignUp(email)
}

// RemoveParticipant removes the email from the named activity's roster.
// Returns ErrActivityNotFound for an unknown name and ErrNotSignedUp when
// the email is not registered.
func (r *ActivityRepository) RemoveParticipant(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return model.ErrActivityNotFound
	}
	return a.Unregister(email)
}
