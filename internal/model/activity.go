package model

import "slices"

// Activity is an extracurricular offering with a participant roster.
// The name is the catalog key and is not repeated in API payloads.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registered reports whether the email is already on the roster.
func (a *Activity) Registered(email string) bool {
	return slices.Contains(a.Participants, email)
}

// SignUp appends the email to the roster, keeping signup order.
// Returns ErrAlreadySignedUp if the email is already registered.
// Capacity against MaxParticipants is intentionally not checked.
func (a *Activity) SignUp(email string) error {
	if a.Registered(email) {
		return ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// Unregister removes the email from the roster.
// Returns ErrNotSignedUp if the email is not registered.
func (a *Activity) Unregister(email string) error {
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return ErrNotSignedUp
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}

// Clone returns a deep copy so callers can read the activity
// without holding the store lock.
func (a *Activity) Clone() *Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	return &c
}
