package model

import "errors"

// Failures the API translates into client-facing statuses.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrAlreadySignedUp    = errors.New("student is already signed up")
	ErrNotSignedUp        = errors.New("student is not signed up for this activity")
)
