package model

// Teacher is one credential record from the teachers file.
// Passwords are stored and compared in plaintext, as the file is.
type Teacher struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
