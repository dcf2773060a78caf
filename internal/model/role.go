package model

// Role is the privilege level attached to a session.
type Role string

const (
	// RoleTeacher is the only role the service grants; every roster
	// mutation requires a session carrying it.
	RoleTeacher Role = "teacher"
)
