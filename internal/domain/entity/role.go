// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a session token can carry.
type Role string

const (
	// RoleAdmin is the only role the panel knows about. Tokens carrying
	// anything else are rejected outright.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin:
		return true
	default:
		return false
	}
}
