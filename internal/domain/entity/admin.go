package entity

import "time"

// AdminUser is the single editor account that may change site content.
// This core only ever reads it: credential verification compares against
// PasswordHash, and account provisioning happens out-of-band.
type AdminUser struct {
	ID           uint
	Email        string // Unique login identifier, matched exactly (case-sensitive).
	PasswordHash string // bcrypt hash of the admin password.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
