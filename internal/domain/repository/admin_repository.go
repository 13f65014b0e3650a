package repository

import (
	"context"
	"errors"

	"presskit/internal/domain/entity"
)

// ErrAdminNotFound is a domain-specific error returned when no admin account matches.
var ErrAdminNotFound = errors.New("admin user not found")

// AdminUserRepository reads admin accounts for credential verification.
// Accounts are provisioned out-of-band; this core never writes them.
type AdminUserRepository interface {
	// FindByEmail retrieves an admin by exact email match. The lookup is
	// deliberately case-sensitive; see DESIGN.md.
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)
}
