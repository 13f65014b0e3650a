package service

import (
	"strconv"
	"time"

	"presskit/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified payload of an admin session token.
type Claims struct {
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// AdminID parses the subject claim back into the admin account id.
func (c *Claims) AdminID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}

// TokenID returns the unique token id (jti) used by the revocation list.
func (c *Claims) TokenID() string {
	return c.ID
}

// TokenService defines the interface for minting and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken mints a signed token for the given admin: subject set to the
	// admin id, a fresh jti, the admin role marker and a short expiry.
	IssueToken(admin *entity.AdminUser) (token string, claims *Claims, err error)

	// ValidateToken checks signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
