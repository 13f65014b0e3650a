package service

import "time"

// TokenBlacklist is the revocation list for session tokens, keyed by token id
// (jti). Entries are additive and advisory: an expired token is already
// invalid on its own, so implementations may drop entries whose expiry has
// passed. The list is an injected dependency rather than package state so it
// can be swapped for a shared store in multi-instance deployments.
type TokenBlacklist interface {
	// Revoke records the token id until its original expiry.
	Revoke(tokenID string, expiresAt time.Time)

	// IsRevoked reports whether the token id is currently revoked.
	// A missing or already-expired entry counts as not revoked.
	IsRevoked(tokenID string) bool
}
