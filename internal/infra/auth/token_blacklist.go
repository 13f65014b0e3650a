package auth

import (
	"sync"
	"time"

	"presskit/internal/domain/service"
)

// memoryTokenBlacklist keeps revoked token ids in process memory, mapped to
// their original expiry. Size is bounded by the logout rate within one token
// lifetime: every entry self-expires with its token. The mutex matters here,
// unlike in single-threaded runtimes, because handlers run on concurrent goroutines.
type memoryTokenBlacklist struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

// NewMemoryTokenBlacklist is the constructor for memoryTokenBlacklist.
// The list is per-process; deployments with multiple instances need a shared
// store behind the same interface instead.
func NewMemoryTokenBlacklist() service.TokenBlacklist {
	return newMemoryTokenBlacklist(time.Now)
}

func newMemoryTokenBlacklist(now func() time.Time) *memoryTokenBlacklist {
	return &memoryTokenBlacklist{
		entries: make(map[string]time.Time),
		now:     now,
	}
}

// Revoke records the token id until its original expiry, then sweeps every
// expired entry. Revoking an already-expired token is a harmless no-op: the
// sweep removes it immediately.
func (b *memoryTokenBlacklist) Revoke(tokenID string, expiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[tokenID] = expiresAt
	b.pruneLocked()
}

// IsRevoked reports whether the token id is currently revoked. An entry whose
// expiry has passed is redundant (the token is dead by expiry alone) and is
// deleted on sight.
func (b *memoryTokenBlacklist) IsRevoked(tokenID string) bool {
	if tokenID == "" {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	expiresAt, ok := b.entries[tokenID]
	if !ok {
		return false
	}
	if expiresAt.Before(b.now()) {
		delete(b.entries, tokenID)

		return false
	}

	return true
}

// pruneLocked drops every expired entry. Callers must hold the mutex.
func (b *memoryTokenBlacklist) pruneLocked() {
	now := b.now()
	for tokenID, expiresAt := range b.entries {
		if expiresAt.Before(now) {
			delete(b.entries, tokenID)
		}
	}
}
