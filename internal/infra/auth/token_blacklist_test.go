package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryTokenBlacklist_RevocationLifecycle(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	blacklist := newMemoryTokenBlacklist(func() time.Time { return current })

	expiry := current.Add(30 * time.Minute)

	assert.False(t, blacklist.IsRevoked("token-1"))

	blacklist.Revoke("token-1", expiry)
	assert.True(t, blacklist.IsRevoked("token-1"))
	assert.False(t, blacklist.IsRevoked("token-2"))

	// Just before expiry the token is still revoked.
	current = expiry.Add(-time.Second)
	assert.True(t, blacklist.IsRevoked("token-1"))

	// Once the clock passes the expiry the entry stops mattering and is
	// dropped on lookup.
	current = expiry.Add(time.Second)
	assert.False(t, blacklist.IsRevoked("token-1"))
	assert.Empty(t, blacklist.entries)
}

func TestMemoryTokenBlacklist_EmptyTokenID(t *testing.T) {
	blacklist := newMemoryTokenBlacklist(time.Now)

	assert.False(t, blacklist.IsRevoked(""))
}

func TestMemoryTokenBlacklist_RevokeExpiredIsNoop(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	blacklist := newMemoryTokenBlacklist(func() time.Time { return current })

	blacklist.Revoke("stale-token", current.Add(-time.Minute))

	assert.False(t, blacklist.IsRevoked("stale-token"))
	assert.Empty(t, blacklist.entries)
}

func TestMemoryTokenBlacklist_RevokeSweepsExpiredEntries(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	blacklist := newMemoryTokenBlacklist(func() time.Time { return current })

	blacklist.Revoke("short-lived", current.Add(time.Minute))
	blacklist.Revoke("long-lived", current.Add(time.Hour))

	current = current.Add(10 * time.Minute)
	blacklist.Revoke("another", current.Add(time.Hour))

	assert.Len(t, blacklist.entries, 2)
	assert.True(t, blacklist.IsRevoked("long-lived"))
	assert.True(t, blacklist.IsRevoked("another"))
	assert.False(t, blacklist.IsRevoked("short-lived"))
}

func TestMemoryTokenBlacklist_ConcurrentAccess(t *testing.T) {
	blacklist := newMemoryTokenBlacklist(time.Now)
	expiry := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			blacklist.Revoke("shared-token", expiry)
		}()
		go func() {
			defer wg.Done()
			blacklist.IsRevoked("shared-token")
		}()
	}
	wg.Wait()

	assert.True(t, blacklist.IsRevoked("shared-token"))
}
