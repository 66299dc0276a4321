// Package revocation keeps the list of session tokens that were logged out
// before their natural expiry.
package revocation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MemoryStore is a process-local revocation list. Entries are kept until Purge
// observes that they expired.
type MemoryStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{revoked: make(map[string]time.Time), now: time.Now}
}

// Revoke marks token as revoked until the given instant. Past instants are ignored.
func (s *MemoryStore) Revoke(_ context.Context, token string, until time.Time) error {
	if !until.After(s.now()) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[hashToken(token)] = until
	return nil
}

func (s *MemoryStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	until, ok := s.revoked[hashToken(token)]
	s.mu.RUnlock()
	return ok && until.After(s.now()), nil
}

// Purge drops expired entries.
func (s *MemoryStore) Purge(_ context.Context) error {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, key)
		}
	}
	return nil
}

// size reports the number of tracked entries, expired ones included.
func (s *MemoryStore) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.revoked)
}
