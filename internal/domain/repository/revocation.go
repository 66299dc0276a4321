package repository

import (
	"context"
	"time"
)

// RevocationStore keeps revoked tokens until they would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, token string, until time.Time) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	// Purge drops entries whose expiry has passed.
	Purge(ctx context.Context) error
}
