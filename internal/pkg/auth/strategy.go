package auth

import (
	"time"

	domainErrors "github.com/polkiloo/coworking/internal/domain/errors"
)

// ErrInvalidToken is returned by every strategy for malformed, forged or expired tokens.
var ErrInvalidToken = domainErrors.ErrInvalidToken

const defaultTTL = 24 * time.Hour

// Strategy mints and verifies stateless session tokens bound to a user id.
type Strategy interface {
	IssueToken(userID string) (string, error)
	ParseToken(token string) (string, error)
	TTL() time.Duration
	Name() string
}

type Options struct {
	TTL time.Duration
}

func (o Options) ttl() time.Duration {
	if o.TTL <= 0 {
		return defaultTTL
	}
	return o.TTL
}
