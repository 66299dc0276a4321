package auth

import (
	"crypto/sha256"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

// PasetoStrategy issues v4.local tokens. The symmetric key is the SHA-256 digest of the secret.
type PasetoStrategy struct {
	key paseto.V4SymmetricKey
	ttl time.Duration
}

// NewPasetoStrategy derives the symmetric key from secret.
func NewPasetoStrategy(secret string, opts Options) (*PasetoStrategy, error) {
	sum := sha256.Sum256([]byte(secret))
	key, err := paseto.V4SymmetricKeyFromBytes(sum[:])
	if err != nil {
		return nil, fmt.Errorf("paseto key: %w", err)
	}
	return &PasetoStrategy{key: key, ttl: opts.ttl()}, nil
}

// IssueToken encrypts the user id as token subject.
func (s *PasetoStrategy) IssueToken(userID string) (string, error) {
	now := time.Now()
	token := paseto.NewToken()
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(s.ttl))
	token.SetSubject(userID)
	return token.V4Encrypt(s.key, nil), nil
}

// ParseToken decrypts token and checks its expiry.
func (s *PasetoStrategy) ParseToken(token string) (string, error) {
	parser := paseto.NewParser()
	parsed, err := parser.ParseV4Local(s.key, token, nil)
	if err != nil {
		return "", ErrInvalidToken
	}
	userID, err := parsed.GetSubject()
	if err != nil || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func (s *PasetoStrategy) TTL() time.Duration {
	return s.ttl
}

func (s *PasetoStrategy) Name() string {
	return "paseto"
}
