package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/coworking/internal/domain/errors"
	"github.com/polkiloo/coworking/internal/domain/model"
	"github.com/polkiloo/coworking/internal/domain/repository"
	pkgAuth "github.com/polkiloo/coworking/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users   repository.UserRepository
	hasher  pkgAuth.PasswordHasher
	tokens  pkgAuth.Strategy
	revoked repository.RevocationStore
}

// NewAuthUseCase constructs AuthUseCase. revoked may be nil, in which case tokens cannot be revoked.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, revoked repository.RevocationStore) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, revoked: revoked}
}

// Register creates a new user and returns it together with a fresh auth token.
func (u *AuthUseCase) Register(ctx context.Context, email, password, name string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if !ValidateEmail(email) || !ValidatePassword(password) {
		return nil, "", domainErrors.ErrInvalidInput
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash, strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, domainErrors.ErrDuplicateEmail) {
			return nil, "", domainErrors.ErrDuplicateEmail
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidInput
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	userID, err := u.tokens.ParseToken(token)
	if err != nil {
		return "", err
	}
	if u.revoked == nil {
		return userID, nil
	}
	revoked, err := u.revoked.IsRevoked(ctx, token)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", pkgAuth.ErrInvalidToken
	}
	return userID, nil
}

// Logout revokes a valid token until it would expire on its own.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	if _, err := u.ParseToken(ctx, token); err != nil {
		return err
	}
	if u.revoked == nil {
		return nil
	}
	return u.revoked.Revoke(ctx, token, time.Now().Add(u.tokens.TTL()))
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
