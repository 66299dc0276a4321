package test

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/coworking/internal/domain/errors"
	"github.com/polkiloo/coworking/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash, name string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrDuplicateEmail
	}
	user := &model.User{ID: uuid.NewString(), Email: email, PasswordHash: passwordHash, Name: name, CreatedAt: time.Now()}
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// BookingRepositoryStub keeps the ledger in memory.
type BookingRepositoryStub struct {
	CreateErr error
	ListErr   error
	Items     []model.Booking
	Queries   int
}

// Create appends booking with generated identifier.
func (s *BookingRepositoryStub) Create(ctx context.Context, booking model.Booking) (*model.Booking, error) {
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	booking.ID = uuid.NewString()
	booking.CreatedAt = time.Now()
	s.Items = append(s.Items, booking)
	return &booking, nil
}

// ListByUser yields stored bookings of the user, counting every iteration as a query.
func (s *BookingRepositoryStub) ListByUser(ctx context.Context, userID string) iter.Seq2[model.Booking, error] {
	return func(yield func(model.Booking, error) bool) {
		s.Queries++
		if s.ListErr != nil {
			yield(model.Booking{}, s.ListErr)
			return
		}
		for _, b := range s.Items {
			if b.UserID != userID {
				continue
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}

// RevocationStoreStub records revoked tokens in memory.
type RevocationStoreStub struct {
	mu        sync.Mutex
	Revoked   map[string]time.Time
	Err       error
	PurgeErr  error
	PurgeCall int
}

// Revoke stores token expiry.
func (s *RevocationStoreStub) Revoke(ctx context.Context, token string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.Revoked == nil {
		s.Revoked = make(map[string]time.Time)
	}
	s.Revoked[token] = until
	return nil
}

// IsRevoked reports whether token has been revoked.
func (s *RevocationStoreStub) IsRevoked(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	_, ok := s.Revoked[token]
	return ok, nil
}

// Purge counts invocations.
func (s *RevocationStoreStub) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.PurgeCall++
	return s.PurgeErr
}

// PurgeCalls returns number of purge invocations.
func (s *RevocationStoreStub) PurgeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.PurgeCall
}
