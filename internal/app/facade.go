package app

import (
	"context"

	"github.com/polkiloo/coworking/internal/domain/catalog"
	domainErrors "github.com/polkiloo/coworking/internal/domain/errors"
	"github.com/polkiloo/coworking/internal/domain/model"
	"github.com/polkiloo/coworking/internal/usecase"
)

// HealthChecker reports whether backing storage is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// CoworkingFacade is the single entry point used by request handlers.
type CoworkingFacade struct {
	auth     *usecase.AuthUseCase
	bookings *usecase.BookingUseCase
	health   HealthChecker
}

func NewCoworkingFacade(auth *usecase.AuthUseCase, bookings *usecase.BookingUseCase, health HealthChecker) *CoworkingFacade {
	return &CoworkingFacade{auth: auth, bookings: bookings, health: health}
}

func (f *CoworkingFacade) Register(ctx context.Context, email, password, name string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password, name)
	return token, err
}

func (f *CoworkingFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *CoworkingFacade) ParseToken(ctx context.Context, token string) (string, error) {
	return f.auth.ParseToken(ctx, token)
}

func (f *CoworkingFacade) Logout(ctx context.Context, token string) error {
	return f.auth.Logout(ctx, token)
}

func (f *CoworkingFacade) Profile(ctx context.Context, userID string) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

// CreateBooking books a space on behalf of actorID. Booking for another user is forbidden;
// an empty request user defaults to the actor.
func (f *CoworkingFacade) CreateBooking(ctx context.Context, actorID string, req model.BookingRequest) (*model.Booking, error) {
	if req.UserID == "" {
		req.UserID = actorID
	}
	if req.UserID != actorID {
		return nil, domainErrors.ErrForbidden
	}
	return f.bookings.Create(ctx, req)
}

// Bookings drains the ledger sequence of userID. The result is never nil.
func (f *CoworkingFacade) Bookings(ctx context.Context, actorID, userID string) ([]model.Booking, error) {
	if userID != actorID {
		return nil, domainErrors.ErrForbidden
	}
	items := make([]model.Booking, 0)
	for booking, err := range f.bookings.ListByUser(ctx, userID) {
		if err != nil {
			return nil, err
		}
		items = append(items, booking)
	}
	return items, nil
}

func (f *CoworkingFacade) Spaces() []catalog.Space {
	return catalog.Spaces()
}

func (f *CoworkingFacade) HealthCheck(ctx context.Context) error {
	if f.health == nil {
		return nil
	}
	return f.health.HealthCheck(ctx)
}
