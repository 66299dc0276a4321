package handlers

import (
	"context"

	"github.com/polkiloo/coworking/internal/domain/catalog"
	"github.com/polkiloo/coworking/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, name string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, token string) error
	Profile(ctx context.Context, userID string) (*model.User, error)
}

// BookingFacade encapsulates booking operations exposed via HTTP.
// actorID is always the authenticated caller.
type BookingFacade interface {
	CreateBooking(ctx context.Context, actorID string, req model.BookingRequest) (*model.Booking, error)
	Bookings(ctx context.Context, actorID, userID string) ([]model.Booking, error)
}

// CatalogFacade serves the space catalog.
type CatalogFacade interface {
	Spaces() []catalog.Space
}

type HealthFacade interface {
	HealthCheck(ctx context.Context) error
}

// CoworkingFacade aggregates the full set of operations used across handlers.
type CoworkingFacade interface {
	AuthFacade
	BookingFacade
	CatalogFacade
	HealthFacade
}
