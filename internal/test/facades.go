package test

import (
	"context"
	"time"

	"github.com/polkiloo/coworking/internal/domain/catalog"
	"github.com/polkiloo/coworking/internal/domain/model"
)

// BookingFacadeStub provides controllable behaviour for booking endpoints.
type BookingFacadeStub struct {
	CreateFn   func(context.Context, string, model.BookingRequest) (*model.Booking, error)
	BookingsFn func(context.Context, string, string) ([]model.Booking, error)
}

// CreateBooking delegates to provided function or echoes the request back.
func (s BookingFacadeStub) CreateBooking(ctx context.Context, actorID string, req model.BookingRequest) (*model.Booking, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, actorID, req)
	}
	userID := req.UserID
	if userID == "" {
		userID = actorID
	}
	return &model.Booking{
		ID:          "booking-1",
		UserID:      userID,
		SpaceType:   req.SpaceType,
		SubType:     req.SubType,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalAmount: req.TotalAmount,
		CreatedAt:   time.Unix(0, 0).UTC(),
	}, nil
}

// Bookings returns predefined bookings for given user.
func (s BookingFacadeStub) Bookings(ctx context.Context, actorID, userID string) ([]model.Booking, error) {
	if s.BookingsFn != nil {
		return s.BookingsFn(ctx, actorID, userID)
	}
	return []model.Booking{{ID: "booking-1", UserID: userID, SpaceType: catalog.Conference, SubType: "Hourly"}}, nil
}

// CatalogFacadeStub serves the real catalog unless overridden.
type CatalogFacadeStub struct {
	SpacesFn func() []catalog.Space
}

// Spaces returns the configured catalog.
func (s CatalogFacadeStub) Spaces() []catalog.Space {
	if s.SpacesFn != nil {
		return s.SpacesFn()
	}
	return catalog.Spaces()
}

// HealthFacadeStub reports configured health.
type HealthFacadeStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthFacadeStub) HealthCheck(context.Context) error {
	return s.Err
}

// HealthCheckerStub counts health probes.
type HealthCheckerStub struct {
	Err   error
	Calls int
}

// HealthCheck records the call and returns the configured error.
func (s *HealthCheckerStub) HealthCheck(context.Context) error {
	s.Calls++
	return s.Err
}
