package usecase

import (
	"context"
	"iter"
	"strings"

	"github.com/polkiloo/coworking/internal/domain/catalog"
	domainErrors "github.com/polkiloo/coworking/internal/domain/errors"
	"github.com/polkiloo/coworking/internal/domain/model"
	"github.com/polkiloo/coworking/internal/domain/repository"
)

// BookingUseCase records and lists reservations. It trusts the caller to have
// authenticated the user the booking is made for.
type BookingUseCase struct {
	bookings repository.BookingRepository
}

// NewBookingUseCase constructs BookingUseCase.
func NewBookingUseCase(bookings repository.BookingRepository) *BookingUseCase {
	return &BookingUseCase{bookings: bookings}
}

// Create validates the request against the catalog and appends it to the ledger.
// A zero total amount is replaced by the catalog quote for the booked span.
func (u *BookingUseCase) Create(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" || req.TotalAmount < 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	offer, ok := catalog.Lookup(strings.TrimSpace(req.SpaceType), strings.TrimSpace(req.SubType))
	if !ok {
		return nil, domainErrors.ErrInvalidSpace
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() || !req.StartDate.Before(req.EndDate) {
		return nil, domainErrors.ErrInvalidDateRange
	}

	amount := req.TotalAmount
	if amount == 0 {
		amount = catalog.Quote(offer, req.StartDate, req.EndDate)
	}

	return u.bookings.Create(ctx, model.Booking{
		UserID:      userID,
		SpaceType:   strings.TrimSpace(req.SpaceType),
		SubType:     strings.TrimSpace(req.SubType),
		StartDate:   req.StartDate.UTC(),
		EndDate:     req.EndDate.UTC(),
		TotalAmount: amount,
	})
}

// ListByUser returns a lazy sequence of the user's bookings in no particular order.
func (u *BookingUseCase) ListByUser(ctx context.Context, userID string) iter.Seq2[model.Booking, error] {
	return u.bookings.ListByUser(ctx, userID)
}
