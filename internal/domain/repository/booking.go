package repository

import (
	"context"
	"iter"

	"github.com/polkiloo/coworking/internal/domain/model"
)

// BookingRepository describes persistence operations with the booking ledger.
type BookingRepository interface {
	Create(ctx context.Context, booking model.Booking) (*model.Booking, error)
	// ListByUser yields bookings of the user. Every range over the sequence issues a new query.
	ListByUser(ctx context.Context, userID string) iter.Seq2[model.Booking, error]
}
