package model

import "time"

// Booking is an immutable reservation of a catalog offer by a user.
type Booking struct {
	ID          string
	UserID      string
	SpaceType   string
	SubType     string
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount int64
	CreatedAt   time.Time
}

// BookingRequest carries the caller supplied fields of a new booking.
// A zero TotalAmount asks the ledger to quote the price from the catalog.
type BookingRequest struct {
	UserID      string
	SpaceType   string
	SubType     string
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount int64
}
