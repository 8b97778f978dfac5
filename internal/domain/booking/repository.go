package booking

import (
	"context"
	"time"
)

// ItemBookingDates holds the neighbouring bookings of one item around "now".
type ItemBookingDates struct {
	ItemID int64
	// LastEnd is the latest end strictly before now.
	LastEnd *time.Time
	// NextStart is the earliest start strictly after now.
	NextStart *time.Time
}

// Repository defines the persistence contract for booking aggregates.
// Every list query returns bookings ordered by start descending; "now" is
// always supplied by the caller.
type Repository interface {
	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// FindByBooker retrieves the bookings a user requested that match view at now.
	FindByBooker(ctx context.Context, bookerID int64, view View, now time.Time) ([]*Booking, error)

	// FindByOwner retrieves bookings of items owned by a user that match view at now.
	FindByOwner(ctx context.Context, ownerID int64, view View, now time.Time) ([]*Booking, error)

	// FindFinishedByItemAndBooker retrieves bookings of the item by the booker that ended before now.
	FindFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64, now time.Time) ([]*Booking, error)

	// FindBookingDatesByOwner aggregates last/next booking dates for every booked item of an owner.
	FindBookingDatesByOwner(ctx context.Context, ownerID int64, now time.Time) ([]ItemBookingDates, error)

	// Save persists a new booking and assigns its id.
	Save(ctx context.Context, b *Booking) error

	// Update persists the status of an existing booking.
	Update(ctx context.Context, b *Booking) error
}
