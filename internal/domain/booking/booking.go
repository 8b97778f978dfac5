package booking

import (
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/shareit-platform/service-shareit/internal/domain/item"
	"github.com/shareit-platform/service-shareit/internal/domain/user"
)

// Booking is the aggregate root for a time-bounded rental of an item.
type Booking struct {
	id     int64
	start  time.Time
	end    time.Time
	item   *item.Item
	booker *user.User
	status Status
}

// NewBooking creates a new Booking with status=WAITING.
// Callers validate the request window against the clock before calling.
func NewBooking(it *item.Item, booker *user.User, start, end time.Time) (*Booking, error) {
	if it == nil {
		return nil, domain.NewValidationError("item is required")
	}
	if booker == nil {
		return nil, domain.NewValidationError("booker is required")
	}
	if !start.Before(end) {
		return nil, domain.NewValidationError("booking start must be before its end")
	}
	return &Booking{
		start:  start.UTC(),
		end:    end.UTC(),
		item:   it,
		booker: booker,
		status: StatusWaiting,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(id int64, start, end time.Time, it *item.Item, booker *user.User, status Status) *Booking {
	return &Booking{
		id:     id,
		start:  start,
		end:    end,
		item:   it,
		booker: booker,
		status: status,
	}
}

// --- Getters ---

// ID returns the booking's identifier.
func (b *Booking) ID() int64 { return b.id }

// Start returns the instant the rental begins.
func (b *Booking) Start() time.Time { return b.start }

// End returns the instant the rental ends.
func (b *Booking) End() time.Time { return b.end }

// Item returns the booked item.
func (b *Booking) Item() *item.Item { return b.item }

// Booker returns the user who requested the booking.
func (b *Booking) Booker() *user.User { return b.booker }

// Status returns the current lifecycle status.
func (b *Booking) Status() Status { return b.status }

// SetID records the identifier assigned by storage.
func (b *Booking) SetID(id int64) { b.id = id }

// --- Behavior ---

// IsBookedBy reports whether userID requested this booking.
func (b *Booking) IsBookedBy(userID int64) bool {
	return b.booker != nil && b.booker.ID() == userID
}

// IsOwnedBy reports whether userID owns the booked item.
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.item != nil && b.item.IsOwnedBy(userID)
}

// Decide records the owner's verdict: APPROVED when approved, REJECTED otherwise.
// A booking that was already decided is overwritten; no transition guard applies.
func (b *Booking) Decide(approved bool) {
	if approved {
		b.status = StatusApproved
		return
	}
	b.status = StatusRejected
}

// HasEndedBy reports whether the rental window closed strictly before now.
func (b *Booking) HasEndedBy(now time.Time) bool {
	return b.end.Before(now)
}
