package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-platform/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-shareit/internal/domain/item"
	userDomain "github.com/shareit-platform/service-shareit/internal/domain/user"
	"github.com/shareit-platform/service-shareit/internal/metrics"
	"github.com/shareit-platform/service-shareit/internal/timeutil"
	"go.uber.org/zap"
)

// CreateBookingRequest holds the data needed to create a new booking.
// Any status supplied by the client is not part of the shape and is ignored.
type CreateBookingRequest struct {
	ItemID int64                   `json:"itemId" binding:"required,gt=0"`
	Start  *timeutil.LocalDateTime `json:"start" binding:"required"`
	End    *timeutil.LocalDateTime `json:"end" binding:"required"`
}

// Validate applies the date rule at now and returns the window as instants.
// Start must be strictly after now and strictly before end.
func (r CreateBookingRequest) Validate(conv timeutil.Converter, now time.Time) (start, end time.Time, err error) {
	if r.Start == nil || r.End == nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("booking start and end are required")
	}
	start = conv.ToInstant(*r.Start)
	end = conv.ToInstant(*r.End)
	if !start.After(now) {
		return time.Time{}, time.Time{}, domain.NewValidationError("booking start must be in the future")
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, domain.NewValidationError("booking start must be before its end")
	}
	return start, end, nil
}

// BookingService is the application service orchestrating booking use cases.
type BookingService struct {
	repo   bookingDomain.Repository
	items  itemDomain.Repository
	users  userDomain.Repository
	conv   timeutil.Converter
	now    Clock
	logger *zap.Logger
}

// NewBookingService creates a new BookingService. A nil clock means the wall clock.
func NewBookingService(
	repo bookingDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	conv timeutil.Converter,
	now Clock,
	logger *zap.Logger,
) *BookingService {
	if now == nil {
		now = defaultClock
	}
	return &BookingService{
		repo:   repo,
		items:  items,
		users:  users,
		conv:   conv,
		now:    now,
		logger: logger,
	}
}

// CreateBooking registers a WAITING booking of an available item.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID int64, req CreateBookingRequest) (*BookingDTO, error) {
	start, end, err := req.Validate(s.conv, s.now())
	if err != nil {
		return nil, err
	}

	booker, err := s.users.FindByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.FindByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !it.Available() {
		return nil, domain.NewNotAvailableError(fmt.Sprintf("item with id = %d is not available for booking", it.ID()))
	}

	bk, err := bookingDomain.NewBooking(it, booker, start, end)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, bk); err != nil {
		s.logger.Error("failed to save booking", zap.Error(err))
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	metrics.IncBookingStatus(bk.Status().String())
	s.logger.Info("booking created",
		zap.Int64("booking_id", bk.ID()),
		zap.Int64("item_id", it.ID()),
		zap.Int64("user_id", bookerID),
	)
	result := toBookingDTO(bk, s.conv)
	return &result, nil
}

// ApproveBooking records the owner's decision on a booking.
// A decided booking may be decided again; the last decision wins.
func (s *BookingService) ApproveBooking(ctx context.Context, userID, bookingID int64, approved bool) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bk.IsOwnedBy(userID) {
		return nil, domain.NewLackOfRightsError("only the item owner can approve or reject a booking")
	}

	bk.Decide(approved)
	if err := s.repo.Update(ctx, bk); err != nil {
		s.logger.Error("failed to update booking", zap.Int64("booking_id", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	metrics.IncBookingStatus(bk.Status().String())
	s.logger.Info("booking decided",
		zap.Int64("booking_id", bookingID),
		zap.Int64("user_id", userID),
		zap.String("status", bk.Status().String()),
	)
	result := toBookingDTO(bk, s.conv)
	return &result, nil
}

// GetBooking returns a booking visible to its booker or the item owner.
func (s *BookingService) GetBooking(ctx context.Context, userID, bookingID int64) (*BookingDTO, error) {
	bk, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !bk.IsBookedBy(userID) && !bk.IsOwnedBy(userID) {
		return nil, domain.NewLackOfRightsError("only the booker or the item owner can view a booking")
	}
	result := toBookingDTO(bk, s.conv)
	return &result, nil
}

// GetBookerBookings lists the bookings a user made. An unknown user gets an empty list.
func (s *BookingService) GetBookerBookings(ctx context.Context, bookerID int64, view bookingDomain.View) ([]BookingDTO, error) {
	bookings, err := s.repo.FindByBooker(ctx, bookerID, view, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toBookingDTOs(bookings, s.conv), nil
}

// GetOwnerBookings lists bookings of the items a user owns. The user must exist.
func (s *BookingService) GetOwnerBookings(ctx context.Context, ownerID int64, view bookingDomain.View) ([]BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	bookings, err := s.repo.FindByOwner(ctx, ownerID, view, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toBookingDTOs(bookings, s.conv), nil
}
