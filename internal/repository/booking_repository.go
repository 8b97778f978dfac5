package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-platform/service-shareit/internal/domain/booking"
	"gorm.io/gorm"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null"`
	ItemID    int64     `gorm:"not null;index"`
	Item      ItemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	BookerID  int64     `gorm:"not null;index"`
	Booker    UserModel `gorm:"foreignKey:BookerID;constraint:OnDelete:CASCADE"`
	Status    string    `gorm:"not null;size:20;index"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking with its item, item owner and booker.
func (r *GormBookingRepository) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.withAssociations(ctx).Where("bookings.id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id)
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindByBooker retrieves the bookings a user requested that match view at now.
func (r *GormBookingRepository) FindByBooker(ctx context.Context, bookerID int64, view bookingDomain.View, now time.Time) ([]*bookingDomain.Booking, error) {
	query := r.withAssociations(ctx).Where("bookings.booker_id = ?", bookerID)
	return r.list(applyView(query, view, now))
}

// FindByOwner retrieves bookings of items owned by a user that match view at now.
func (r *GormBookingRepository) FindByOwner(ctx context.Context, ownerID int64, view bookingDomain.View, now time.Time) ([]*bookingDomain.Booking, error) {
	query := r.withAssociations(ctx).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.list(applyView(query, view, now))
}

// FindFinishedByItemAndBooker retrieves bookings of the item by the booker that ended before now.
func (r *GormBookingRepository) FindFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64, now time.Time) ([]*bookingDomain.Booking, error) {
	query := r.withAssociations(ctx).
		Where("bookings.item_id = ? AND bookings.booker_id = ?", itemID, bookerID).
		Where("bookings.end_date < ?", now.UTC())
	return r.list(query)
}

// FindBookingDatesByOwner folds the owner's bookings into last/next dates per item.
func (r *GormBookingRepository) FindBookingDatesByOwner(ctx context.Context, ownerID int64, now time.Time) ([]bookingDomain.ItemBookingDates, error) {
	type row struct {
		ItemID    int64
		StartDate time.Time
		EndDate   time.Time
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Select("bookings.item_id, bookings.start_date, bookings.end_date").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID).
		Order("bookings.item_id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load owner booking dates: %w", err)
	}

	var result []bookingDomain.ItemBookingDates
	index := make(map[int64]int)
	for _, rw := range rows {
		pos, ok := index[rw.ItemID]
		if !ok {
			pos = len(result)
			index[rw.ItemID] = pos
			result = append(result, bookingDomain.ItemBookingDates{ItemID: rw.ItemID})
		}
		dates := &result[pos]
		if rw.EndDate.Before(now) && (dates.LastEnd == nil || rw.EndDate.After(*dates.LastEnd)) {
			end := rw.EndDate
			dates.LastEnd = &end
		}
		if rw.StartDate.After(now) && (dates.NextStart == nil || rw.StartDate.Before(*dates.NextStart)) {
			start := rw.StartDate
			dates.NextStart = &start
		}
	}
	return result, nil
}

// Save persists a new booking and assigns its id.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model := toBookingModel(bk)
	if err := r.db.WithContext(ctx).Omit("Item", "Booker").Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	bk.SetID(model.ID)
	return nil
}

// Update persists the status of an existing booking. Concurrent updates are last-write-wins.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ?", bk.ID()).
		Update("status", bk.Status().String())
	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Booking", bk.ID())
	}
	return nil
}

func (r *GormBookingRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Preload("Item").
		Preload("Item.Owner").
		Preload("Booker")
}

func (r *GormBookingRepository) list(query *gorm.DB) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := query.
		Order("bookings.start_date DESC").
		Order("bookings.id DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bk, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}

// applyView translates a listing view into SQL predicates mirroring View.Matches.
func applyView(query *gorm.DB, view bookingDomain.View, now time.Time) *gorm.DB {
	now = now.UTC()
	if status, ok := view.Status(); ok {
		return query.Where("bookings.status = ?", status.String())
	}
	window, ok := view.Window()
	if !ok {
		return query
	}
	switch window {
	case bookingDomain.WindowCurrent:
		return query.Where("bookings.start_date < ? AND bookings.end_date > ?", now, now)
	case bookingDomain.WindowPast:
		return query.Where("bookings.end_date < ?", now)
	case bookingDomain.WindowFuture:
		return query.Where("bookings.start_date > ?", now)
	}
	return query
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:        bk.ID(),
		StartDate: bk.Start().UTC(),
		EndDate:   bk.End().UTC(),
		ItemID:    bk.Item().ID(),
		BookerID:  bk.Booker().ID(),
		Status:    bk.Status().String(),
	}
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	status, err := bookingDomain.ParseStatus(m.Status)
	if err != nil {
		return nil, err
	}
	return bookingDomain.ReconstructBooking(
		m.ID,
		m.StartDate.UTC(),
		m.EndDate.UTC(),
		toDomainItem(&m.Item),
		toDomainUser(&m.Booker),
		status,
	), nil
}
