package repository

import (
	"context"
	"testing"
	"time"

	bookingDomain "github.com/shareit-platform/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-shareit/internal/domain/item"
	userDomain "github.com/shareit-platform/service-shareit/internal/domain/user"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every pooled connection to ":memory:" would otherwise see its own empty database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, repo *GormUserRepository, name, email string) *userDomain.User {
	t.Helper()
	u, err := userDomain.NewUser(name, email)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), u))
	return u
}

func seedItem(t *testing.T, repo *GormItemRepository, owner *userDomain.User, name string, available bool) *itemDomain.Item {
	t.Helper()
	it, err := itemDomain.NewItem(owner, name, name+" description", available, nil)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), it))
	return it
}

func seedBooking(t *testing.T, repo *GormBookingRepository, it *itemDomain.Item, booker *userDomain.User, start, end time.Time, status bookingDomain.Status) *bookingDomain.Booking {
	t.Helper()
	bk, err := bookingDomain.NewBooking(it, booker, start, end)
	require.NoError(t, err)
	switch status {
	case bookingDomain.StatusApproved:
		bk.Decide(true)
	case bookingDomain.StatusRejected:
		bk.Decide(false)
	}
	require.NoError(t, repo.Save(context.Background(), bk))
	return bk
}
