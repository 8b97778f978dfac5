package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/shareit-platform/service-shareit/internal/application"
	"github.com/shareit-platform/service-shareit/internal/repository"
	"github.com/shareit-platform/service-shareit/internal/timeutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseNow = time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

// testStack wires every service over one in-memory database and a settable clock.
type testStack struct {
	now      time.Time
	conv     timeutil.Converter
	Users    *application.UserService
	Items    *application.ItemService
	Comments *application.CommentService
	Bookings *application.BookingService
	Requests *application.RequestService
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, repository.AutoMigrate(db))

	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	requestRepo := repository.NewGormRequestRepository(db)

	st := &testStack{now: baseNow, conv: timeutil.NewConverter(time.UTC)}
	clock := func() time.Time { return st.now }
	log := zap.NewNop()

	st.Users = application.NewUserService(userRepo, log)
	st.Items = application.NewItemService(itemRepo, commentRepo, bookingRepo, userRepo, requestRepo, st.conv, clock, log)
	st.Comments = application.NewCommentService(commentRepo, itemRepo, userRepo, bookingRepo, clock, log)
	st.Bookings = application.NewBookingService(bookingRepo, itemRepo, userRepo, st.conv, clock, log)
	st.Requests = application.NewRequestService(requestRepo, itemRepo, userRepo, st.conv, clock, log)
	return st
}

// at renders an offset from the current clock as a display time.
func (st *testStack) at(offset time.Duration) timeutil.LocalDateTime {
	return st.conv.ToLocal(st.now.Add(offset))
}

func (st *testStack) atPtr(offset time.Duration) *timeutil.LocalDateTime {
	l := st.at(offset)
	return &l
}

func (st *testStack) createUser(t *testing.T, name, email string) int64 {
	t.Helper()
	u, err := st.Users.CreateUser(context.Background(), application.CreateUserRequest{Name: name, Email: email})
	require.NoError(t, err)
	return u.ID
}

func (st *testStack) createItem(t *testing.T, ownerID int64, name string, available bool) int64 {
	t.Helper()
	it, err := st.Items.CreateItem(context.Background(), ownerID, application.CreateItemRequest{
		Name:        name,
		Description: name + " for rent",
		Available:   &available,
	})
	require.NoError(t, err)
	return it.ID
}

func (st *testStack) book(t *testing.T, bookerID, itemID int64, from, to time.Duration) int64 {
	t.Helper()
	bk, err := st.Bookings.CreateBooking(context.Background(), bookerID, application.CreateBookingRequest{
		ItemID: itemID,
		Start:  st.atPtr(from),
		End:    st.atPtr(to),
	})
	require.NoError(t, err)
	return bk.ID
}
