//go:build integration

package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/shareit-platform/service-shareit/internal/application"
	"github.com/shareit-platform/service-shareit/internal/config"
	"github.com/shareit-platform/service-shareit/internal/database"
	"github.com/shareit-platform/service-shareit/internal/repository"
	"github.com/shareit-platform/service-shareit/internal/timeutil"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB      *gorm.DB
	Cleanup func()
}

// shareitStack holds wired-up services over the container database.
type shareitStack struct {
	now      time.Time
	conv     timeutil.Converter
	Users    *application.UserService
	Items    *application.ItemService
	Comments *application.CommentService
	Bookings *application.BookingService
}

// setupPostgres starts a PostgreSQL testcontainer and applies the SQL migrations.
func setupPostgres(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_shareit",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dbCfg := config.DatabaseConfig{
		Host:            pgHost,
		Port:            pgPort.Int(),
		User:            "test",
		Password:        "test",
		DBName:          "test_shareit",
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}
	log := zap.NewNop()

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = database.Connect(dbCfg, log)
		return err == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, database.RunMigrations(dbCfg.DatabaseURL(), "migrations", log))

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{DB: db, Cleanup: cleanup}
}

// setupShareitStack wires the services with a settable clock. Display times
// use a non-UTC zone so every conversion is exercised.
func setupShareitStack(t *testing.T, db *gorm.DB) *shareitStack {
	t.Helper()
	log, _ := zap.NewDevelopment()

	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	requestRepo := repository.NewGormRequestRepository(db)

	st := &shareitStack{
		now:  time.Now().UTC(),
		conv: timeutil.NewConverter(time.FixedZone("UTC+3", 3*3600)),
	}
	clock := func() time.Time { return st.now }

	st.Users = application.NewUserService(userRepo, log)
	st.Items = application.NewItemService(itemRepo, commentRepo, bookingRepo, userRepo, requestRepo, st.conv, clock, log)
	st.Comments = application.NewCommentService(commentRepo, itemRepo, userRepo, bookingRepo, clock, log)
	st.Bookings = application.NewBookingService(bookingRepo, itemRepo, userRepo, st.conv, clock, log)
	return st
}

func (st *shareitStack) at(offset time.Duration) timeutil.LocalDateTime {
	return st.conv.ToLocal(st.now.Add(offset))
}

func (st *shareitStack) atPtr(offset time.Duration) *timeutil.LocalDateTime {
	l := st.at(offset)
	return &l
}

func (st *shareitStack) createUser(t *testing.T, name, email string) int64 {
	t.Helper()
	u, err := st.Users.CreateUser(context.Background(), application.CreateUserRequest{Name: name, Email: email})
	require.NoError(t, err)
	return u.ID
}

func (st *shareitStack) createItem(t *testing.T, ownerID int64, name string, available bool) int64 {
	t.Helper()
	it, err := st.Items.CreateItem(context.Background(), ownerID, application.CreateItemRequest{
		Name: name, Description: name + " to share", Available: &available,
	})
	require.NoError(t, err)
	return it.ID
}

func (st *shareitStack) book(t *testing.T, bookerID, itemID int64, from, to time.Duration) int64 {
	t.Helper()
	bk, err := st.Bookings.CreateBooking(context.Background(), bookerID, application.CreateBookingRequest{
		ItemID: itemID, Start: st.atPtr(from), End: st.atPtr(to),
	})
	require.NoError(t, err)
	return bk.ID
}
