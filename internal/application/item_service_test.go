package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/shareit-platform/service-shareit/internal/application"
	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestItemService_CreateItem(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	ownerID := st.createUser(t, "Owner", "owner@example.com")

	it, err := st.Items.CreateItem(ctx, ownerID, application.CreateItemRequest{
		Name: "Drill", Description: "cordless", Available: boolPtr(true),
	})
	require.NoError(t, err)
	assert.NotZero(t, it.ID)
	assert.True(t, it.Available)
	assert.Nil(t, it.RequestID)

	_, err = st.Items.CreateItem(ctx, 999, application.CreateItemRequest{
		Name: "Drill", Description: "cordless", Available: boolPtr(true),
	})
	assert.True(t, domain.IsNotFound(err), "unknown owner: %v", err)

	missingRequest := int64(42)
	_, err = st.Items.CreateItem(ctx, ownerID, application.CreateItemRequest{
		Name: "Drill", Description: "cordless", Available: boolPtr(true), RequestID: &missingRequest,
	})
	assert.True(t, domain.IsNotFound(err), "unknown request: %v", err)

	_, err = st.Items.CreateItem(ctx, ownerID, application.CreateItemRequest{Name: "Drill", Description: "cordless"})
	assert.True(t, domain.IsValidation(err), "missing availability: %v", err)
}

func TestItemService_UpdateItem(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	ownerID := st.createUser(t, "Owner", "owner@example.com")
	otherID := st.createUser(t, "Other", "other@example.com")
	itemID := st.createItem(t, ownerID, "Drill", true)

	_, err := st.Items.UpdateItem(ctx, otherID, itemID, application.UpdateItemRequest{Name: strPtr("Mine now")})
	assert.True(t, domain.IsLackOfRights(err), "got %v", err)

	_, err = st.Items.UpdateItem(ctx, ownerID, 999, application.UpdateItemRequest{Name: strPtr("x")})
	assert.True(t, domain.IsNotFound(err))

	updated, err := st.Items.UpdateItem(ctx, ownerID, itemID, application.UpdateItemRequest{Available: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, updated.Available)
	assert.Equal(t, "Drill", updated.Name)

	got, err := st.Items.GetItem(ctx, itemID)
	require.NoError(t, err)
	assert.False(t, got.Available)
	assert.Empty(t, got.Comments)
}

func TestItemService_GetOwnerItems_BookingDates(t *testing.T) {
	st := newTestStack(t)
	ownerID, _, _ := seedFiveBookings(t, st)

	items, err := st.Items.GetOwnerItems(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].LastBooking)
	require.NotNil(t, items[0].NextBooking)
	assert.Equal(t, st.at(-time.Hour), *items[0].LastBooking)
	assert.Equal(t, st.at(time.Hour), *items[0].NextBooking)

	none, err := st.Items.GetOwnerItems(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestItemService_SearchItems(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	ownerID := st.createUser(t, "Owner", "owner@example.com")
	st.createItem(t, ownerID, "Garden Hose", true)
	st.createItem(t, ownerID, "Hose reel", false)

	found, err := st.Items.SearchItems(ctx, "hOsE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Garden Hose", found[0].Name)

	blank, err := st.Items.SearchItems(ctx, "   ")
	require.NoError(t, err)
	assert.NotNil(t, blank)
	assert.Empty(t, blank)
}

func TestCommentService_AddComment(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	ownerID := st.createUser(t, "Owner", "owner@example.com")
	bookerID := st.createUser(t, "Booker", "booker@example.com")
	itemID := st.createItem(t, ownerID, "Tent", true)

	_, err := st.Comments.AddComment(ctx, bookerID, itemID, application.CreateCommentRequest{Text: "nice"})
	assert.True(t, domain.IsNotAvailable(err), "no booking yet: %v", err)

	st.book(t, bookerID, itemID, time.Hour, 2*time.Hour)
	_, err = st.Comments.AddComment(ctx, bookerID, itemID, application.CreateCommentRequest{Text: "nice"})
	assert.True(t, domain.IsNotAvailable(err), "booking not ended: %v", err)

	_, err = st.Comments.AddComment(ctx, bookerID, 999, application.CreateCommentRequest{Text: "nice"})
	assert.True(t, domain.IsNotFound(err))

	_, err = st.Comments.AddComment(ctx, 999, itemID, application.CreateCommentRequest{Text: "nice"})
	assert.True(t, domain.IsNotAvailable(err), "unknown author has no finished booking: %v", err)

	st.now = baseNow.Add(3 * time.Hour)
	c, err := st.Comments.AddComment(ctx, bookerID, itemID, application.CreateCommentRequest{Text: "Great tent"})
	require.NoError(t, err)
	assert.Equal(t, "Booker", c.AuthorName)
	assert.True(t, c.Created.Equal(st.now))

	_, err = st.Comments.AddComment(ctx, ownerID, itemID, application.CreateCommentRequest{Text: "mine"})
	assert.True(t, domain.IsNotAvailable(err), "owner never rented it: %v", err)

	got, err := st.Items.GetItem(ctx, itemID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Great tent", got.Comments[0].Text)
}
