package application_test

import (
	"context"
	"testing"

	"github.com/shareit-platform/service-shareit/internal/application"
	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Lifecycle(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	created, err := st.Users.CreateUser(ctx, application.CreateUserRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	updated, err := st.Users.UpdateUser(ctx, created.ID, application.UpdateUserRequest{Name: strPtr("Alicia")})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	same, err := st.Users.UpdateUser(ctx, created.ID, application.UpdateUserRequest{Email: strPtr("alice@example.com")})
	require.NoError(t, err, "keeping one's own email")
	assert.Equal(t, created.ID, same.ID)

	require.NoError(t, st.Users.DeleteUser(ctx, created.ID))
	_, err = st.Users.GetUser(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
	assert.NoError(t, st.Users.DeleteUser(ctx, created.ID))
}

func TestUserService_DuplicateEmail(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()
	st.createUser(t, "Alice", "alice@example.com")
	bobID := st.createUser(t, "Bob", "bob@example.com")

	_, err := st.Users.CreateUser(ctx, application.CreateUserRequest{Name: "Eve", Email: "alice@example.com"})
	assert.True(t, domain.IsDuplicateData(err), "got %v", err)

	_, err = st.Users.UpdateUser(ctx, bobID, application.UpdateUserRequest{Email: strPtr("alice@example.com")})
	assert.True(t, domain.IsDuplicateData(err), "got %v", err)

	bob, err := st.Users.GetUser(ctx, bobID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", bob.Email)
}

func TestUserService_Validation(t *testing.T) {
	st := newTestStack(t)
	ctx := context.Background()

	for name, req := range map[string]application.CreateUserRequest{
		"missing name":  {Email: "a@example.com"},
		"missing email": {Name: "A"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := st.Users.CreateUser(ctx, req)
			assert.True(t, domain.IsValidation(err), "got %v", err)
		})
	}

	_, err := st.Users.UpdateUser(ctx, 999, application.UpdateUserRequest{Name: strPtr("x")})
	assert.True(t, domain.IsNotFound(err))
}
