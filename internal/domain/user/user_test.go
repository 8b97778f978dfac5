package user

import (
	"testing"

	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(" Alice ", " alice@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name())
	assert.Equal(t, "alice@example.com", u.Email())

	_, err = NewUser("Alice", "  ")
	assert.True(t, domain.IsValidation(err))

	_, err = NewUser("", "alice@example.com")
	assert.True(t, domain.IsValidation(err))
}

func TestUser_Update(t *testing.T) {
	u := Reconstruct(1, "Alice", "alice@example.com")

	blank := " "
	u.Update(&blank, &blank)
	assert.Equal(t, "Alice", u.Name())
	assert.Equal(t, "alice@example.com", u.Email())

	name, email := "Alicia", "alicia@example.com"
	u.Update(&name, &email)
	assert.Equal(t, "Alicia", u.Name())
	assert.Equal(t, "alicia@example.com", u.Email())
}
