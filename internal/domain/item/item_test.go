package item

import (
	"testing"
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/shareit-platform/service-shareit/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Validation(t *testing.T) {
	owner := user.Reconstruct(1, "Owner", "owner@example.com")

	_, err := NewItem(nil, "Drill", "cordless", true, nil)
	assert.True(t, domain.IsValidation(err))
	_, err = NewItem(owner, "  ", "cordless", true, nil)
	assert.True(t, domain.IsValidation(err))
	_, err = NewItem(owner, "Drill", "", true, nil)
	assert.True(t, domain.IsValidation(err))

	it, err := NewItem(owner, " Drill ", "cordless", false, nil)
	require.NoError(t, err)
	assert.Equal(t, "Drill", it.Name())
	assert.True(t, it.IsOwnedBy(1))
	assert.False(t, it.IsOwnedBy(2))
}

func TestItem_UpdateIgnoresBlankFields(t *testing.T) {
	it := Reconstruct(5, "Drill", "cordless", true, user.Reconstruct(1, "Owner", "owner@example.com"), nil)

	blank := " "
	off := false
	it.Update(&blank, nil, &off)

	assert.Equal(t, "Drill", it.Name())
	assert.Equal(t, "cordless", it.Description())
	assert.False(t, it.Available())
}

func TestNewComment(t *testing.T) {
	author := user.Reconstruct(2, "Booker", "booker@example.com")
	created := time.Date(2026, 1, 1, 15, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	c, err := NewComment(5, author, " thanks ", created)
	require.NoError(t, err)
	assert.Equal(t, "thanks", c.Text())
	assert.Equal(t, time.UTC, c.Created().Location())

	_, err = NewComment(5, author, "", created)
	assert.True(t, domain.IsValidation(err))
}
