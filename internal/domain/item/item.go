package item

import (
	"strings"

	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/shareit-platform/service-shareit/internal/domain/user"
)

// Item is a thing an owner lists for others to borrow.
type Item struct {
	id          int64
	name        string
	description string
	available   bool
	owner       *user.User
	requestID   *int64
}

// NewItem creates a new Item with validated fields. The id is assigned on save.
func NewItem(owner *user.User, name, description string, available bool, requestID *int64) (*Item, error) {
	if owner == nil {
		return nil, domain.NewValidationError("owner is required")
	}
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if description == "" {
		return nil, domain.NewValidationError("description is required")
	}
	return &Item{
		name:        name,
		description: description,
		available:   available,
		owner:       owner,
		requestID:   requestID,
	}, nil
}

// Reconstruct rebuilds an Item from persistence data (no validation).
func Reconstruct(id int64, name, description string, available bool, owner *user.User, requestID *int64) *Item {
	return &Item{
		id:          id,
		name:        name,
		description: description,
		available:   available,
		owner:       owner,
		requestID:   requestID,
	}
}

// --- Getters ---

func (i *Item) ID() int64           { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
func (i *Item) Owner() *user.User   { return i.owner }

// RequestID returns the item request this item answers, if any.
func (i *Item) RequestID() *int64 { return i.requestID }

// SetID records the identifier assigned by storage.
func (i *Item) SetID(id int64) { i.id = id }

// --- Behavior ---

// IsOwnedBy checks if the item belongs to the given user.
func (i *Item) IsOwnedBy(userID int64) bool {
	return i.owner != nil && i.owner.ID() == userID
}

// Update applies a partial update; nil or blank values are ignored.
func (i *Item) Update(name, description *string, available *bool) {
	if name != nil && strings.TrimSpace(*name) != "" {
		i.name = strings.TrimSpace(*name)
	}
	if description != nil && strings.TrimSpace(*description) != "" {
		i.description = strings.TrimSpace(*description)
	}
	if available != nil {
		i.available = *available
	}
}
