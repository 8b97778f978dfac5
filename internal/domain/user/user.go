package user

import (
	"strings"

	"github.com/shareit-platform/service-shareit/internal/domain"
)

// User is a registered member who can list, request and book items.
type User struct {
	id    int64
	name  string
	email string
}

// NewUser creates a new User with validated fields. The id is assigned on save.
func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email is required")
	}
	return &User{name: name, email: email}, nil
}

// Reconstruct rebuilds a User from persistence data (no validation).
func Reconstruct(id int64, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ID() int64     { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

// SetID records the identifier assigned by storage.
func (u *User) SetID(id int64) { u.id = id }

// Update applies a partial update; nil or blank values are ignored.
func (u *User) Update(name, email *string) {
	if email != nil && strings.TrimSpace(*email) != "" {
		u.email = strings.TrimSpace(*email)
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		u.name = strings.TrimSpace(*name)
	}
}
