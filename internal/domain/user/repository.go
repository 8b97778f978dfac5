package user

import "context"

// Repository defines persistence operations for users.
type Repository interface {
	// FindByID returns a domain NotFound error when the user does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail returns (nil, nil) when no user holds the email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
}
