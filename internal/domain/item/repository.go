package item

import "context"

// Repository defines persistence operations for items.
type Repository interface {
	// FindByID returns a domain NotFound error when the item does not exist.
	FindByID(ctx context.Context, id int64) (*Item, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]*Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)

	// Search matches text case-insensitively against name or description of available items.
	Search(ctx context.Context, text string) ([]*Item, error)

	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
}

// CommentRepository defines persistence operations for item comments.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	FindByItemIDs(ctx context.Context, itemIDs []int64) ([]*Comment, error)
}
