package request

import "context"

// Repository defines persistence operations for item requests.
// List methods return requests newest first.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)
	FindByRequestorID(ctx context.Context, requestorID int64) ([]*ItemRequest, error)
	FindAll(ctx context.Context) ([]*ItemRequest, error)
	Save(ctx context.Context, r *ItemRequest) error
}
