package request

import (
	"strings"
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/shareit-platform/service-shareit/internal/domain/user"
)

// ItemRequest is a want-ad: a user describing an item they would like to borrow.
type ItemRequest struct {
	id          int64
	description string
	requestor   *user.User
	created     time.Time
}

// NewItemRequest creates a request stamped with created.
func NewItemRequest(requestor *user.User, description string, created time.Time) (*ItemRequest, error) {
	description = strings.TrimSpace(description)
	if requestor == nil {
		return nil, domain.NewValidationError("requestor is required")
	}
	if description == "" {
		return nil, domain.NewValidationError("description is required")
	}
	return &ItemRequest{description: description, requestor: requestor, created: created.UTC()}, nil
}

// Reconstruct rebuilds an ItemRequest from persistence data.
func Reconstruct(id int64, description string, requestor *user.User, created time.Time) *ItemRequest {
	return &ItemRequest{id: id, description: description, requestor: requestor, created: created}
}

func (r *ItemRequest) ID() int64             { return r.id }
func (r *ItemRequest) Description() string   { return r.description }
func (r *ItemRequest) Requestor() *user.User { return r.requestor }
func (r *ItemRequest) Created() time.Time    { return r.created }

// SetID records the identifier assigned by storage.
func (r *ItemRequest) SetID(id int64) { r.id = id }
