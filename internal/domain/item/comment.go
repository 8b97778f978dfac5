package item

import (
	"strings"
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
	"github.com/shareit-platform/service-shareit/internal/domain/user"
)

// Comment is feedback left on an item by someone who has borrowed it.
type Comment struct {
	id      int64
	itemID  int64
	author  *user.User
	text    string
	created time.Time
}

// NewComment creates a new comment stamped with created.
func NewComment(itemID int64, author *user.User, text string, created time.Time) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidationError("comment text is required")
	}
	if author == nil {
		return nil, domain.NewValidationError("comment author is required")
	}
	return &Comment{
		itemID:  itemID,
		author:  author,
		text:    text,
		created: created.UTC(),
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence.
func ReconstructComment(id, itemID int64, author *user.User, text string, created time.Time) *Comment {
	return &Comment{id: id, itemID: itemID, author: author, text: text, created: created}
}

// Getters.
func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) Author() *user.User { return c.author }
func (c *Comment) Text() string       { return c.text }
func (c *Comment) Created() time.Time { return c.created }

// SetID records the identifier assigned by storage.
func (c *Comment) SetID(id int64) { c.id = id }
