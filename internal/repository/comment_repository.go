package repository

import (
	"context"
	"fmt"
	"time"

	itemDomain "github.com/shareit-platform/service-shareit/internal/domain/item"
	"gorm.io/gorm"
)

// CommentModel is the GORM model for the comments table.
type CommentModel struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Text     string    `gorm:"size:2000;not null"`
	ItemID   int64     `gorm:"not null;index"`
	Item     ItemModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	AuthorID int64     `gorm:"not null"`
	Author   UserModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Created  time.Time `gorm:"not null"`
}

// TableName sets the table name.
func (CommentModel) TableName() string { return "comments" }

// GormCommentRepository implements item.CommentRepository using GORM.
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository.
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

// Save persists a new comment and assigns its id.
func (r *GormCommentRepository) Save(ctx context.Context, c *itemDomain.Comment) error {
	model := toCommentModel(c)
	if err := r.db.WithContext(ctx).Omit("Item", "Author").Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

// FindByItemIDs returns comments of the given items, oldest first.
func (r *GormCommentRepository) FindByItemIDs(ctx context.Context, itemIDs []int64) ([]*itemDomain.Comment, error) {
	if len(itemIDs) == 0 {
		return []*itemDomain.Comment{}, nil
	}
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*itemDomain.Comment, len(models))
	for i := range models {
		comments[i] = toDomainComment(&models[i])
	}
	return comments, nil
}

func toCommentModel(c *itemDomain.Comment) CommentModel {
	return CommentModel{
		ID:       c.ID(),
		Text:     c.Text(),
		ItemID:   c.ItemID(),
		AuthorID: c.Author().ID(),
		Created:  c.Created().UTC(),
	}
}

func toDomainComment(m *CommentModel) *itemDomain.Comment {
	return itemDomain.ReconstructComment(
		m.ID,
		m.ItemID,
		toDomainUser(&m.Author),
		m.Text,
		m.Created,
	)
}
