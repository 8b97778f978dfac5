package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shareit-platform/service-shareit/internal/domain"
	itemDomain "github.com/shareit-platform/service-shareit/internal/domain/item"
	"gorm.io/gorm"
)

// ItemModel is the GORM model for the items table.
type ItemModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"size:255;not null"`
	Description string    `gorm:"size:1000;not null"`
	Available   bool      `gorm:"not null"`
	OwnerID     int64     `gorm:"not null;index"`
	Owner       UserModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	RequestID   *int64    `gorm:"index"`
}

// TableName returns the table name for the GORM model.
func (ItemModel) TableName() string { return "items" }

// GormItemRepository implements item.Repository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID retrieves an item with its owner.
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	var model ItemModel
	if err := r.db.WithContext(ctx).Preload("Owner").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Item", id)
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}
	return toDomainItem(&model), nil
}

// FindByOwnerID retrieves every item of an owner, oldest first.
func (r *GormItemRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]*itemDomain.Item, error) {
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find owner items: %w", err)
	}
	return toDomainItems(models), nil
}

// FindByRequestIDs retrieves items answering any of the given requests.
func (r *GormItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*itemDomain.Item, error) {
	if len(requestIDs) == 0 {
		return []*itemDomain.Item{}, nil
	}
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find items by requests: %w", err)
	}
	return toDomainItems(models), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches text literally against name or description of available items.
func (r *GormItemRepository) Search(ctx context.Context, text string) ([]*itemDomain.Item, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
	var models []ItemModel
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("available = ?", true).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern).
		Order("id ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toDomainItems(models), nil
}

// Save persists a new item and assigns its id.
func (r *GormItemRepository) Save(ctx context.Context, it *itemDomain.Item) error {
	model := toItemModel(it)
	if err := r.db.WithContext(ctx).Omit("Owner").Create(model).Error; err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}
	it.SetID(model.ID)
	return nil
}

// Update persists the mutable fields of an existing item.
func (r *GormItemRepository) Update(ctx context.Context, it *itemDomain.Item) error {
	result := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("id = ?", it.ID()).
		Updates(map[string]interface{}{
			"name":        it.Name(),
			"description": it.Description(),
			"available":   it.Available(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Item", it.ID())
	}
	return nil
}

// --- Conversions ---

func toItemModel(it *itemDomain.Item) *ItemModel {
	return &ItemModel{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.Owner().ID(),
		RequestID:   it.RequestID(),
	}
}

func toDomainItem(m *ItemModel) *itemDomain.Item {
	return itemDomain.Reconstruct(
		m.ID,
		m.Name,
		m.Description,
		m.Available,
		toDomainUser(&m.Owner),
		m.RequestID,
	)
}

func toDomainItems(models []ItemModel) []*itemDomain.Item {
	items := make([]*itemDomain.Item, len(models))
	for i := range models {
		items[i] = toDomainItem(&models[i])
	}
	return items
}
