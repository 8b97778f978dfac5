package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shareit-platform/service-shareit/internal/domain"
	requestDomain "github.com/shareit-platform/service-shareit/internal/domain/request"
	"gorm.io/gorm"
)

// ItemRequestModel is the GORM model for the requests table.
type ItemRequestModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Description string    `gorm:"size:1000;not null"`
	RequestorID int64     `gorm:"not null;index"`
	Requestor   UserModel `gorm:"foreignKey:RequestorID;constraint:OnDelete:CASCADE"`
	Created     time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ItemRequestModel) TableName() string { return "requests" }

// GormRequestRepository implements request.Repository using GORM.
type GormRequestRepository struct {
	db *gorm.DB
}

// NewGormRequestRepository creates a new GormRequestRepository.
func NewGormRequestRepository(db *gorm.DB) *GormRequestRepository {
	return &GormRequestRepository{db: db}
}

func (r *GormRequestRepository) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	var model ItemRequestModel
	if err := r.db.WithContext(ctx).Preload("Requestor").Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Request", id)
		}
		return nil, fmt.Errorf("failed to find request by ID: %w", err)
	}
	return toDomainRequest(&model), nil
}

func (r *GormRequestRepository) FindByRequestorID(ctx context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	return r.find(ctx, r.db.Where("requestor_id = ?", requestorID))
}

func (r *GormRequestRepository) FindAll(ctx context.Context) ([]*requestDomain.ItemRequest, error) {
	return r.find(ctx, r.db)
}

func (r *GormRequestRepository) Save(ctx context.Context, req *requestDomain.ItemRequest) error {
	model := ItemRequestModel{
		Description: req.Description(),
		RequestorID: req.Requestor().ID(),
		Created:     req.Created().UTC(),
	}
	if err := r.db.WithContext(ctx).Omit("Requestor").Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save request: %w", err)
	}
	req.SetID(model.ID)
	return nil
}

func (r *GormRequestRepository) find(ctx context.Context, scope *gorm.DB) ([]*requestDomain.ItemRequest, error) {
	var models []ItemRequestModel
	if err := scope.WithContext(ctx).
		Preload("Requestor").
		Order("created DESC").
		Order("id DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	requests := make([]*requestDomain.ItemRequest, len(models))
	for i := range models {
		requests[i] = toDomainRequest(&models[i])
	}
	return requests, nil
}

func toDomainRequest(m *ItemRequestModel) *requestDomain.ItemRequest {
	return requestDomain.Reconstruct(m.ID, m.Description, toDomainUser(&m.Requestor), m.Created)
}
