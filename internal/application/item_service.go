package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/shareit-platform/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-platform/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-shareit/internal/domain/item"
	requestDomain "github.com/shareit-platform/service-shareit/internal/domain/request"
	userDomain "github.com/shareit-platform/service-shareit/internal/domain/user"
	"github.com/shareit-platform/service-shareit/internal/timeutil"
	"go.uber.org/zap"
)

// CreateItemRequest is the request DTO for listing an item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0"`
}

// UpdateItemRequest is the request DTO for a partial item update.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// ItemService implements use cases for item listings.
type ItemService struct {
	repo     itemDomain.Repository
	comments itemDomain.CommentRepository
	bookings bookingDomain.Repository
	users    userDomain.Repository
	requests requestDomain.Repository
	conv     timeutil.Converter
	now      Clock
	logger   *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(
	repo itemDomain.Repository,
	comments itemDomain.CommentRepository,
	bookings bookingDomain.Repository,
	users userDomain.Repository,
	requests requestDomain.Repository,
	conv timeutil.Converter,
	now Clock,
	logger *zap.Logger,
) *ItemService {
	if now == nil {
		now = defaultClock
	}
	return &ItemService{
		repo:     repo,
		comments: comments,
		bookings: bookings,
		users:    users,
		requests: requests,
		conv:     conv,
		now:      now,
		logger:   logger,
	}
}

// CreateItem lists a new item for the given owner.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if req.Available == nil {
		return nil, domain.NewValidationError("available is required")
	}
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it, err := itemDomain.NewItem(owner, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, it); err != nil {
		s.logger.Error("failed to create item", zap.Error(err))
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info("item created",
		zap.Int64("item_id", it.ID()),
		zap.Int64("user_id", ownerID),
	)
	result := toItemDTO(it)
	return &result, nil
}

// UpdateItem applies a partial update, verifying ownership.
func (s *ItemService) UpdateItem(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(ownerID) {
		return nil, domain.NewLackOfRightsError("only the owner can edit an item")
	}

	it.Update(req.Name, req.Description, req.Available)
	if err := s.repo.Update(ctx, it); err != nil {
		s.logger.Error("failed to update item", zap.Int64("item_id", itemID), zap.Error(err))
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	s.logger.Info("item updated", zap.Int64("item_id", itemID))
	result := toItemDTO(it)
	return &result, nil
}

// GetItem returns an item with its comments.
func (s *ItemService) GetItem(ctx context.Context, itemID int64) (*FullItemDTO, error) {
	it, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentsByItem(ctx, []int64{it.ID()})
	if err != nil {
		return nil, err
	}
	result := toFullItemDTO(it, comments[it.ID()])
	return &result, nil
}

// GetOwnerItems returns the owner's items with neighbouring booking dates and comments.
func (s *ItemService) GetOwnerItems(ctx context.Context, ownerID int64) ([]FullItemDTO, error) {
	items, err := s.repo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	if len(items) == 0 {
		return []FullItemDTO{}, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID()
	}
	comments, err := s.commentsByItem(ctx, ids)
	if err != nil {
		return nil, err
	}
	dates, err := s.bookings.FindBookingDatesByOwner(ctx, ownerID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to get booking dates: %w", err)
	}
	byItem := make(map[int64]bookingDomain.ItemBookingDates, len(dates))
	for _, d := range dates {
		byItem[d.ItemID] = d
	}

	dtos := make([]FullItemDTO, len(items))
	for i, it := range items {
		dto := toFullItemDTO(it, comments[it.ID()])
		if d, ok := byItem[it.ID()]; ok {
			dto.LastBooking = s.conv.ToLocalPtr(d.LastEnd)
			dto.NextBooking = s.conv.ToLocalPtr(d.NextStart)
		}
		dtos[i] = dto
	}
	return dtos, nil
}

// SearchItems finds available items whose name or description contains text.
// Blank text matches nothing.
func (s *ItemService) SearchItems(ctx context.Context, text string) ([]ItemDTO, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []ItemDTO{}, nil
	}
	items, err := s.repo.Search(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return toItemDTOs(items), nil
}

func (s *ItemService) commentsByItem(ctx context.Context, itemIDs []int64) (map[int64][]CommentDTO, error) {
	comments, err := s.comments.FindByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	grouped := make(map[int64][]CommentDTO, len(itemIDs))
	for _, c := range comments {
		grouped[c.ItemID()] = append(grouped[c.ItemID()], toCommentDTO(c))
	}
	return grouped, nil
}
