package application

import (
	"context"
	"fmt"

	itemDomain "github.com/shareit-platform/service-shareit/internal/domain/item"
	requestDomain "github.com/shareit-platform/service-shareit/internal/domain/request"
	userDomain "github.com/shareit-platform/service-shareit/internal/domain/user"
	"github.com/shareit-platform/service-shareit/internal/timeutil"
	"go.uber.org/zap"
)

// CreateItemRequestRequest holds the description of a wanted item.
type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// RequestService implements the item request board.
type RequestService struct {
	repo   requestDomain.Repository
	items  itemDomain.Repository
	users  userDomain.Repository
	conv   timeutil.Converter
	now    Clock
	logger *zap.Logger
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	repo requestDomain.Repository,
	items itemDomain.Repository,
	users userDomain.Repository,
	conv timeutil.Converter,
	now Clock,
	logger *zap.Logger,
) *RequestService {
	if now == nil {
		now = defaultClock
	}
	return &RequestService{repo: repo, items: items, users: users, conv: conv, now: now, logger: logger}
}

// CreateRequest posts a want-ad for the requestor.
func (s *RequestService) CreateRequest(ctx context.Context, requestorID int64, req CreateItemRequestRequest) (*ItemRequestDTO, error) {
	requestor, err := s.users.FindByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	r, err := requestDomain.NewItemRequest(requestor, req.Description, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, r); err != nil {
		s.logger.Error("failed to create item request", zap.Error(err))
		return nil, fmt.Errorf("failed to create item request: %w", err)
	}

	s.logger.Info("item request created",
		zap.Int64("request_id", r.ID()),
		zap.Int64("user_id", requestorID),
	)
	result := toItemRequestDTO(r, s.conv)
	return &result, nil
}

// GetOwnRequests lists the requestor's requests, newest first, with the items offered for them.
func (s *RequestService) GetOwnRequests(ctx context.Context, requestorID int64) ([]ItemRequestWithItemsDTO, error) {
	requests, err := s.repo.FindByRequestorID(ctx, requestorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item requests: %w", err)
	}
	return s.withItems(ctx, requests)
}

// GetAllRequests lists every request, newest first.
func (s *RequestService) GetAllRequests(ctx context.Context) ([]ItemRequestDTO, error) {
	requests, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get item requests: %w", err)
	}
	dtos := make([]ItemRequestDTO, len(requests))
	for i, r := range requests {
		dtos[i] = toItemRequestDTO(r, s.conv)
	}
	return dtos, nil
}

// GetRequest returns one request with the items offered for it.
func (s *RequestService) GetRequest(ctx context.Context, requestID int64) (*ItemRequestWithItemsDTO, error) {
	r, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	dtos, err := s.withItems(ctx, []*requestDomain.ItemRequest{r})
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

func (s *RequestService) withItems(ctx context.Context, requests []*requestDomain.ItemRequest) ([]ItemRequestWithItemsDTO, error) {
	dtos := make([]ItemRequestWithItemsDTO, len(requests))
	if len(requests) == 0 {
		return dtos, nil
	}

	ids := make([]int64, len(requests))
	for i, r := range requests {
		ids[i] = r.ID()
	}
	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get answering items: %w", err)
	}
	byRequest := make(map[int64][]ItemDTO, len(requests))
	for _, it := range items {
		if it.RequestID() != nil {
			byRequest[*it.RequestID()] = append(byRequest[*it.RequestID()], toItemDTO(it))
		}
	}

	for i, r := range requests {
		answers := byRequest[r.ID()]
		if answers == nil {
			answers = []ItemDTO{}
		}
		dtos[i] = ItemRequestWithItemsDTO{ItemRequestDTO: toItemRequestDTO(r, s.conv), Items: answers}
	}
	return dtos, nil
}
