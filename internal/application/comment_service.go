package application

import (
	"context"
	"fmt"

	"github.com/shareit-platform/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-platform/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-platform/service-shareit/internal/domain/item"
	userDomain "github.com/shareit-platform/service-shareit/internal/domain/user"
	"go.uber.org/zap"
)

// CreateCommentRequest holds the text of a new comment.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentService handles item comment use cases.
type CommentService struct {
	repo     itemDomain.CommentRepository
	items    itemDomain.Repository
	users    userDomain.Repository
	bookings bookingDomain.Repository
	now      Clock
	logger   *zap.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	repo itemDomain.CommentRepository,
	items itemDomain.Repository,
	users userDomain.Repository,
	bookings bookingDomain.Repository,
	now Clock,
	logger *zap.Logger,
) *CommentService {
	if now == nil {
		now = defaultClock
	}
	return &CommentService{
		repo:     repo,
		items:    items,
		users:    users,
		bookings: bookings,
		now:      now,
		logger:   logger,
	}
}

// AddComment stores a comment from a user whose booking of the item has ended.
func (s *CommentService) AddComment(ctx context.Context, authorID, itemID int64, req CreateCommentRequest) (*CommentDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	finished, err := s.bookings.FindFinishedByItemAndBooker(ctx, it.ID(), authorID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check bookings: %w", err)
	}
	if len(finished) == 0 {
		return nil, domain.NewNotAvailableError("only someone who rented this item, after the rental ended, may comment")
	}
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment, err := itemDomain.NewComment(it.ID(), author, req.Text, now)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, comment); err != nil {
		s.logger.Error("failed to save comment", zap.Error(err))
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	s.logger.Info("comment added",
		zap.Int64("item_id", it.ID()),
		zap.Int64("user_id", authorID),
	)
	result := toCommentDTO(comment)
	return &result, nil
}
