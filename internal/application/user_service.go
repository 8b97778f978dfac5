package application

import (
	"context"
	"fmt"

	"github.com/shareit-platform/service-shareit/internal/domain"
	userDomain "github.com/shareit-platform/service-shareit/internal/domain/user"
	"go.uber.org/zap"
)

// CreateUserRequest is the request DTO for signing up.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequest is the request DTO for a partial user update.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// UserService implements user account use cases.
type UserService struct {
	repo   userDomain.Repository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo userDomain.Repository, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser registers a user with a unique email.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u, err := userDomain.NewUser(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, u.Email(), 0); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, u); err != nil {
		if domain.IsDuplicateData(err) {
			return nil, err
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", zap.Int64("user_id", u.ID()))
	result := toUserDTO(u)
	return &result, nil
}

// GetUser returns a user by id.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(u)
	return &result, nil
}

// UpdateUser applies a partial update. Keeping one's own email is not a conflict.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Update(req.Name, req.Email)
	if err := s.ensureEmailFree(ctx, u.Email(), u.ID()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, u); err != nil {
		if domain.IsDuplicateData(err) || domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.Error("failed to update user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated", zap.Int64("user_id", userID))
	result := toUserDTO(u)
	return &result, nil
}

// DeleteUser removes a user. Deleting a missing user succeeds.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		s.logger.Error("failed to delete user", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.logger.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email string, selfID int64) error {
	holder, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if holder != nil && holder.ID() != selfID {
		return domain.NewDuplicateError(fmt.Sprintf("email %s is already in use", email))
	}
	return nil
}
