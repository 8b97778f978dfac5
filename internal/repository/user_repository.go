package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shareit-platform/service-shareit/internal/domain"
	userDomain "github.com/shareit-platform/service-shareit/internal/domain/user"
	"gorm.io/gorm"
)

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"size:512;not null;uniqueIndex"`
}

// TableName returns the table name for the GORM model.
func (UserModel) TableName() string { return "users" }

// GormUserRepository implements user.Repository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID retrieves a user by id.
func (r *GormUserRepository) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("User", id)
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return toDomainUser(&model), nil
}

// FindByEmail retrieves a user by email, or nil when there is none.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).Limit(1).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if len(models) == 0 {
		return nil, nil
	}
	return toDomainUser(&models[0]), nil
}

// Save persists a new user and assigns its id.
func (r *GormUserRepository) Save(ctx context.Context, u *userDomain.User) error {
	model := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewDuplicateError(fmt.Sprintf("user with email = %s already exists", u.Email()))
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	u.SetID(model.ID)
	return nil
}

// Update persists name and email of an existing user.
func (r *GormUserRepository) Update(ctx context.Context, u *userDomain.User) error {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", u.ID()).
		Updates(map[string]interface{}{
			"name":  u.Name(),
			"email": u.Email(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.NewDuplicateError(fmt.Sprintf("user with email = %s already exists", u.Email()))
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("User", u.ID())
	}
	return nil
}

// Delete removes a user; deleting a missing user is not an error.
func (r *GormUserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// --- Conversions ---

func toUserModel(u *userDomain.User) *UserModel {
	return &UserModel{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}

func toDomainUser(m *UserModel) *userDomain.User {
	return userDomain.Reconstruct(m.ID, m.Name, m.Email)
}
