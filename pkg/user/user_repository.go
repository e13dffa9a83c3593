package user

import (
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/repository"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserRepository interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		Create(ctx context.Context, user *entities.User) error
		Update(ctx context.Context, user *entities.User) error
		Delete(ctx context.Context, user *entities.User) error

		GetByUsername(ctx context.Context, username string) (*entities.User, error)
		IsUsernameExists(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error)
		IsEmailExists(ctx context.Context, email string) (bool, error)

		CreateRefreshToken(ctx context.Context, token *entities.RefreshToken) error
		GetRefreshToken(ctx context.Context, token string) (*entities.RefreshToken, error)
		DeleteRefreshToken(ctx context.Context, token string) error
		DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error
	}

	userRepository struct {
		*repository.Repository[entities.User]
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		Repository: repository.New[entities.User](db),
		db:         db,
	}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) IsUsernameExists(ctx context.Context, username string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("username = ?", username)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) IsEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) CreateRefreshToken(ctx context.Context, token *entities.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *userRepository) GetRefreshToken(ctx context.Context, token string) (*entities.RefreshToken, error) {
	var refreshToken entities.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&refreshToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *userRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&entities.RefreshToken{}).Error
}

func (r *userRepository) DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.RefreshToken{}).Error
}
