package review

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/repository"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Review, error)
		Create(ctx context.Context, review *entities.Review) error
		Update(ctx context.Context, review *entities.Review) error
		Delete(ctx context.Context, review *entities.Review) error

		IsUserAlreadyReviewed(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		HasApprovedReview(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		GetStatusIDByName(ctx context.Context, name string) (*uuid.UUID, error)
		GetApprovedReviewsByRecipe(ctx context.Context, recipeID uuid.UUID, page, perPage int) (domain.PaginatedResult[*entities.Review], error)
		GetPendingReviews(ctx context.Context, page, perPage int) (domain.PaginatedResult[*entities.Review], error)
	}

	reviewRepository struct {
		*repository.Repository[entities.Review]
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{
		Repository: repository.New[entities.Review](db),
		db:         db,
	}
}

func (r *reviewRepository) IsUserAlreadyReviewed(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) HasApprovedReview(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	statusID, err := r.GetStatusIDByName(ctx, domain.ReviewStatusApproved)
	if err != nil {
		return false, err
	}
	if statusID == nil {
		return false, nil
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("user_id = ? AND recipe_id = ? AND status_id = ?", userID, recipeID, *statusID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetStatusIDByName resolves a moderation status by case-insensitive
// name. (nil, nil) means the status row does not exist; status rows are
// operational data, not a schema guarantee.
func (r *reviewRepository) GetStatusIDByName(ctx context.Context, name string) (*uuid.UUID, error) {
	var status entities.ReviewStatus
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &status.ID, nil
}

func (r *reviewRepository) GetApprovedReviewsByRecipe(ctx context.Context, recipeID uuid.UUID, page, perPage int) (domain.PaginatedResult[*entities.Review], error) {
	empty := domain.NewPaginatedResult([]*entities.Review{}, 0, page, perPage)

	statusID, err := r.GetStatusIDByName(ctx, domain.ReviewStatusApproved)
	if err != nil {
		return empty, err
	}
	if statusID == nil {
		return empty, nil
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("recipe_id = ? AND status_id = ?", recipeID, *statusID).
		Count(&total).Error; err != nil {
		return empty, err
	}

	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Status").
		Where("recipe_id = ? AND status_id = ?", recipeID, *statusID).
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&reviews).Error; err != nil {
		return empty, err
	}

	return domain.NewPaginatedResult(reviews, total, page, perPage), nil
}

func (r *reviewRepository) GetPendingReviews(ctx context.Context, page, perPage int) (domain.PaginatedResult[*entities.Review], error) {
	empty := domain.NewPaginatedResult([]*entities.Review{}, 0, page, perPage)

	statusID, err := r.GetStatusIDByName(ctx, domain.ReviewStatusPending)
	if err != nil {
		return empty, err
	}
	if statusID == nil {
		return empty, nil
	}

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("status_id = ?", statusID).
		Count(&total).Error; err != nil {
		return empty, err
	}

	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Status").
		Where("status_id = ?", statusID).
		Order("created_at ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&reviews).Error; err != nil {
		return empty, err
	}

	return domain.NewPaginatedResult(reviews, total, page, perPage), nil
}
