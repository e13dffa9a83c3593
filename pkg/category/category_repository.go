package category

import (
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/repository"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		GetAll(ctx context.Context) ([]*entities.Category, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
		Create(ctx context.Context, category *entities.Category) error
		Update(ctx context.Context, category *entities.Category) error
		Delete(ctx context.Context, category *entities.Category) error

		IsNameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
		CountRecipeLinks(ctx context.Context, id uuid.UUID) (int64, error)
	}

	categoryRepository struct {
		*repository.Repository[entities.Category]
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{
		Repository: repository.New[entities.Category](db),
		db:         db,
	}
}

// IsNameExists probes name uniqueness at the repository level so a
// rename check can exclude the row being renamed.
func (r *categoryRepository) IsNameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("name = ?", name)

	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) CountRecipeLinks(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeCategory{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
