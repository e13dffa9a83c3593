package ingredient

import (
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/repository"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		GetAll(ctx context.Context) ([]*entities.Ingredient, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		Create(ctx context.Context, ingredient *entities.Ingredient) error
		Update(ctx context.Context, ingredient *entities.Ingredient) error
		Delete(ctx context.Context, ingredient *entities.Ingredient) error

		IsNameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
		CountRecipeLinks(ctx context.Context, id uuid.UUID) (int64, error)
	}

	ingredientRepository struct {
		*repository.Repository[entities.Ingredient]
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{
		Repository: repository.New[entities.Ingredient](db),
		db:         db,
	}
}

func (r *ingredientRepository) IsNameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&entities.Ingredient{}).
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

func (r *ingredientRepository) CountRecipeLinks(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeIngredient{}).
		Where("ingredient_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
