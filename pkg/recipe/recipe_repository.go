package recipe

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
	// RecipeFilter carries the already-parsed listing criteria.
	RecipeFilter struct {
		Page          int
		PerPage       int
		UserID        *uuid.UUID
		CategoryIDs   []uuid.UUID
		IngredientIDs []uuid.UUID
		Mode          string
	}

	// RecipeWithStats annotates a recipe row with its review aggregates.
	// Recipes with zero reviews carry AverageRating 0, never null.
	RecipeWithStats struct {
		Recipe        *entities.Recipe
		ReviewCount   int64
		AverageRating float64
	}

	// StepState is the desired state of one step on edit. A zero ID
	// means "brand new step"; a set ID means "update that step".
	StepState struct {
		ID          uuid.UUID
		StepNumber  int
		Description string
	}

	RecipeRepository interface {
		GetAll(ctx context.Context) ([]*entities.Recipe, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		Create(ctx context.Context, recipe *entities.Recipe) error
		Update(ctx context.Context, recipe *entities.Recipe) error
		Delete(ctx context.Context, recipe *entities.Recipe) error

		GetDetailByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		GetRecipesPaginated(ctx context.Context, filter RecipeFilter) (domain.PaginatedResult[RecipeWithStats], error)
		IsTitleForAuthorExists(ctx context.Context, title string, authorID uuid.UUID) (bool, error)

		SyncSteps(ctx context.Context, recipeID uuid.UUID, steps []StepState) error
		SyncIngredients(ctx context.Context, recipeID uuid.UUID, ingredientIDs []uuid.UUID) error
		SyncCategories(ctx context.Context, recipeID uuid.UUID, categoryIDs []uuid.UUID) error
		CreateWithRelations(ctx context.Context, recipe *entities.Recipe, steps []StepState, ingredientIDs, categoryIDs []uuid.UUID) error
		UpdateWithRelations(ctx context.Context, recipe *entities.Recipe, steps []StepState, ingredientIDs, categoryIDs []uuid.UUID) error
	}

	recipeRepository struct {
		*repository.Repository[entities.Recipe]
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{
		Repository: repository.New[entities.Recipe](db),
		db:         db,
	}
}

func (r *recipeRepository) GetDetailByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipe_steps.step_number ASC")
		}).
		Preload("RecipeIngredients.Ingredient").
		Preload("RecipeCategories.Category").
		First(&recipe, "recipes.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) IsTitleForAuthorExists(ctx context.Context, title string, authorID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("title = ? AND author_id = ?", title, authorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// filteredQuery builds the aggregate listing query: recipes left-joined
// to reviews, narrowed by author/category/ingredient filters and grouped
// by recipe. Review counts are DISTINCT so that category or ingredient
// join multiplicity cannot inflate them.
func (r *recipeRepository) filteredQuery(ctx context.Context, filter RecipeFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("LEFT JOIN reviews ON reviews.recipe_id = recipes.id")

	if filter.UserID != nil {
		query = query.Where("recipes.author_id = ?", *filter.UserID)
	}

	if len(filter.CategoryIDs) > 0 {
		query = query.
			Joins("JOIN recipe_categories ON recipe_categories.recipe_id = recipes.id").
			Where("recipe_categories.category_id IN ?", filter.CategoryIDs)
	}

	if len(filter.IngredientIDs) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", filter.IngredientIDs)
		if filter.Mode == domain.IngredientMatchAnd {
			// All-of semantics: the recipe must link every requested
			// ingredient, not merely N links.
			query = query.Having("count(DISTINCT recipe_ingredients.ingredient_id) = ?", len(filter.IngredientIDs))
		}
	}

	return query.Group("recipes.id")
}

func (r *recipeRepository) GetRecipesPaginated(ctx context.Context, filter RecipeFilter) (domain.PaginatedResult[RecipeWithStats], error) {
	empty := domain.NewPaginatedResult([]RecipeWithStats{}, 0, filter.Page, filter.PerPage)

	// Total is the count of distinct recipes matching the filter, taken
	// before offset/limit.
	var total int64
	countQuery := r.filteredQuery(ctx, filter).Select("recipes.id")
	if err := r.db.WithContext(ctx).Table("(?) AS filtered", countQuery).Count(&total).Error; err != nil {
		return empty, err
	}

	type statsRow struct {
		ID            uuid.UUID
		ReviewCount   int64
		AverageRating float64
	}

	var rows []statsRow
	offset := (filter.Page - 1) * filter.PerPage
	if err := r.filteredQuery(ctx, filter).
		Select("recipes.id AS id, count(DISTINCT reviews.id) AS review_count, coalesce(avg(reviews.rating), 0) AS average_rating").
		Order("recipes.created_at DESC, recipes.id").
		Offset(offset).
		Limit(filter.PerPage).
		Scan(&rows).Error; err != nil {
		return empty, err
	}

	if len(rows) == 0 {
		return domain.NewPaginatedResult([]RecipeWithStats{}, total, filter.Page, filter.PerPage), nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	// One batched fetch resolves the link collections for the whole
	// page; each list item renders them, so per-recipe queries are out.
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("RecipeIngredients.Ingredient").
		Preload("RecipeCategories.Category").
		Where("id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return empty, err
	}

	byID := make(map[uuid.UUID]*entities.Recipe, len(recipes))
	for _, rec := range recipes {
		byID[rec.ID] = rec
	}

	items := make([]RecipeWithStats, 0, len(rows))
	for _, row := range rows {
		rec, ok := byID[row.ID]
		if !ok {
			continue
		}
		items = append(items, RecipeWithStats{
			Recipe:        rec,
			ReviewCount:   row.ReviewCount,
			AverageRating: row.AverageRating,
		})
	}

	return domain.NewPaginatedResult(items, total, filter.Page, filter.PerPage), nil
}

func (r *recipeRepository) SyncSteps(ctx context.Context, recipeID uuid.UUID, steps []StepState) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncSteps(tx, recipeID, steps)
	})
}

func (r *recipeRepository) SyncIngredients(ctx context.Context, recipeID uuid.UUID, ingredientIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncIngredientLinks(tx, recipeID, ingredientIDs)
	})
}

func (r *recipeRepository) SyncCategories(ctx context.Context, recipeID uuid.UUID, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncCategoryLinks(tx, recipeID, categoryIDs)
	})
}

// CreateWithRelations inserts the recipe row and its child collections
// in a single transaction: a failure partway leaves nothing committed.
func (r *recipeRepository) CreateWithRelations(ctx context.Context, recipe *entities.Recipe, steps []StepState, ingredientIDs, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		if err := syncSteps(tx, recipe.ID, steps); err != nil {
			return err
		}
		if err := syncIngredientLinks(tx, recipe.ID, ingredientIDs); err != nil {
			return err
		}
		return syncCategoryLinks(tx, recipe.ID, categoryIDs)
	})
}

// UpdateWithRelations applies the scalar fields and all three child
// reconciliations in a single transaction: a failure partway leaves the
// whole edit uncommitted.
func (r *recipeRepository) UpdateWithRelations(ctx context.Context, recipe *entities.Recipe, steps []StepState, ingredientIDs, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Steps", "RecipeIngredients", "RecipeCategories", "Author").Save(recipe).Error; err != nil {
			return err
		}
		if err := syncSteps(tx, recipe.ID, steps); err != nil {
			return err
		}
		if err := syncIngredientLinks(tx, recipe.ID, ingredientIDs); err != nil {
			return err
		}
		return syncCategoryLinks(tx, recipe.ID, categoryIDs)
	})
}

// syncSteps reconciles the stored steps against the submitted desired
// state. Submitted steps carrying a known id update that step in place;
// steps without an id are created; stored steps omitted from the
// submission are deleted.
func syncSteps(tx *gorm.DB, recipeID uuid.UUID, steps []StepState) error {
	var existing []*entities.RecipeStep
	if err := tx.Where("recipe_id = ?", recipeID).Find(&existing).Error; err != nil {
		return err
	}

	byID := make(map[uuid.UUID]*entities.RecipeStep, len(existing))
	for _, step := range existing {
		byID[step.ID] = step
	}

	retained := make(map[uuid.UUID]bool, len(steps))
	for _, want := range steps {
		if current, ok := byID[want.ID]; want.ID != uuid.Nil && ok {
			current.StepNumber = want.StepNumber
			current.Description = want.Description
			if err := tx.Save(current).Error; err != nil {
				return err
			}
			retained[current.ID] = true
			continue
		}

		step := &entities.RecipeStep{
			RecipeID:    recipeID,
			StepNumber:  want.StepNumber,
			Description: want.Description,
		}
		if err := tx.Create(step).Error; err != nil {
			return err
		}
	}

	var stale []uuid.UUID
	for id := range byID {
		if !retained[id] {
			stale = append(stale, id)
		}
	}
	if len(stale) > 0 {
		if err := tx.Where("id IN ?", stale).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// syncIngredientLinks applies the set difference between stored and
// desired ingredient links. Ids present on both sides issue no writes,
// so running the same desired set twice is a no-op the second time.
func syncIngredientLinks(tx *gorm.DB, recipeID uuid.UUID, desired []uuid.UUID) error {
	var existing []*entities.RecipeIngredient
	if err := tx.Where("recipe_id = ?", recipeID).Find(&existing).Error; err != nil {
		return err
	}

	current := make(map[uuid.UUID]bool, len(existing))
	for _, link := range existing {
		current[link.IngredientID] = true
	}

	wanted := make(map[uuid.UUID]bool, len(desired))
	var toAdd []*entities.RecipeIngredient
	for _, id := range desired {
		if wanted[id] {
			continue
		}
		wanted[id] = true
		if !current[id] {
			toAdd = append(toAdd, &entities.RecipeIngredient{RecipeID: recipeID, IngredientID: id})
		}
	}

	var toRemove []uuid.UUID
	for id := range current {
		if !wanted[id] {
			toRemove = append(toRemove, id)
		}
	}

	if len(toAdd) > 0 {
		if err := tx.Create(&toAdd).Error; err != nil {
			return err
		}
	}
	if len(toRemove) > 0 {
		if err := tx.Where("recipe_id = ? AND ingredient_id IN ?", recipeID, toRemove).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
	}
	return nil
}

func syncCategoryLinks(tx *gorm.DB, recipeID uuid.UUID, desired []uuid.UUID) error {
	var existing []*entities.RecipeCategory
	if err := tx.Where("recipe_id = ?", recipeID).Find(&existing).Error; err != nil {
		return err
	}

	current := make(map[uuid.UUID]bool, len(existing))
	for _, link := range existing {
		current[link.CategoryID] = true
	}

	wanted := make(map[uuid.UUID]bool, len(desired))
	var toAdd []*entities.RecipeCategory
	for _, id := range desired {
		if wanted[id] {
			continue
		}
		wanted[id] = true
		if !current[id] {
			toAdd = append(toAdd, &entities.RecipeCategory{RecipeID: recipeID, CategoryID: id})
		}
	}

	var toRemove []uuid.UUID
	for id := range current {
		if !wanted[id] {
			toRemove = append(toRemove, id)
		}
	}

	if len(toAdd) > 0 {
		if err := tx.Create(&toAdd).Error; err != nil {
			return err
		}
	}
	if len(toRemove) > 0 {
		if err := tx.Where("recipe_id = ? AND category_id IN ?", recipeID, toRemove).
			Delete(&entities.RecipeCategory{}).Error; err != nil {
			return err
		}
	}
	return nil
}
