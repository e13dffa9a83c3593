package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeStep{},
		&entities.RecipeIngredient{},
		&entities.RecipeCategory{},
		&entities.ReviewStatus{},
		&entities.Review{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()

	user := &entities.User{
		Email:    username + "@example.com",
		Username: username,
		Role:     domain.RoleUser,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestRecipe(t *testing.T, db *gorm.DB, authorID uuid.UUID, title string, createdAt time.Time) *entities.Recipe {
	t.Helper()

	recipe := &entities.Recipe{
		Title:         title,
		Description:   "test recipe " + title,
		Duration:      30,
		ServingsCount: 2,
		AuthorID:      authorID,
	}
	require.NoError(t, db.Create(recipe).Error)
	require.NoError(t, db.Model(recipe).Update("created_at", createdAt).Error)
	recipe.CreatedAt = createdAt
	return recipe
}

func createApprovedStatus(t *testing.T, db *gorm.DB) *entities.ReviewStatus {
	t.Helper()

	status := &entities.ReviewStatus{Name: domain.ReviewStatusApproved}
	require.NoError(t, db.Create(status).Error)
	return status
}

func createTestReview(t *testing.T, db *gorm.DB, userID, recipeID, statusID uuid.UUID, rating int) *entities.Review {
	t.Helper()

	review := &entities.Review{
		UserID:   userID,
		RecipeID: recipeID,
		Rating:   rating,
		Comment:  "tasty",
		StatusID: statusID,
	}
	require.NoError(t, db.Create(review).Error)
	return review
}

func TestGetRecipesPaginatedZeroReviewAverage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")
	createTestRecipe(t, db, user.ID, "Plain Toast", time.Now())

	result, err := repo.GetRecipesPaginated(context.Background(), RecipeFilter{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	assert.Equal(t, int64(0), result.Items[0].ReviewCount)
	assert.Equal(t, 0.0, result.Items[0].AverageRating)
}

func TestGetRecipesPaginatedAggregates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	author := createTestUser(t, db, "alice")
	reviewer1 := createTestUser(t, db, "bob")
	reviewer2 := createTestUser(t, db, "carol")
	status := createApprovedStatus(t, db)

	recipe := createTestRecipe(t, db, author.ID, "Pancakes", time.Now())
	createTestReview(t, db, reviewer1.ID, recipe.ID, status.ID, 4)
	createTestReview(t, db, reviewer2.ID, recipe.ID, status.ID, 5)

	// Multiple link rows must not multiply the review aggregates.
	for _, name := range []string{"Flour", "Milk", "Eggs"} {
		ing := &entities.Ingredient{Name: name, IconURL: "https://cdn/icons/" + name + ".png"}
		require.NoError(t, db.Create(ing).Error)
		require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ing.ID}).Error)
	}

	result, err := repo.GetRecipesPaginated(context.Background(), RecipeFilter{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)

	assert.Equal(t, int64(2), result.Items[0].ReviewCount)
	assert.InDelta(t, 4.5, result.Items[0].AverageRating, 0.001)
	assert.Len(t, result.Items[0].Recipe.RecipeIngredients, 3)
}

func TestGetRecipesPaginatedTotalBeforePagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"A", "B", "C", "D", "E"} {
		createTestRecipe(t, db, user.ID, title, base.Add(time.Duration(i)*time.Minute))
	}

	result, err := repo.GetRecipesPaginated(context.Background(), RecipeFilter{Page: 1, PerPage: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Total)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 3, result.TotalPages())
	assert.True(t, result.HasNext())

	// Newest first.
	assert.Equal(t, "E", result.Items[0].Recipe.Title)
	assert.Equal(t, "D", result.Items[1].Recipe.Title)
}

func TestGetRecipesPaginatedAuthorFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	createTestRecipe(t, db, alice.ID, "Alice Soup", time.Now())
	createTestRecipe(t, db, bob.ID, "Bob Stew", time.Now())

	result, err := repo.GetRecipesPaginated(context.Background(), RecipeFilter{Page: 1, PerPage: 10, UserID: &alice.ID})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Alice Soup", result.Items[0].Recipe.Title)
}

func TestGetRecipesPaginatedCategoryFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")

	dessert := &entities.Category{Name: "Dessert", IconURL: "https://cdn/icons/dessert.png"}
	dinner := &entities.Category{Name: "Dinner", IconURL: "https://cdn/icons/dinner.png"}
	require.NoError(t, db.Create(dessert).Error)
	require.NoError(t, db.Create(dinner).Error)

	cake := createTestRecipe(t, db, user.ID, "Cake", time.Now())
	roast := createTestRecipe(t, db, user.ID, "Roast", time.Now())
	require.NoError(t, db.Create(&entities.RecipeCategory{RecipeID: cake.ID, CategoryID: dessert.ID}).Error)
	require.NoError(t, db.Create(&entities.RecipeCategory{RecipeID: roast.ID, CategoryID: dinner.ID}).Error)

	result, err := repo.GetRecipesPaginated(context.Background(), RecipeFilter{
		Page: 1, PerPage: 10,
		CategoryIDs: []uuid.UUID{dessert.ID},
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Cake", result.Items[0].Recipe.Title)
	assert.Equal(t, int64(1), result.Total)
}

func TestGetRecipesPaginatedIngredientModes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")

	flour := &entities.Ingredient{Name: "Flour", IconURL: "https://cdn/icons/flour.png"}
	egg := &entities.Ingredient{Name: "Egg", IconURL: "https://cdn/icons/egg.png"}
	require.NoError(t, db.Create(flour).Error)
	require.NoError(t, db.Create(egg).Error)

	// bread uses flour only, omelette uses egg only, pancake uses both
	bread := createTestRecipe(t, db, user.ID, "Bread", time.Now())
	omelette := createTestRecipe(t, db, user.ID, "Omelette", time.Now())
	pancake := createTestRecipe(t, db, user.ID, "Pancake", time.Now())
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: bread.ID, IngredientID: flour.ID}).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: omelette.ID, IngredientID: egg.ID}).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: pancake.ID, IngredientID: flour.ID}).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: pancake.ID, IngredientID: egg.ID}).Error)

	both := []uuid.UUID{flour.ID, egg.ID}

	orResult, err := repo.GetRecipesPaginated(context.Background(), RecipeFilter{
		Page: 1, PerPage: 10,
		IngredientIDs: both,
		Mode:          domain.IngredientMatchOr,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), orResult.Total)
	assert.Len(t, orResult.Items, 3)

	andResult, err := repo.GetRecipesPaginated(context.Background(), RecipeFilter{
		Page: 1, PerPage: 10,
		IngredientIDs: both,
		Mode:          domain.IngredientMatchAnd,
	})
	require.NoError(t, err)
	require.Len(t, andResult.Items, 1)
	assert.Equal(t, "Pancake", andResult.Items[0].Recipe.Title)
	assert.Equal(t, int64(1), andResult.Total)
}

func TestSyncStepsReconciliation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Stew", time.Now())
	ctx := context.Background()

	require.NoError(t, repo.SyncSteps(ctx, recipe.ID, []StepState{
		{StepNumber: 1, Description: "Chop vegetables"},
		{StepNumber: 2, Description: "Boil water"},
		{StepNumber: 3, Description: "Simmer"},
	}))

	var stored []*entities.RecipeStep
	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).Order("step_number").Find(&stored).Error)
	require.Len(t, stored, 3)

	keptID := stored[0].ID

	// Update step 1 in place, add a new step, drop the other two.
	require.NoError(t, repo.SyncSteps(ctx, recipe.ID, []StepState{
		{ID: keptID, StepNumber: 1, Description: "Dice vegetables finely"},
		{StepNumber: 2, Description: "Season to taste"},
	}))

	var after []*entities.RecipeStep
	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).Order("step_number").Find(&after).Error)
	require.Len(t, after, 2)

	assert.Equal(t, keptID, after[0].ID)
	assert.Equal(t, "Dice vegetables finely", after[0].Description)
	assert.NotEqual(t, keptID, after[1].ID)
	assert.Equal(t, "Season to taste", after[1].Description)
}

func TestSyncStepsUnknownIDCreatesFresh(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Salad", time.Now())

	// An id the store has never seen falls back to create.
	ghost := uuid.New()
	require.NoError(t, repo.SyncSteps(context.Background(), recipe.ID, []StepState{
		{ID: ghost, StepNumber: 1, Description: "Toss everything"},
	}))

	var stored []*entities.RecipeStep
	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.NotEqual(t, ghost, stored[0].ID)
}

func TestSyncIngredientsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Curry", time.Now())
	ctx := context.Background()

	var ids []uuid.UUID
	for _, name := range []string{"Rice", "Onion"} {
		ing := &entities.Ingredient{Name: name, IconURL: "https://cdn/icons/" + name + ".png"}
		require.NoError(t, db.Create(ing).Error)
		ids = append(ids, ing.ID)
	}

	require.NoError(t, repo.SyncIngredients(ctx, recipe.ID, ids))

	var writes int
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:count_creates", func(tx *gorm.DB) {
		if tx.Statement.Table == "recipe_ingredients" {
			writes++
		}
	}))
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:count_deletes", func(tx *gorm.DB) {
		if tx.Statement.Table == "recipe_ingredients" {
			writes++
		}
	}))

	// Same desired set again: no link writes at all.
	require.NoError(t, repo.SyncIngredients(ctx, recipe.ID, ids))
	assert.Equal(t, 0, writes)

	var linked []*entities.RecipeIngredient
	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).Find(&linked).Error)
	assert.Len(t, linked, 2)
}

func TestSyncIngredientsSetDifference(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Pasta", time.Now())
	ctx := context.Background()

	var ids []uuid.UUID
	for _, name := range []string{"Pasta", "Tomato", "Basil"} {
		ing := &entities.Ingredient{Name: name, IconURL: "https://cdn/icons/" + name + ".png"}
		require.NoError(t, db.Create(ing).Error)
		ids = append(ids, ing.ID)
	}

	require.NoError(t, repo.SyncIngredients(ctx, recipe.ID, ids[:2]))

	// Drop Tomato, keep Pasta, add Basil. Duplicates in the desired set
	// collapse to one link.
	require.NoError(t, repo.SyncIngredients(ctx, recipe.ID, []uuid.UUID{ids[0], ids[2], ids[2]}))

	var linked []*entities.RecipeIngredient
	require.NoError(t, db.Where("recipe_id = ?", recipe.ID).Find(&linked).Error)
	require.Len(t, linked, 2)

	got := map[uuid.UUID]bool{}
	for _, link := range linked {
		got[link.IngredientID] = true
	}
	assert.True(t, got[ids[0]])
	assert.True(t, got[ids[2]])
	assert.False(t, got[ids[1]])
}

func TestUpdateWithRelations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	user := createTestUser(t, db, "alice")
	recipe := createTestRecipe(t, db, user.ID, "Old Title", time.Now())
	ctx := context.Background()

	category := &entities.Category{Name: "Dinner", IconURL: "https://cdn/icons/dinner.png"}
	require.NoError(t, db.Create(category).Error)

	recipe.Title = "New Title"
	recipe.Duration = 45
	require.NoError(t, repo.UpdateWithRelations(ctx, recipe,
		[]StepState{{StepNumber: 1, Description: "Do everything"}},
		nil,
		[]uuid.UUID{category.ID},
	))

	updated, err := repo.GetDetailByID(ctx, recipe.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 45, updated.Duration)
	require.Len(t, updated.Steps, 1)
	require.Len(t, updated.RecipeCategories, 1)
	assert.Empty(t, updated.RecipeIngredients)
}

func TestIsTitleForAuthorExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestRecipe(t, db, alice.ID, "Pancakes", time.Now())
	ctx := context.Background()

	exists, err := repo.IsTitleForAuthorExists(ctx, "Pancakes", alice.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	// Same title under another author is allowed.
	exists, err = repo.IsTitleForAuthorExists(ctx, "Pancakes", bob.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetDetailByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecipeRepository(db)

	detail, err := repo.GetDetailByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, detail)
}
