package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/review"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewRecipeService(NewRecipeRepository(db), review.NewReviewRepository(db), nil), db
}

func TestGetRecipesAppliesDefaults(t *testing.T) {
	service, db := newTestService(t)
	user := createTestUser(t, db, "alice")
	createTestRecipe(t, db, user.ID, "Toast", time.Now())

	result, err := service.GetRecipes(context.Background(), domain.RecipeFilterRequest{})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRecipePage, result.Page)
	assert.Equal(t, domain.DefaultRecipePerPage, result.PerPage)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 0.0, result.Items[0].AverageRating)
}

func TestGetRecipesRejectsUnknownMode(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetRecipes(context.Background(), domain.RecipeFilterRequest{Mode: "xor"})
	assert.ErrorIs(t, err, domain.ErrInvalidMatchMode)
}

func TestCreateRecipeWithRelations(t *testing.T) {
	service, db := newTestService(t)
	user := createTestUser(t, db, "alice")
	ctx := context.Background()

	flour := &entities.Ingredient{Name: "Flour", IconURL: "https://cdn/icons/flour.png"}
	dessert := &entities.Category{Name: "Dessert", IconURL: "https://cdn/icons/dessert.png"}
	require.NoError(t, db.Create(flour).Error)
	require.NoError(t, db.Create(dessert).Error)

	res, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:       "Shortbread",
		Description: "buttery",
		Duration:    40,
		Steps: []domain.RecipeStepRequest{
			{StepNumber: 1, Description: "Mix"},
			{StepNumber: 2, Description: "Bake"},
		},
		IngredientIDs: []string{flour.ID.String()},
		CategoryIDs:   []string{dessert.ID.String()},
	}, user.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Shortbread", res.Title)
	assert.Equal(t, 1, res.ServingsCount)
	assert.Len(t, res.Steps, 2)
	require.Len(t, res.Ingredients, 1)
	require.Len(t, res.Categories, 1)
	assert.Equal(t, "Flour", res.Ingredients[0].Name)
	assert.Equal(t, "Dessert", res.Categories[0].Name)
}

func TestCreateRecipeDuplicateTitleForAuthor(t *testing.T) {
	service, db := newTestService(t)
	user := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")
	ctx := context.Background()

	req := domain.CreateRecipeRequest{Title: "Pancakes", Description: "fluffy", Duration: 20}
	_, err := service.CreateRecipe(ctx, req, user.ID.String())
	require.NoError(t, err)

	_, err = service.CreateRecipe(ctx, req, user.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeTitleTaken)

	// Another author may reuse the title.
	_, err = service.CreateRecipe(ctx, req, other.ID.String())
	require.NoError(t, err)
}

func TestCreateRecipeRollsBackOnStepFailure(t *testing.T) {
	service, db := newTestService(t)
	user := createTestUser(t, db, "alice")

	// The second step violates the description check constraint, so the
	// whole aggregate must stay uncommitted, recipe row included.
	_, err := service.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       "Half Baked",
		Description: "never lands",
		Duration:    15,
		Steps: []domain.RecipeStepRequest{
			{StepNumber: 1, Description: "Preheat"},
			{StepNumber: 2, Description: ""},
		},
	}, user.ID.String())
	require.Error(t, err)

	var recipes int64
	require.NoError(t, db.Model(&entities.Recipe{}).Where("title = ?", "Half Baked").Count(&recipes).Error)
	assert.Equal(t, int64(0), recipes)

	var steps int64
	require.NoError(t, db.Model(&entities.RecipeStep{}).Count(&steps).Error)
	assert.Equal(t, int64(0), steps)
}

func TestUpdateRecipeOwnership(t *testing.T) {
	service, db := newTestService(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	recipe := createTestRecipe(t, db, alice.ID, "Soup", time.Now())
	ctx := context.Background()

	title := "Stolen Soup"
	_, err := service.UpdateRecipe(ctx, recipe.ID.String(), domain.UpdateRecipeRequest{Title: &title}, bob.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrRecipeNotOwned)

	// Admins can edit anyone's recipe.
	res, err := service.UpdateRecipe(ctx, recipe.ID.String(), domain.UpdateRecipeRequest{Title: &title}, bob.ID.String(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Stolen Soup", res.Title)
}

func TestUpdateRecipePartialKeepsCollections(t *testing.T) {
	service, db := newTestService(t)
	alice := createTestUser(t, db, "alice")
	ctx := context.Background()

	flour := &entities.Ingredient{Name: "Flour", IconURL: "https://cdn/icons/flour.png"}
	require.NoError(t, db.Create(flour).Error)

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{
		Title:         "Bread",
		Description:   "simple",
		Duration:      90,
		Steps:         []domain.RecipeStepRequest{{StepNumber: 1, Description: "Knead"}},
		IngredientIDs: []string{flour.ID.String()},
	}, alice.ID.String())
	require.NoError(t, err)

	// A title-only edit must not disturb steps or links.
	title := "Sourdough"
	res, err := service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{Title: &title}, alice.ID.String(), domain.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "Sourdough", res.Title)
	assert.Len(t, res.Steps, 1)
	assert.Len(t, res.Ingredients, 1)

	// An explicit empty slice clears them.
	res, err = service.UpdateRecipe(ctx, created.ID, domain.UpdateRecipeRequest{
		Steps:         []domain.RecipeStepRequest{},
		IngredientIDs: []string{},
	}, alice.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Empty(t, res.Steps)
	assert.Empty(t, res.Ingredients)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	service, db := newTestService(t)
	alice := createTestUser(t, db, "alice")

	err := service.DeleteRecipe(context.Background(), "00000000-0000-0000-0000-000000000001", alice.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetRecipeDetailReviewFlags(t *testing.T) {
	service, db := newTestService(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	recipe := createTestRecipe(t, db, alice.ID, "Pancakes", time.Now())
	approved := createApprovedStatus(t, db)
	createTestReview(t, db, bob.ID, recipe.ID, approved.ID, 5)
	ctx := context.Background()

	// Anonymous callers get the flags down.
	res, err := service.GetRecipeDetail(ctx, recipe.ID.String(), "")
	require.NoError(t, err)
	assert.False(t, res.IsReviewed)
	assert.False(t, res.IsApprovedReview)

	res, err = service.GetRecipeDetail(ctx, recipe.ID.String(), bob.ID.String())
	require.NoError(t, err)
	assert.True(t, res.IsReviewed)
	assert.True(t, res.IsApprovedReview)
}
