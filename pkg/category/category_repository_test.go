package category

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"
	"testing"

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
		&entities.Recipe{},
		&entities.RecipeCategory{},
	))
	return db
}

func TestIsNameExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	dessert := &entities.Category{Name: "Dessert", IconURL: "https://cdn/icons/dessert.png"}
	require.NoError(t, repo.Create(ctx, dessert))

	exists, err := repo.IsNameExists(ctx, "Dessert", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.IsNameExists(ctx, "Dinner", nil)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIsNameExistsExcludesSelfOnRename(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	dessert := &entities.Category{Name: "Dessert", IconURL: "https://cdn/icons/dessert.png"}
	dinner := &entities.Category{Name: "Dinner", IconURL: "https://cdn/icons/dinner.png"}
	require.NoError(t, repo.Create(ctx, dessert))
	require.NoError(t, repo.Create(ctx, dinner))

	// Keeping your own name is not a conflict.
	exists, err := repo.IsNameExists(ctx, "Dessert", &dessert.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	// Taking another row's name is.
	exists, err = repo.IsNameExists(ctx, "Dinner", &dessert.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestCountRecipeLinks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	dessert := &entities.Category{Name: "Dessert", IconURL: "https://cdn/icons/dessert.png"}
	require.NoError(t, repo.Create(ctx, dessert))

	count, err := repo.CountRecipeLinks(ctx, dessert.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	user := &entities.User{Email: "alice@example.com", Username: "alice", Role: domain.RoleUser}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)

	recipe := &entities.Recipe{Title: "Cake", Description: "sweet", Duration: 60, AuthorID: user.ID}
	require.NoError(t, db.Create(recipe).Error)
	require.NoError(t, db.Create(&entities.RecipeCategory{RecipeID: recipe.ID, CategoryID: dessert.ID}).Error)

	count, err = repo.CountRecipeLinks(ctx, dessert.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
