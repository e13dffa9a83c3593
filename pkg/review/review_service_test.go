package review

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/pkg/repository"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (ReviewService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	return NewReviewService(NewReviewRepository(db), repository.New[entities.Recipe](db)), db
}

func TestCreateReviewGoesToPending(t *testing.T) {
	service, db := newTestService(t)
	seedStatuses(t, db)
	author := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	recipe := createRecipe(t, db, author.ID, "Pancakes")

	res, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		RecipeID: recipe.ID.String(),
		Rating:   5,
		Comment:  "superb",
	}, bob.ID.String())
	require.NoError(t, err)

	var stored entities.Review
	require.NoError(t, db.Preload("Status").First(&stored, "id = ?", res.ID).Error)
	assert.Equal(t, domain.ReviewStatusPending, stored.Status.Name)
}

func TestCreateReviewDuplicate(t *testing.T) {
	service, db := newTestService(t)
	seedStatuses(t, db)
	author := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	recipe := createRecipe(t, db, author.ID, "Pancakes")
	ctx := context.Background()

	req := domain.CreateReviewRequest{RecipeID: recipe.ID.String(), Rating: 4, Comment: "good"}
	_, err := service.CreateReview(ctx, req, bob.ID.String())
	require.NoError(t, err)

	_, err = service.CreateReview(ctx, req, bob.ID.String())
	assert.ErrorIs(t, err, domain.ErrReviewAlreadyExists)
}

func TestCreateReviewRecipeMissing(t *testing.T) {
	service, db := newTestService(t)
	seedStatuses(t, db)
	bob := createUser(t, db, "bob")

	_, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		RecipeID: uuid.New().String(),
		Rating:   4,
		Comment:  "good",
	}, bob.ID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestCreateReviewPendingStatusMissing(t *testing.T) {
	service, db := newTestService(t)
	author := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	recipe := createRecipe(t, db, author.ID, "Pancakes")

	_, err := service.CreateReview(context.Background(), domain.CreateReviewRequest{
		RecipeID: recipe.ID.String(),
		Rating:   4,
		Comment:  "good",
	}, bob.ID.String())
	assert.ErrorIs(t, err, domain.ErrPendingStatusGone)
}

func TestApproveReview(t *testing.T) {
	service, db := newTestService(t)
	seedStatuses(t, db)
	author := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	recipe := createRecipe(t, db, author.ID, "Pancakes")
	ctx := context.Background()

	created, err := service.CreateReview(ctx, domain.CreateReviewRequest{
		RecipeID: recipe.ID.String(), Rating: 5, Comment: "superb",
	}, bob.ID.String())
	require.NoError(t, err)

	_, err = service.ApproveReview(ctx, created.ID)
	require.NoError(t, err)

	var stored entities.Review
	require.NoError(t, db.Preload("Status").First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, domain.ReviewStatusApproved, stored.Status.Name)

	// The approved review now shows up on the recipe's public page.
	page, err := service.GetRecipeReviews(ctx, recipe.ID.String(), 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, created.ID, page.Items[0].ID)
}

func TestApproveReviewMissing(t *testing.T) {
	service, db := newTestService(t)
	seedStatuses(t, db)

	_, err := service.ApproveReview(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestUpdateReviewNotOwned(t *testing.T) {
	service, db := newTestService(t)
	seedStatuses(t, db)
	author := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	recipe := createRecipe(t, db, author.ID, "Pancakes")
	ctx := context.Background()

	created, err := service.CreateReview(ctx, domain.CreateReviewRequest{
		RecipeID: recipe.ID.String(), Rating: 3, Comment: "ok",
	}, bob.ID.String())
	require.NoError(t, err)

	rating := 1
	_, err = service.UpdateReview(ctx, created.ID, domain.UpdateReviewRequest{Rating: &rating}, carol.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrReviewNotOwned)
}

func TestUpdateReviewResetsToPending(t *testing.T) {
	service, db := newTestService(t)
	seedStatuses(t, db)
	author := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	recipe := createRecipe(t, db, author.ID, "Pancakes")
	ctx := context.Background()

	created, err := service.CreateReview(ctx, domain.CreateReviewRequest{
		RecipeID: recipe.ID.String(), Rating: 5, Comment: "superb",
	}, bob.ID.String())
	require.NoError(t, err)

	_, err = service.ApproveReview(ctx, created.ID)
	require.NoError(t, err)

	comment := "actually just fine"
	_, err = service.UpdateReview(ctx, created.ID, domain.UpdateReviewRequest{Comment: &comment}, bob.ID.String(), domain.RoleUser)
	require.NoError(t, err)

	var stored entities.Review
	require.NoError(t, db.Preload("Status").First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, domain.ReviewStatusPending, stored.Status.Name)
	assert.Equal(t, comment, stored.Comment)
}

func TestDeleteReviewByAdmin(t *testing.T) {
	service, db := newTestService(t)
	seedStatuses(t, db)
	author := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	admin := createUser(t, db, "root")
	recipe := createRecipe(t, db, author.ID, "Pancakes")
	ctx := context.Background()

	created, err := service.CreateReview(ctx, domain.CreateReviewRequest{
		RecipeID: recipe.ID.String(), Rating: 1, Comment: "spam",
	}, bob.ID.String())
	require.NoError(t, err)

	require.NoError(t, service.DeleteReview(ctx, created.ID, admin.ID.String(), domain.RoleAdmin))

	var count int64
	require.NoError(t, db.Model(&entities.Review{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
