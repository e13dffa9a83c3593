package domain

import (
	"mime/multipart"
	"time"
)

const (
	IngredientMatchOr  = "or"
	IngredientMatchAnd = "and"

	DefaultRecipePage    = 1
	DefaultRecipePerPage = 24
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound   = NewNotFound("recipe not found")
	ErrRecipeTitleTaken = NewAlreadyExists("you already have a recipe with this title")
	ErrRecipeNotOwned   = NewPermissionDenied("you do not have permission to modify this recipe")
	ErrInvalidMatchMode = NewValidationError("ingredient match mode must be \"or\" or \"and\"")
)

type (
	// RecipeFilterRequest carries the listing criteria straight from the
	// query string; ids stay strings until the service parses them.
	RecipeFilterRequest struct {
		Page          int      `query:"page" validate:"omitempty,min=1"`
		PerPage       int      `query:"per_page" validate:"omitempty,min=1,max=100"`
		UserID        string   `query:"user_id" validate:"omitempty,uuid"`
		CategoryIDs   []string `query:"category_ids" validate:"omitempty,dive,uuid"`
		IngredientIDs []string `query:"ingredient_ids" validate:"omitempty,dive,uuid"`
		Mode          string   `query:"mode" validate:"omitempty,oneof=or and"`
	}

	RecipeStepRequest struct {
		ID          string `json:"id" validate:"omitempty,uuid"`
		StepNumber  int    `json:"step_number" validate:"required,min=1"`
		Description string `json:"description" validate:"required"`
	}

	CreateRecipeRequest struct {
		Title         string              `json:"title" validate:"required,max=100"`
		Description   string              `json:"description" validate:"required"`
		Duration      int                 `json:"duration" validate:"required,min=1"`
		ServingsCount int                 `json:"servings_count" validate:"omitempty,min=1"`
		Steps         []RecipeStepRequest `json:"steps" validate:"omitempty,dive"`
		IngredientIDs []string            `json:"ingredient_ids" validate:"omitempty,dive,uuid"`
		CategoryIDs   []string            `json:"category_ids" validate:"omitempty,dive,uuid"`
	}

	UpdateRecipeRequest struct {
		Title         *string             `json:"title" validate:"omitempty,max=100"`
		Description   *string             `json:"description"`
		Duration      *int                `json:"duration" validate:"omitempty,min=1"`
		ServingsCount *int                `json:"servings_count" validate:"omitempty,min=1"`
		Steps         []RecipeStepRequest `json:"steps" validate:"omitempty,dive"`
		IngredientIDs []string            `json:"ingredient_ids" validate:"omitempty,dive,uuid"`
		CategoryIDs   []string            `json:"category_ids" validate:"omitempty,dive,uuid"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"-" form:"-"`
	}

	RecipeStepResponse struct {
		ID          string `json:"id"`
		StepNumber  int    `json:"step_number"`
		Description string `json:"description"`
	}

	RecipeAuthorResponse struct {
		ID        string `json:"id"`
		Username  string `json:"username"`
		AvatarURL string `json:"avatar_url,omitempty"`
	}

	RecipeListItem struct {
		ID            string               `json:"id"`
		Title         string               `json:"title"`
		Description   string               `json:"description"`
		Duration      int                  `json:"duration"`
		ServingsCount int                  `json:"servings_count"`
		ImageURL      string               `json:"image_url,omitempty"`
		CreatedAt     time.Time            `json:"created_at"`
		AuthorID      string               `json:"author_id"`
		Categories    []CategoryResponse   `json:"categories"`
		Ingredients   []IngredientResponse `json:"ingredients"`
		ReviewCount   int64                `json:"review_count"`
		AverageRating float64              `json:"average_rating"`
	}

	RecipeDetailResponse struct {
		ID               string               `json:"id"`
		Title            string               `json:"title"`
		Description      string               `json:"description"`
		Duration         int                  `json:"duration"`
		ServingsCount    int                  `json:"servings_count"`
		ImageURL         string               `json:"image_url,omitempty"`
		CreatedAt        time.Time            `json:"created_at"`
		Author           RecipeAuthorResponse `json:"author"`
		Steps            []RecipeStepResponse `json:"steps"`
		Categories       []CategoryResponse   `json:"categories"`
		Ingredients      []IngredientResponse `json:"ingredients"`
		IsReviewed       bool                 `json:"isReviewed"`
		IsApprovedReview bool                 `json:"isApprovedReview"`
	}
)
