package domain

import (
	"mime/multipart"
)

var (
	MessageSuccessGetCategories    = "success get categories"
	MessageSuccessGetCategory      = "success get category"
	MessageSuccessCreateCategory   = "category created successfully"
	MessageSuccessUpdateCategory   = "category updated successfully"
	MessageSuccessDeleteCategory   = "category deleted successfully"
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessGetIngredient    = "success get ingredient"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"

	MessageFailedGetCategories    = "failed to get categories"
	MessageFailedGetCategory      = "failed to get category"
	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedUpdateCategory   = "failed to update category"
	MessageFailedDeleteCategory   = "failed to delete category"
	MessageFailedGetIngredients   = "failed to get ingredients"
	MessageFailedGetIngredient    = "failed to get ingredient"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"

	ErrCategoryNotFound    = NewNotFound("category not found")
	ErrCategoryNameTaken   = NewAlreadyExists("category with this name already exists")
	ErrCategoryInUse       = NewValidationError("category is referenced by existing recipes")
	ErrCategoryIconMissing = NewValidationError("category needs to have an icon image")

	ErrIngredientNotFound    = NewNotFound("ingredient not found")
	ErrIngredientNameTaken   = NewAlreadyExists("ingredient with this name already exists")
	ErrIngredientInUse       = NewValidationError("ingredient is referenced by existing recipes")
	ErrIngredientIconMissing = NewValidationError("ingredient needs to have an icon image")
)

type (
	CreateCategoryRequest struct {
		Name string                `json:"name" form:"name" validate:"required,max=50"`
		Icon *multipart.FileHeader `json:"-" form:"-"`
	}

	UpdateCategoryRequest struct {
		Name string                `json:"name" form:"name" validate:"required,max=50"`
		Icon *multipart.FileHeader `json:"-" form:"-"`
	}

	CategoryResponse struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		IconURL string `json:"icon_url"`
	}

	CreateIngredientRequest struct {
		Name     string                `json:"name" form:"name" validate:"required,max=100"`
		Calories float64               `json:"calories" form:"calories" validate:"min=0"`
		Icon     *multipart.FileHeader `json:"-" form:"-"`
	}

	UpdateIngredientRequest struct {
		Name     string                `json:"name" form:"name" validate:"required,max=100"`
		Calories float64               `json:"calories" form:"calories" validate:"min=0"`
		Icon     *multipart.FileHeader `json:"-" form:"-"`
	}

	IngredientResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		IconURL  string  `json:"icon_url"`
	}
)
