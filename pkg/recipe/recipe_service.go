package recipe

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils/storage"
	"RecipeShare-Backend/pkg/review"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, req domain.RecipeFilterRequest) (domain.PaginatedResult[domain.RecipeListItem], error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string, role string) (domain.RecipeDetailResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string, role string) error
		UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest, userID string, role string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		reviewRepository review.ReviewRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, reviewRepository review.ReviewRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		reviewRepository: reviewRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.RecipeFilterRequest) (domain.PaginatedResult[domain.RecipeListItem], error) {
	empty := domain.NewPaginatedResult([]domain.RecipeListItem{}, 0, req.Page, req.PerPage)

	filter := RecipeFilter{
		Page:    req.Page,
		PerPage: req.PerPage,
		Mode:    req.Mode,
	}
	if filter.Page < 1 {
		filter.Page = domain.DefaultRecipePage
	}
	if filter.PerPage < 1 {
		filter.PerPage = domain.DefaultRecipePerPage
	}
	if filter.Mode == "" {
		filter.Mode = domain.IngredientMatchOr
	}
	if filter.Mode != domain.IngredientMatchOr && filter.Mode != domain.IngredientMatchAnd {
		return empty, domain.ErrInvalidMatchMode
	}

	if req.UserID != "" {
		userUUID, err := uuid.Parse(req.UserID)
		if err != nil {
			return empty, domain.ErrParseUUID
		}
		filter.UserID = &userUUID
	}

	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return empty, domain.ErrParseUUID
	}
	filter.CategoryIDs = categoryIDs

	ingredientIDs, err := parseUUIDs(req.IngredientIDs)
	if err != nil {
		return empty, domain.ErrParseUUID
	}
	filter.IngredientIDs = ingredientIDs

	result, err := s.recipeRepository.GetRecipesPaginated(ctx, filter)
	if err != nil {
		return empty, err
	}

	return domain.MapPaginated(result, toRecipeListItem), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetailResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetDetailByID(ctx, recipeUUID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if recipe == nil {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
	}

	isReviewed, isApproved := false, false
	if userID != "" {
		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return domain.RecipeDetailResponse{}, domain.ErrParseUUID
		}
		if isReviewed, err = s.reviewRepository.IsUserAlreadyReviewed(ctx, userUUID, recipe.ID); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if isApproved, err = s.reviewRepository.HasApprovedReview(ctx, userUUID, recipe.ID); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}

	return toRecipeDetail(recipe, isReviewed, isApproved), nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	authorUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	taken, err := s.recipeRepository.IsTitleForAuthorExists(ctx, req.Title, authorUUID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if taken {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeTitleTaken
	}

	steps, err := toStepStates(req.Steps)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	ingredientIDs, err := parseUUIDs(req.IngredientIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}
	categoryIDs, err := parseUUIDs(req.CategoryIDs)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		Title:         req.Title,
		Description:   req.Description,
		Duration:      req.Duration,
		ServingsCount: req.ServingsCount,
		AuthorID:      authorUUID,
	}
	if recipe.ServingsCount < 1 {
		recipe.ServingsCount = 1
	}

	if err := s.recipeRepository.CreateWithRelations(ctx, recipe, steps, ingredientIDs, categoryIDs); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	created, err := s.recipeRepository.GetDetailByID(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return toRecipeDetail(created, false, false), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string, role string) (domain.RecipeDetailResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetDetailByID(ctx, recipeUUID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	if recipe == nil {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
	}

	if recipe.AuthorID.String() != userID && role != domain.RoleAdmin {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeNotOwned
	}

	if req.Title != nil && *req.Title != recipe.Title {
		taken, err := s.recipeRepository.IsTitleForAuthorExists(ctx, *req.Title, recipe.AuthorID)
		if err != nil {
			return domain.RecipeDetailResponse{}, err
		}
		if taken {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeTitleTaken
		}
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Duration != nil {
		recipe.Duration = *req.Duration
	}
	if req.ServingsCount != nil {
		recipe.ServingsCount = *req.ServingsCount
	}

	// Omitted collections keep their stored state; submitted ones are
	// the full desired state, so an empty slice clears the collection.
	steps := currentStepStates(recipe.Steps)
	if req.Steps != nil {
		if steps, err = toStepStates(req.Steps); err != nil {
			return domain.RecipeDetailResponse{}, err
		}
	}

	ingredientIDs := currentIngredientIDs(recipe.RecipeIngredients)
	if req.IngredientIDs != nil {
		if ingredientIDs, err = parseUUIDs(req.IngredientIDs); err != nil {
			return domain.RecipeDetailResponse{}, domain.ErrParseUUID
		}
	}

	categoryIDs := currentCategoryIDs(recipe.RecipeCategories)
	if req.CategoryIDs != nil {
		if categoryIDs, err = parseUUIDs(req.CategoryIDs); err != nil {
			return domain.RecipeDetailResponse{}, domain.ErrParseUUID
		}
	}

	if err := s.recipeRepository.UpdateWithRelations(ctx, recipe, steps, ingredientIDs, categoryIDs); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	updated, err := s.recipeRepository.GetDetailByID(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return toRecipeDetail(updated, false, false), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string, role string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetByID(ctx, recipeUUID)
	if err != nil {
		return err
	}
	if recipe == nil {
		return domain.ErrRecipeNotFound
	}

	if recipe.AuthorID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrRecipeNotOwned
	}

	if recipe.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.recipeRepository.Delete(ctx, recipe)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest, userID string, role string) (string, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return "", domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetByID(ctx, recipeUUID)
	if err != nil {
		return "", err
	}
	if recipe == nil {
		return "", domain.ErrRecipeNotFound
	}

	if recipe.AuthorID.String() != userID && role != domain.RoleAdmin {
		return "", domain.ErrRecipeNotOwned
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
	var objectKey string
	var uploadErr error

	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.Update(ctx, recipe); err != nil {
		return "", err
	}

	return recipe.ImageURL, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toStepStates(steps []domain.RecipeStepRequest) ([]StepState, error) {
	states := make([]StepState, 0, len(steps))
	for _, step := range steps {
		state := StepState{
			StepNumber:  step.StepNumber,
			Description: step.Description,
		}
		if step.ID != "" {
			id, err := uuid.Parse(step.ID)
			if err != nil {
				return nil, domain.ErrParseUUID
			}
			state.ID = id
		}
		states = append(states, state)
	}
	return states, nil
}

func currentStepStates(steps []*entities.RecipeStep) []StepState {
	states := make([]StepState, 0, len(steps))
	for _, step := range steps {
		states = append(states, StepState{
			ID:          step.ID,
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}
	return states
}

func currentIngredientIDs(links []*entities.RecipeIngredient) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.IngredientID)
	}
	return ids
}

func currentCategoryIDs(links []*entities.RecipeCategory) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.CategoryID)
	}
	return ids
}

func categoriesFromLinks(links []*entities.RecipeCategory) []domain.CategoryResponse {
	categories := make([]domain.CategoryResponse, 0, len(links))
	for _, link := range links {
		if link.Category == nil {
			continue
		}
		categories = append(categories, domain.CategoryResponse{
			ID:      link.Category.ID.String(),
			Name:    link.Category.Name,
			IconURL: link.Category.IconURL,
		})
	}
	return categories
}

func ingredientsFromLinks(links []*entities.RecipeIngredient) []domain.IngredientResponse {
	ingredients := make([]domain.IngredientResponse, 0, len(links))
	for _, link := range links {
		if link.Ingredient == nil {
			continue
		}
		ingredients = append(ingredients, domain.IngredientResponse{
			ID:       link.Ingredient.ID.String(),
			Name:     link.Ingredient.Name,
			Calories: link.Ingredient.Calories,
			IconURL:  link.Ingredient.IconURL,
		})
	}
	return ingredients
}

func toRecipeListItem(item RecipeWithStats) domain.RecipeListItem {
	recipe := item.Recipe
	return domain.RecipeListItem{
		ID:            recipe.ID.String(),
		Title:         recipe.Title,
		Description:   recipe.Description,
		Duration:      recipe.Duration,
		ServingsCount: recipe.ServingsCount,
		ImageURL:      recipe.ImageURL,
		CreatedAt:     recipe.CreatedAt,
		AuthorID:      recipe.AuthorID.String(),
		Categories:    categoriesFromLinks(recipe.RecipeCategories),
		Ingredients:   ingredientsFromLinks(recipe.RecipeIngredients),
		ReviewCount:   item.ReviewCount,
		AverageRating: item.AverageRating,
	}
}

func toRecipeDetail(recipe *entities.Recipe, isReviewed, isApproved bool) domain.RecipeDetailResponse {
	author := domain.RecipeAuthorResponse{ID: recipe.AuthorID.String()}
	if recipe.Author != nil {
		author.Username = recipe.Author.Username
		author.AvatarURL = recipe.Author.AvatarURL
	}

	steps := make([]domain.RecipeStepResponse, 0, len(recipe.Steps))
	for _, step := range recipe.Steps {
		steps = append(steps, domain.RecipeStepResponse{
			ID:          step.ID.String(),
			StepNumber:  step.StepNumber,
			Description: step.Description,
		})
	}

	return domain.RecipeDetailResponse{
		ID:               recipe.ID.String(),
		Title:            recipe.Title,
		Description:      recipe.Description,
		Duration:         recipe.Duration,
		ServingsCount:    recipe.ServingsCount,
		ImageURL:         recipe.ImageURL,
		CreatedAt:        recipe.CreatedAt,
		Author:           author,
		Steps:            steps,
		Categories:       categoriesFromLinks(recipe.RecipeCategories),
		Ingredients:      ingredientsFromLinks(recipe.RecipeIngredients),
		IsReviewed:       isReviewed,
		IsApprovedReview: isApproved,
	}
}
