package ingredient

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils/storage"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		GetIngredient(ctx context.Context, id string) (domain.IngredientResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, s3 storage.AwsS3) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		response = append(response, toIngredientResponse(ingredient))
	}
	return response, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredientUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetByID(ctx, ingredientUUID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	if ingredient == nil {
		return domain.IngredientResponse{}, domain.ErrIngredientNotFound
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	if req.Icon == nil {
		return domain.IngredientResponse{}, domain.ErrIngredientIconMissing
	}

	taken, err := s.ingredientRepository.IsNameExists(ctx, req.Name, nil)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	if taken {
		return domain.IngredientResponse{}, domain.ErrIngredientNameTaken
	}

	ingredient := &entities.Ingredient{
		Name:     req.Name,
		Calories: req.Calories,
	}

	fileName := fmt.Sprintf("ingredient-%s", uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.Icon, "ingredients", storage.AllowImage...)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	ingredient.IconURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.ingredientRepository.Create(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) (domain.IngredientResponse, error) {
	ingredientUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetByID(ctx, ingredientUUID)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	if ingredient == nil {
		return domain.IngredientResponse{}, domain.ErrIngredientNotFound
	}

	if req.Name != ingredient.Name {
		taken, err := s.ingredientRepository.IsNameExists(ctx, req.Name, &ingredient.ID)
		if err != nil {
			return domain.IngredientResponse{}, err
		}
		if taken {
			return domain.IngredientResponse{}, domain.ErrIngredientNameTaken
		}
		ingredient.Name = req.Name
	}
	ingredient.Calories = req.Calories

	if req.Icon != nil {
		existingKey := s.s3.GetObjectKeyFromLink(ingredient.IconURL)
		var objectKey string
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Icon, storage.AllowImage...)
		} else {
			fileName := fmt.Sprintf("ingredient-%s", ingredient.ID.String())
			objectKey, err = s.s3.UploadFile(fileName, req.Icon, "ingredients", storage.AllowImage...)
		}
		if err != nil {
			return domain.IngredientResponse{}, err
		}
		ingredient.IconURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.ingredientRepository.Update(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	ingredientUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	ingredient, err := s.ingredientRepository.GetByID(ctx, ingredientUUID)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return domain.ErrIngredientNotFound
	}

	links, err := s.ingredientRepository.CountRecipeLinks(ctx, ingredient.ID)
	if err != nil {
		return err
	}
	if links > 0 {
		return domain.ErrIngredientInUse
	}

	if ingredient.IconURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(ingredient.IconURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.ingredientRepository.Delete(ctx, ingredient)
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:       ingredient.ID.String(),
		Name:     ingredient.Name,
		Calories: ingredient.Calories,
		IconURL:  ingredient.IconURL,
	}
}
