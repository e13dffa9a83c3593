package category

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils/storage"
	"context"
	"fmt"

	"github.com/google/uuid"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategory(ctx context.Context, id string) (domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewCategoryService(categoryRepository CategoryRepository, s3 storage.AwsS3) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}
	return response, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (domain.CategoryResponse, error) {
	categoryUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.CategoryResponse{}, domain.ErrParseUUID
	}

	category, err := s.categoryRepository.GetByID(ctx, categoryUUID)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	if category == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryNotFound
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	if req.Icon == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryIconMissing
	}

	taken, err := s.categoryRepository.IsNameExists(ctx, req.Name, nil)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	if taken {
		return domain.CategoryResponse{}, domain.ErrCategoryNameTaken
	}

	category := &entities.Category{Name: req.Name}

	fileName := fmt.Sprintf("category-%s", uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.Icon, "categories", storage.AllowImage...)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	category.IconURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.categoryRepository.Create(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error) {
	categoryUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.CategoryResponse{}, domain.ErrParseUUID
	}

	category, err := s.categoryRepository.GetByID(ctx, categoryUUID)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	if category == nil {
		return domain.CategoryResponse{}, domain.ErrCategoryNotFound
	}

	if req.Name != category.Name {
		taken, err := s.categoryRepository.IsNameExists(ctx, req.Name, &category.ID)
		if err != nil {
			return domain.CategoryResponse{}, err
		}
		if taken {
			return domain.CategoryResponse{}, domain.ErrCategoryNameTaken
		}
		category.Name = req.Name
	}

	if req.Icon != nil {
		existingKey := s.s3.GetObjectKeyFromLink(category.IconURL)
		var objectKey string
		if existingKey != "" {
			objectKey, err = s.s3.UpdateFile(existingKey, req.Icon, storage.AllowImage...)
		} else {
			fileName := fmt.Sprintf("category-%s", category.ID.String())
			objectKey, err = s.s3.UploadFile(fileName, req.Icon, "categories", storage.AllowImage...)
		}
		if err != nil {
			return domain.CategoryResponse{}, err
		}
		category.IconURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.categoryRepository.Update(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	categoryUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	category, err := s.categoryRepository.GetByID(ctx, categoryUUID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}

	links, err := s.categoryRepository.CountRecipeLinks(ctx, category.ID)
	if err != nil {
		return err
	}
	if links > 0 {
		return domain.ErrCategoryInUse
	}

	if category.IconURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(category.IconURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.categoryRepository.Delete(ctx, category)
}

func toCategoryResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:      category.ID.String(),
		Name:    category.Name,
		IconURL: category.IconURL,
	}
}
