package review

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"context"

	"github.com/google/uuid"
)

const defaultReviewsPerPage = 10

type (
	// RecipeGetter is the slice of the recipe repository the review flow
	// needs; keeping it local avoids a package cycle with pkg/recipe.
	RecipeGetter interface {
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
	}

	ReviewService interface {
		GetRecipeReviews(ctx context.Context, recipeID string, page, perPage int) (domain.PaginatedResult[domain.ReviewResponse], error)
		GetPendingReviews(ctx context.Context, page, perPage int) (domain.PaginatedResult[domain.ReviewResponse], error)
		CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID string) (domain.ReviewResponse, error)
		UpdateReview(ctx context.Context, reviewID string, req domain.UpdateReviewRequest, userID string, role string) (domain.ReviewResponse, error)
		ApproveReview(ctx context.Context, reviewID string) (domain.ReviewResponse, error)
		DeleteReview(ctx context.Context, reviewID string, userID string, role string) error
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipes          RecipeGetter
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipes RecipeGetter) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipes:          recipes,
	}
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultReviewsPerPage
	}
	return page, perPage
}

func (s *reviewService) GetRecipeReviews(ctx context.Context, recipeID string, page, perPage int) (domain.PaginatedResult[domain.ReviewResponse], error) {
	page, perPage = normalizePage(page, perPage)
	empty := domain.NewPaginatedResult([]domain.ReviewResponse{}, 0, page, perPage)

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return empty, domain.ErrParseUUID
	}

	recipe, err := s.recipes.GetByID(ctx, recipeUUID)
	if err != nil {
		return empty, err
	}
	if recipe == nil {
		return empty, domain.ErrRecipeNotFound
	}

	result, err := s.reviewRepository.GetApprovedReviewsByRecipe(ctx, recipeUUID, page, perPage)
	if err != nil {
		return empty, err
	}

	return domain.MapPaginated(result, toReviewResponse), nil
}

func (s *reviewService) GetPendingReviews(ctx context.Context, page, perPage int) (domain.PaginatedResult[domain.ReviewResponse], error) {
	page, perPage = normalizePage(page, perPage)
	empty := domain.NewPaginatedResult([]domain.ReviewResponse{}, 0, page, perPage)

	result, err := s.reviewRepository.GetPendingReviews(ctx, page, perPage)
	if err != nil {
		return empty, err
	}

	return domain.MapPaginated(result, toReviewResponse), nil
}

func (s *reviewService) CreateReview(ctx context.Context, req domain.CreateReviewRequest, userID string) (domain.ReviewResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	recipe, err := s.recipes.GetByID(ctx, recipeUUID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if recipe == nil {
		return domain.ReviewResponse{}, domain.ErrRecipeNotFound
	}

	reviewed, err := s.reviewRepository.IsUserAlreadyReviewed(ctx, userUUID, recipeUUID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if reviewed {
		return domain.ReviewResponse{}, domain.ErrReviewAlreadyExists
	}

	pendingID, err := s.reviewRepository.GetStatusIDByName(ctx, domain.ReviewStatusPending)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if pendingID == nil {
		return domain.ReviewResponse{}, domain.ErrPendingStatusGone
	}

	review := &entities.Review{
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		StatusID: *pendingID,
	}
	if err := s.reviewRepository.Create(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req domain.UpdateReviewRequest, userID string, role string) (domain.ReviewResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	review, err := s.reviewRepository.GetByID(ctx, reviewUUID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if review == nil {
		return domain.ReviewResponse{}, domain.ErrReviewNotFound
	}

	if review.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ReviewResponse{}, domain.ErrReviewNotOwned
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	// An edited review goes back through moderation.
	pendingID, err := s.reviewRepository.GetStatusIDByName(ctx, domain.ReviewStatusPending)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if pendingID == nil {
		return domain.ReviewResponse{}, domain.ErrPendingStatusGone
	}
	review.StatusID = *pendingID
	review.Status = nil

	if err := s.reviewRepository.Update(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) ApproveReview(ctx context.Context, reviewID string) (domain.ReviewResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return domain.ReviewResponse{}, domain.ErrParseUUID
	}

	review, err := s.reviewRepository.GetByID(ctx, reviewUUID)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if review == nil {
		return domain.ReviewResponse{}, domain.ErrReviewNotFound
	}

	approvedID, err := s.reviewRepository.GetStatusIDByName(ctx, domain.ReviewStatusApproved)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if approvedID == nil {
		return domain.ReviewResponse{}, domain.ErrApprovedStatusGone
	}

	review.StatusID = *approvedID
	review.Status = nil
	if err := s.reviewRepository.Update(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string, userID string, role string) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return domain.ErrParseUUID
	}

	review, err := s.reviewRepository.GetByID(ctx, reviewUUID)
	if err != nil {
		return err
	}
	if review == nil {
		return domain.ErrReviewNotFound
	}

	if review.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrReviewNotOwned
	}

	return s.reviewRepository.Delete(ctx, review)
}

func toReviewResponse(review *entities.Review) domain.ReviewResponse {
	response := domain.ReviewResponse{
		ID:        review.ID.String(),
		RecipeID:  review.RecipeID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if review.User != nil {
		response.Username = review.User.Username
	}
	if review.Status != nil {
		response.Status = review.Status.Name
	}
	return response
}
