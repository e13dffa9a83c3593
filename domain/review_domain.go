package domain

import (
	"time"
)

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
)

var (
	MessageSuccessGetReviews     = "success get reviews"
	MessageSuccessCreateReview   = "review submitted for moderation"
	MessageSuccessUpdateReview   = "review updated successfully"
	MessageSuccessApproveReview  = "review approved successfully"
	MessageSuccessDeleteReview   = "review deleted successfully"
	MessageSuccessGetPendingList = "success get pending reviews"

	MessageFailedGetReviews     = "failed to get reviews"
	MessageFailedCreateReview   = "failed to create review"
	MessageFailedUpdateReview   = "failed to update review"
	MessageFailedApproveReview  = "failed to approve review"
	MessageFailedDeleteReview   = "failed to delete review"
	MessageFailedGetPendingList = "failed to get pending reviews"

	ErrReviewNotFound      = NewNotFound("review not found")
	ErrReviewAlreadyExists = NewAlreadyExists("you already reviewed this recipe")
	ErrReviewNotOwned      = NewPermissionDenied("you do not have permission to modify this review")
	ErrPendingStatusGone   = NewNotFound("pending review status is missing")
	ErrApprovedStatusGone  = NewNotFound("approved review status is missing")
)

type (
	CreateReviewRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Comment  string `json:"comment" validate:"required"`
	}

	UpdateReviewRequest struct {
		Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
		Comment *string `json:"comment"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		UserID    string    `json:"user_id"`
		Username  string    `json:"username,omitempty"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment"`
		Status    string    `json:"status,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
