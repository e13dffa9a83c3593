package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister     = "user registered successfully"
	MessageSuccessLogin        = "login success"
	MessageSuccessRefreshToken = "token refreshed successfully"
	MessageSuccessGetUser      = "success get user"
	MessageSuccessUpdateUser   = "user updated successfully"
	MessageSuccessDeleteUser   = "user deleted successfully"

	MessageFailedRegister     = "failed to register user"
	MessageFailedLogin        = "failed to login"
	MessageFailedRefreshToken = "failed to refresh token"
	MessageFailedGetUser      = "failed to get user"
	MessageFailedUpdateUser   = "failed to update user"
	MessageFailedDeleteUser   = "failed to delete user"

	ErrUserNotFound         = NewNotFound("user not found")
	ErrUsernameTaken        = NewAlreadyExists("user with this username already exists")
	ErrEmailTaken           = NewAlreadyExists("user with this email already exists")
	ErrInvalidCredentials   = NewValidationError("invalid username or password")
	ErrUserNotAllowed       = NewPermissionDenied("user not allowed")
	ErrRefreshTokenInvalid  = NewValidationError("refresh token invalid or expired")
	ErrRefreshTokenNotFound = NewNotFound("refresh token not found")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" form:"email" validate:"required,email"`
		Username string `json:"username" form:"username" validate:"required,min=3,max=100"`
		Password string `json:"password" form:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	RefreshTokenRequest struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	TokenResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token,omitempty"`
	}

	UpdateUserRequest struct {
		Username string                `json:"username" form:"username" validate:"omitempty,min=3,max=100"`
		Avatar   *multipart.FileHeader `json:"-" form:"-"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Username  string    `json:"username"`
		AvatarURL string    `json:"avatar_url,omitempty"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"created_at"`
	}
)
