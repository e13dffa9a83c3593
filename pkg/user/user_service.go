package user

import (
	"RecipeShare-Backend/domain"
	"RecipeShare-Backend/entities"
	"RecipeShare-Backend/internal/utils/mailing"
	"RecipeShare-Backend/internal/utils/storage"
	"RecipeShare-Backend/pkg/jwt"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error)
		RefreshToken(ctx context.Context, req domain.RefreshTokenRequest) (domain.TokenResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	emailTaken, err := s.userRepository.IsEmailExists(ctx, req.Email)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if emailTaken {
		return domain.UserResponse{}, domain.ErrEmailTaken
	}

	usernameTaken, err := s.userRepository.IsUsernameExists(ctx, req.Username, nil)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if usernameTaken {
		return domain.UserResponse{}, domain.ErrUsernameTaken
	}

	user := &entities.User{
		Email:     req.Email,
		Username:  req.Username,
		AvatarURL: entities.DefaultAvatarURL,
		Role:      domain.RoleUser,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return domain.UserResponse{}, err
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	// Best effort; registration must not fail on a mail outage.
	go func() {
		if err := mailing.SendWelcomeMail(user.Email, user.Username); err != nil {
			log.Printf("failed to send welcome mail to %s: %v", user.Email, err)
		}
	}()

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error) {
	user, err := s.userRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		return domain.TokenResponse{}, err
	}
	if user == nil || !user.CheckPassword(req.Password) {
		return domain.TokenResponse{}, domain.ErrInvalidCredentials
	}

	accessToken := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	refreshToken, expiresAt, err := s.jwtService.GenerateRefreshToken()
	if err != nil {
		return domain.TokenResponse{}, err
	}
	if err := s.userRepository.CreateRefreshToken(ctx, &entities.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return domain.TokenResponse{}, err
	}

	return domain.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) RefreshToken(ctx context.Context, req domain.RefreshTokenRequest) (domain.TokenResponse, error) {
	stored, err := s.userRepository.GetRefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return domain.TokenResponse{}, err
	}
	if stored == nil {
		return domain.TokenResponse{}, domain.ErrRefreshTokenNotFound
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepository.DeleteRefreshToken(ctx, stored.Token)
		return domain.TokenResponse{}, domain.ErrRefreshTokenInvalid
	}

	user, err := s.userRepository.GetByID(ctx, stored.UserID)
	if err != nil {
		return domain.TokenResponse{}, err
	}
	if user == nil {
		return domain.TokenResponse{}, domain.ErrUserNotFound
	}

	// Rotate: the presented token is spent whether or not a new one is
	// issued.
	if err := s.userRepository.DeleteRefreshToken(ctx, stored.Token); err != nil {
		return domain.TokenResponse{}, err
	}

	refreshToken, expiresAt, err := s.jwtService.GenerateRefreshToken()
	if err != nil {
		return domain.TokenResponse{}, err
	}
	if err := s.userRepository.CreateRefreshToken(ctx, &entities.RefreshToken{
		Token:     refreshToken,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return domain.TokenResponse{}, err
	}

	return domain.TokenResponse{
		AccessToken:  s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if user == nil {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}

	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (domain.UserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UserResponse{}, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if user == nil {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}

	if req.Username != "" && req.Username != user.Username {
		taken, err := s.userRepository.IsUsernameExists(ctx, req.Username, &user.ID)
		if err != nil {
			return domain.UserResponse{}, err
		}
		if taken {
			return domain.UserResponse{}, domain.ErrUsernameTaken
		}
		user.Username = req.Username
	}

	if req.Avatar != nil {
		fileName := fmt.Sprintf("user-avatar-%s", user.ID.String())
		var objectKey string
		var uploadErr error

		if user.AvatarURL != "" && user.AvatarURL != entities.DefaultAvatarURL {
			existingKey := s.s3.GetObjectKeyFromLink(user.AvatarURL)
			if existingKey != "" {
				objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Avatar, storage.AllowImage...)
			} else {
				objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
			}
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Avatar, "avatars", storage.AllowImage...)
		}

		if uploadErr != nil {
			return domain.UserResponse{}, uploadErr
		}
		user.AvatarURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.userRepository.Update(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	user, err := s.userRepository.GetByID(ctx, userUUID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}

	if user.AvatarURL != "" && user.AvatarURL != entities.DefaultAvatarURL {
		objectKey := s.s3.GetObjectKeyFromLink(user.AvatarURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.userRepository.DeleteRefreshTokensByUser(ctx, user.ID); err != nil {
		return err
	}

	return s.userRepository.Delete(ctx, user)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
