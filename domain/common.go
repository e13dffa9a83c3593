package domain

import (
	"errors"
	"net/http"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageInternalServerError  = "internal server error"

	ErrBodyRequest   = errors.New("invalid request body")
	ErrParseUUID     = errors.New("failed to parse UUID")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("token invalid")
)

// APIError is the error kind every service-level failure is classified
// into. The status code travels with the error so the boundary can map
// it without inspecting messages.
type APIError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewNotFound(message string) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: message}
}

func NewAlreadyExists(message string) *APIError {
	return &APIError{Code: http.StatusConflict, Message: message}
}

func NewPermissionDenied(message string) *APIError {
	return &APIError{Code: http.StatusForbidden, Message: message}
}

func NewValidationError(message string) *APIError {
	return &APIError{Code: http.StatusUnprocessableEntity, Message: message}
}
