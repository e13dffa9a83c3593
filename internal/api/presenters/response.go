package presenters

import (
	"RecipeShare-Backend/domain"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// clientFault reports whether the error originated from the request
// itself, so the caller's 4xx status and the error text may pass
// through to the client.
func clientFault(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs) ||
		errors.Is(err, domain.ErrBodyRequest) ||
		errors.Is(err, domain.ErrParseUUID) ||
		errors.Is(err, domain.ErrTokenNotFound) ||
		errors.Is(err, domain.ErrTokenExpired) ||
		errors.Is(err, domain.ErrTokenInvalid)
}

// ErrorResponse maps a classified service error to its carried status
// code. Anything unclassified collapses to a generic 500: the detail
// goes to the server log, never to the client.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	response := Response{
		Status:  false,
		Message: message,
	}

	var apiErr *domain.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.Code
		response.Error = apiErr.Message
	case clientFault(err):
		response.Error = err.Error()
	case err != nil:
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		status = fiber.StatusInternalServerError
		response.Error = domain.MessageInternalServerError
	}

	return c.Status(status).JSON(response)
}
