package presenters

import (
	"errors"

	"HomeChef-Backend/domain"
	"HomeChef-Backend/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	res := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		res.Errors = err.Error()
	}
	return c.Status(status).JSON(res)
}

// ErrorResponseWithData is used when the client needs context alongside the error.
func ErrorResponseWithData(c *fiber.Ctx, status int, message string, err error, data any) error {
	res := Response{
		Success: false,
		Message: message,
		Data:    data,
	}
	if err != nil {
		res.Errors = err.Error()
	}
	return c.Status(status).JSON(res)
}

func ValidationErrorResponse(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Response{
		Success: false,
		Message: domain.MessageFailedValidation,
		Errors:  utils.ValidationErrors(err),
	})
}

// ErrorStatus maps an error kind to its HTTP status code.
func ErrorStatus(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs), errors.Is(err, domain.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInvalidState):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ServiceErrorResponse renders a service error with the status of its kind.
// Unclassified errors are logged and hidden from the client.
func ServiceErrorResponse(c *fiber.Ctx, message string, err error) error {
	status := ErrorStatus(err)
	if status == fiber.StatusInternalServerError && !errors.Is(err, domain.ErrUpstream) {
		utils.Log.WithError(err).WithField("path", c.Path()).Error(message)
		return ErrorResponse(c, status, message, nil)
	}
	return ErrorResponse(c, status, message, err)
}
