// Package common holds the response envelope, problem-details rendering and
// the request binding helper shared by the webapi handler packages.
package common

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/ksuvorov/bankledger/pkg/domain"
	"github.com/ksuvorov/bankledger/pkg/money"
)

// Response is the success envelope returned by every handler.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails is an RFC 9457 problem document.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

var validate = validator.New()

// SuccessResponseJSON writes the success envelope with the given status code.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes a problem document. Extras may carry a string
// detail and/or an int status override; without an int the status is derived
// from the error via ErrorToStatusCode.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extras ...any) error {
	status := ErrorToStatusCode(err)
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	for _, extra := range extras {
		switch v := extra.(type) {
		case string:
			detail = v
		case int:
			status = v
		}
	}
	if err := c.Status(status).JSON(ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}); err != nil {
		return err
	}
	// after JSON, which would otherwise reset the content type
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return nil
}

// ErrorToStatusCode maps domain errors onto HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return fiber.StatusInternalServerError
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrClientNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAccountBlocked),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrNotSameClient):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrClientExists),
		errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, money.ErrTooManyDecimals),
		errors.Is(err, money.ErrAmountNotPositive):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the JSON body into T and runs struct validation.
// On failure it writes the 400 problem document and returns nil.
func BindAndValidate[T any](c *fiber.Ctx, logger *slog.Logger) *T {
	var input T
	if err := c.BodyParser(&input); err != nil {
		logger.Warn("body parse failed", "error", err)
		_ = ProblemDetailsJSON(c, "invalid request body", err, fiber.StatusBadRequest)
		return nil
	}
	if err := validate.Struct(&input); err != nil {
		logger.Warn("validation failed", "error", err)
		_ = ProblemDetailsJSON(c, "validation failed", err, fiber.StatusBadRequest)
		return nil
	}
	return &input
}
