package handlers

import (
	"errors"

	applog "tshirtshop/internal/log"
	"tshirtshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Error is the coded JSON error shape every failed request ends up with.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *Error) Error() string { return e.Message }

func badRequest(code, message, field string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Code: code, Message: message, Field: field}
}

func unauthorized(code, message string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Code: code, Message: message, Field: "USER-KEY"}
}

func notFound(code, message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Code: code, Message: message}
}

func conflict(code, message string) *Error {
	return &Error{Status: fiber.StatusConflict, Code: code, Message: message}
}

// ErrorHandler is the centralized error-formatting stage. Anything that is
// not a coded *Error is logged and flattened to a generic 500 so persistence
// or gateway error text never reaches the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{"error": apiErr})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": &Error{Status: fiber.StatusInternalServerError, Code: "SRV_01", Message: "internal server error"},
	})
}

// mapServiceErr translates the common service sentinels; anything else is
// passed through for the 500 path.
func mapServiceErr(err error, notFoundCode, notFoundMsg string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return notFound(notFoundCode, notFoundMsg)
	case errors.Is(err, services.ErrAlreadyReviewed):
		return conflict("REV_01", "you have already reviewed this product")
	case errors.Is(err, services.ErrCartNotFound):
		return notFound("CRT_01", "cart not found")
	case errors.Is(err, services.ErrEmptyCart):
		return badRequest("ORD_02", "cart has no items", "cart_id")
	case errors.Is(err, services.ErrInvalidToken):
		return unauthorized("AUT_02", "access unauthorized")
	default:
		return err
	}
}
