// Package apierror maps domain errors onto HTTP responses.
package apierror

import (
	"errors"

	"team-inventory/core/ledger"

	"github.com/gofiber/fiber/v2"
)

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ledger.ErrInsufficientStock):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes err as a JSON error body.
func Respond(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}

	var validation *ledger.ValidationError
	var stock *ledger.InsufficientStockError
	switch {
	case errors.As(err, &validation):
		body["field"] = validation.Field
	case errors.As(err, &stock):
		body["available"] = stock.Available
		body["requested"] = stock.Requested
	}
	return c.Status(Status(err)).JSON(body)
}

// BadRequest writes a 400 for malformed request bodies.
func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
