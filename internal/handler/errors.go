package handler

import (
	"errors"

	"go-inventory-hub/internal/ledger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusFor maps a ledger error kind onto an HTTP status.
func StatusFor(err error) int {
	switch ledger.KindOf(err) {
	case ledger.KindNotFound:
		return fiber.StatusNotFound
	case ledger.KindInvalidInput:
		return fiber.StatusBadRequest
	case ledger.KindInsufficientStock:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders every error returned by a route as {"error": message}.
// Internal failures are logged and hidden behind a generic message.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		code := StatusFor(err)
		if code == fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			return c.Status(code).JSON(fiber.Map{"error": "Internal Server Error"})
		}

		body := fiber.Map{"error": err.Error()}
		var le *ledger.Error
		if errors.As(err, &le) {
			body["code"] = le.Kind
			if le.ProductID != 0 {
				body["product_id"] = le.ProductID
			}
		}
		return c.Status(code).JSON(body)
	}
}
