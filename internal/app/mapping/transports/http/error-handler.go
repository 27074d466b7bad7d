package column_mapping_http_handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorHandler renders every handler error as {"error": "..."}. Errors
// that are not *fiber.Error become 500 and are logged.
func NewErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(fctx fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fctx.Status(fe.Code).JSON(ErrorResponse{Error: fe.Message})
		}

		log.Error("request failed", "method", fctx.Method(), "path", fctx.Path(), "error", err)
		return fctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
}
