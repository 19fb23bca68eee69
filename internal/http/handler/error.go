package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"leadintake/internal/http/middleware"
)

// errorPayload is the body of every non-2xx response.
type errorPayload struct {
	Error string `json:"error"`
}

func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Error: message})
}

// ErrorHandler returns the app-wide Fiber error handler. *fiber.Error keeps
// its status and message; any other error, recovered panics included,
// becomes a 500 carrying the error text.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeError(c, fe.Code, fe.Message)
		}

		log.Error("unhandled request error",
			zap.String("request_id", middleware.RequestIDFromCtx(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return writeError(c, fiber.StatusInternalServerError, err.Error())
	}
}
