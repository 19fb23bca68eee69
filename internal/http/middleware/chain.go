package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Chain returns the app-wide middleware in registration order.
// recover is innermost so a panic reaches the request log and metrics as a 500.
func Chain(log *zap.Logger, prom *PrometheusMiddleware) []fiber.Handler {
	return []fiber.Handler{
		RequestID(),
		Logger(log),
		prom.Handler(),
		recover.New(),
	}
}
