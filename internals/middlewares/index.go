package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "churchheroes_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack. Order matters: recovery
// first so everything below it is covered.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
