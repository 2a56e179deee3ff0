// file: internals/middlewares/setup.go
package middlewares

import (
	loggerMw "absensiku_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares memasang middleware global dengan urutan:
// recovery paling luar, lalu CORS, lalu access log.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
}
