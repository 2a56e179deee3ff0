// file: internals/middlewares/cors_middleware.go
package middlewares

import (
	"strings"

	"absensiku_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware membuat middleware CORS. Origin tambahan bisa
// disuntik lewat env CORS_EXTRA_ORIGINS (dipisah koma).
func CorsMiddleware() fiber.Handler {
	origins := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5500",
	}
	if extra := configs.GetEnv("CORS_EXTRA_ORIGINS", ""); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ", "),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowCredentials: true,
	})
}
