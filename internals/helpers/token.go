// file: internals/helpers/token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromToken mengambil user_id yang sudah di-set AuthMiddleware
// ke locals. Kalau tidak ada berarti route salah pasang middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User ID tidak ditemukan di token")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User ID tidak valid")
	}
	return id, nil
}
