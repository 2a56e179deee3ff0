// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"absensiku_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// AuthMiddleware memverifikasi Bearer token (HS256) dan menaruh
// user_id hasil klaim ke Locals untuk dipakai controller.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("metode signing tidak dikenal")
			}
			return []byte(secretKey), nil
		})
		if err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak valid")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user ID tidak valid")
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Unauthorized - Header Authorization kosong")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Unauthorized - Format token tidak sesuai")
	}
	return parts[1], nil
}

// extractUserID: klaim angka JSON selalu datang sebagai float64.
func extractUserID(claims jwt.MapClaims) (uint, error) {
	raw, ok := claims["user_id"]
	if !ok {
		return 0, errors.New("klaim user_id tidak ada")
	}
	f, ok := raw.(float64)
	if !ok || f <= 0 {
		return 0, errors.New("klaim user_id bukan angka valid")
	}
	return uint(f), nil
}
