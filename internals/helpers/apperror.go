// file: internals/helpers/apperror.go
package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AppError: error domain yang bisa dipetakan ke response client.
// Code = kode mesin yang stabil (kontrak dengan frontend), Message = pesan manusia.
type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

// JsonAppError memetakan error dari service ke response JSON konsisten.
// *AppError → status + error_code domain; error lain → 500 generik
// (detail internal tidak pernah bocor ke client, hanya ke log).
func JsonAppError(c *fiber.Ctx, err error) error {
	var ae *AppError
	if errors.As(err, &ae) {
		return c.Status(ae.Status).JSON(fiber.Map{
			"code":       ae.Status,
			"status":     "error",
			"error_code": ae.Code,
			"message":    ae.Message,
		})
	}
	log.Printf("[ERROR] internal: %v", err)
	return Error(c, fiber.StatusInternalServerError, "Terjadi kesalahan internal")
}
