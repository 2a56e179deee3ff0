// file: internals/features/attendance/service/errors.go
package service

import (
	helper "absensiku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

// Taksonomi error domain mesin kehadiran. Kode mesin stabil (kontrak
// dengan frontend), pesan untuk manusia. Semuanya recoverable — controller
// memetakan ke response client via helper.JsonAppError.
var (
	ErrUserNotFound = helper.NewAppError(fiber.StatusNotFound,
		"USER_NOT_FOUND", "Pengguna tidak ditemukan")

	ErrNoClockInRecord = helper.NewAppError(fiber.StatusNotFound,
		"NO_CLOCK_IN_RECORD", "Belum ada catatan clock-in untuk hari ini")

	ErrNotClockedIn = helper.NewAppError(fiber.StatusBadRequest,
		"NOT_CLOCKED_IN", "Silakan clock-in terlebih dahulu")

	ErrAttendanceNotFound = helper.NewAppError(fiber.StatusNotFound,
		"ATTENDANCE_NOT_FOUND", "Catatan kehadiran tidak ditemukan")

	ErrAlreadyClockedOut = helper.NewAppError(fiber.StatusBadRequest,
		"ALREADY_CLOCKED_OUT", "Tidak bisa memulai istirahat setelah clock-out")

	ErrBreakNotEnded = helper.NewAppError(fiber.StatusConflict,
		"BREAK_NOT_ENDED", "Masih ada istirahat yang berjalan, akhiri dulu sebelum mulai yang baru")

	ErrBreakNotFound = helper.NewAppError(fiber.StatusNotFound,
		"BREAK_NOT_FOUND", "Catatan istirahat tidak ditemukan")

	ErrBreakAlreadyEnded = helper.NewAppError(fiber.StatusBadRequest,
		"BREAK_ALREADY_ENDED", "Istirahat ini sudah diakhiri")

	ErrInvalidEndTime = helper.NewAppError(fiber.StatusBadRequest,
		"INVALID_END_TIME", "Waktu selesai harus setelah waktu mulai")
)
