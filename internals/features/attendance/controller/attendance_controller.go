// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	attendanceDTO "absensiku_backend/internals/features/attendance/dto"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Service: service.NewAttendanceService(db),
	}
}

/* ===============================
   CLOCK IN / CLOCK OUT
=============================== */

// POST /api/u/attendance/clock-in
func (ctrl *AttendanceController) ClockIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.ClockInRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	att, err := ctrl.Service.ClockIn(c.Context(), userID, req.Time)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.Success(c, "Clock-in berhasil", attendanceDTO.FromAttendanceModel(*att))
}

// POST /api/u/attendance/clock-out
func (ctrl *AttendanceController) ClockOut(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.ClockOutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	att, err := ctrl.Service.ClockOut(c.Context(), userID, req.Time)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.Success(c, "Clock-out berhasil", attendanceDTO.FromAttendanceModel(*att))
}

/* ===============================
   READ
=============================== */

// GET /api/u/attendance/today
func (ctrl *AttendanceController) GetToday(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var att attendanceModel.AttendanceModel
	err = ctrl.DB.WithContext(c.Context()).
		Preload("BreakTimes").
		First(&att, "attendance_user_id = ? AND attendance_date = ?",
			userID, datatypes.Date(dbtime.Today())).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Belum ada catatan hari ini — bukan error.
			return helper.Success(c, "Belum ada kehadiran hari ini", nil)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran hari ini")
	}

	return helper.Success(c, "OK", attendanceDTO.FromAttendanceModelWithBreaks(att))
}

// GET /api/u/attendance?year=&month=&page=&per_page=
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if month < 0 || month > 12 {
		return helper.Error(c, fiber.StatusBadRequest, "Bulan tidak valid")
	}
	paging := helper.ResolvePaging(c, 31, 100)

	q := ctrl.DB.WithContext(c.Context()).
		Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_user_id = ?", userID)
	if year > 0 && month > 0 {
		first, next := dbtime.MonthRange(year, month)
		q = q.Where("attendance_date >= ? AND attendance_date < ?",
			datatypes.Date(first), datatypes.Date(next))
	} else if year > 0 {
		first, next := dbtime.YearRange(year)
		q = q.Where("attendance_date >= ? AND attendance_date < ?",
			datatypes.Date(first), datatypes.Date(next))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []attendanceModel.AttendanceModel
	if err := q.Preload("BreakTimes").
		Order("attendance_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kehadiran")
	}

	items := make([]attendanceDTO.AttendanceWithBreaksResponse, 0, len(rows))
	for _, m := range rows {
		items = append(items, attendanceDTO.FromAttendanceModelWithBreaks(m))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, paging, len(items)),
	})
}

/* ===============================
   UPDATE (partial) + DELETE
=============================== */

// PUT /api/u/attendance/:id
// Edit manual jam masuk/pulang dan (opsional) seluruh set istirahat.
// Semua langkah dalam satu transaksi; total dihitung ulang di akhir.
func (ctrl *AttendanceController) Update(c *fiber.Ctx) error {
	attendanceID, err := c.ParamsInt("id")
	if err != nil || attendanceID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req attendanceDTO.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var out attendanceModel.AttendanceModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var att attendanceModel.AttendanceModel
		if err := tx.First(&att, "attendance_id = ?", attendanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrAttendanceNotFound
			}
			return err
		}

		if req.AttendanceClockIn != nil {
			att.AttendanceClockIn = req.AttendanceClockIn
		}
		if req.AttendanceClockOut != nil {
			att.AttendanceClockOut = req.AttendanceClockOut
		}
		if req.BreakTimes != nil {
			if err := ctrl.Service.UpdateBreakTimes(tx, &att,
				attendanceDTO.ToServicePatches(*req.BreakTimes)); err != nil {
				return err
			}
		}

		ctrl.Service.CalculateTotals(tx, &att)
		if err := tx.Save(&att).Error; err != nil {
			return err
		}

		return tx.Preload("BreakTimes").First(&out, "attendance_id = ?", att.AttendanceID).Error
	})
	if txErr != nil {
		return helper.JsonAppError(c, txErr)
	}

	return helper.JsonUpdated(c, "Kehadiran berhasil diperbarui", attendanceDTO.FromAttendanceModelWithBreaks(out))
}

// DELETE /api/u/attendance/:id
// Hapus kehadiran beserta seluruh istirahatnya (satu transaksi).
func (ctrl *AttendanceController) Delete(c *fiber.Ctx) error {
	attendanceID, err := c.ParamsInt("id")
	if err != nil || attendanceID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var deleted attendanceModel.AttendanceModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "attendance_id = ?", attendanceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrAttendanceNotFound
			}
			return err
		}
		if err := tx.Delete(&attendanceModel.BreakTimeModel{},
			"break_time_attendance_id = ?", attendanceID).Error; err != nil {
			return err
		}
		return tx.Delete(&attendanceModel.AttendanceModel{},
			"attendance_id = ?", attendanceID).Error
	})
	if txErr != nil {
		return helper.JsonAppError(c, txErr)
	}

	return helper.JsonDeleted(c, "Kehadiran berhasil dihapus", attendanceDTO.FromAttendanceModel(deleted))
}

/* ===============================
   KALENDER BULANAN
=============================== */

// GET /api/u/attendance/calendar?year=&month=
func (ctrl *AttendanceController) MonthlyCalendar(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	if year <= 0 || month < 1 || month > 12 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter year/month tidak valid")
	}

	sum, err := ctrl.Service.GetMonthlyCalendarSummary(c.Context(), userID, year, month)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.Success(c, "OK", attendanceDTO.FromCalendarSummary(*sum))
}
