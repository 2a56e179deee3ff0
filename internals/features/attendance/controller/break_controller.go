// file: internals/features/attendance/controller/break_controller.go
package controller

import (
	"errors"

	attendanceDTO "absensiku_backend/internals/features/attendance/dto"
	attendanceModel "absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/features/attendance/service"
	helper "absensiku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BreakTimeController struct {
	DB         *gorm.DB
	Service    *service.BreakService
	Attendance *service.AttendanceService
}

func NewBreakTimeController(db *gorm.DB) *BreakTimeController {
	return &BreakTimeController{
		DB:         db,
		Service:    service.NewBreakService(db),
		Attendance: service.NewAttendanceService(db),
	}
}

/* ===============================
   START / END
=============================== */

// POST /api/u/breaks/start
func (ctrl *BreakTimeController) Start(c *fiber.Ctx) error {
	var req attendanceDTO.BreakStartRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	bt, err := ctrl.Service.StartBreak(c.Context(), req.AttendanceID, req.Time)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Istirahat dimulai",
		attendanceDTO.FromBreakTimeModel(*bt))
}

// POST /api/u/breaks/end
func (ctrl *BreakTimeController) End(c *fiber.Ctx) error {
	var req attendanceDTO.BreakEndRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	bt, err := ctrl.Service.EndBreak(c.Context(), req.BreakID, req.Time)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.Success(c, "Istirahat selesai", attendanceDTO.FromBreakTimeModel(*bt))
}

/* ===============================
   READ
=============================== */

// GET /api/u/breaks/attendance/:attendance_id
func (ctrl *BreakTimeController) ListByAttendance(c *fiber.Ctx) error {
	attendanceID, err := c.ParamsInt("attendance_id")
	if err != nil || attendanceID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var att attendanceModel.AttendanceModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&att, "attendance_id = ?", attendanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonAppError(c, service.ErrAttendanceNotFound)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}

	var rows []attendanceModel.BreakTimeModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("break_time_attendance_id = ?", attendanceID).
		Order("break_time_start ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar istirahat")
	}

	items := make([]attendanceDTO.BreakTimeResponse, 0, len(rows))
	for _, m := range rows {
		items = append(items, attendanceDTO.FromBreakTimeModel(m))
	}
	return helper.Success(c, "OK", items)
}

/* ===============================
   UPDATE (partial) + DELETE
=============================== */

// PUT /api/u/breaks/:id
// Edit manual jam istirahat. Durasi dan total kehadiran induk
// dihitung ulang dalam transaksi yang sama.
func (ctrl *BreakTimeController) Update(c *fiber.Ctx) error {
	breakID, err := c.ParamsInt("id")
	if err != nil || breakID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req attendanceDTO.UpdateBreakTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var out attendanceModel.BreakTimeModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var bt attendanceModel.BreakTimeModel
		if err := tx.First(&bt, "break_time_id = ?", breakID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrBreakNotFound
			}
			return err
		}

		if req.BreakTimeStart != nil {
			bt.BreakTimeStart = *req.BreakTimeStart
		}
		if req.BreakTimeEnd != nil {
			bt.BreakTimeEnd = req.BreakTimeEnd
		}

		ctrl.Service.CalculateDuration(tx, &bt)
		if err := tx.Save(&bt).Error; err != nil {
			return err
		}

		var att attendanceModel.AttendanceModel
		if err := tx.First(&att, "attendance_id = ?", bt.BreakTimeAttendanceID).Error; err != nil {
			return err
		}
		ctrl.Attendance.CalculateTotals(tx, &att)
		if err := tx.Save(&att).Error; err != nil {
			return err
		}

		out = bt
		return nil
	})
	if txErr != nil {
		return helper.JsonAppError(c, txErr)
	}

	return helper.JsonUpdated(c, "Istirahat berhasil diperbarui", attendanceDTO.FromBreakTimeModel(out))
}

// DELETE /api/u/breaks/:id
func (ctrl *BreakTimeController) Delete(c *fiber.Ctx) error {
	breakID, err := c.ParamsInt("id")
	if err != nil || breakID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var deleted attendanceModel.BreakTimeModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, "break_time_id = ?", breakID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrBreakNotFound
			}
			return err
		}
		if err := tx.Delete(&attendanceModel.BreakTimeModel{},
			"break_time_id = ?", breakID).Error; err != nil {
			return err
		}

		var att attendanceModel.AttendanceModel
		if err := tx.First(&att, "attendance_id = ?", deleted.BreakTimeAttendanceID).Error; err != nil {
			return err
		}
		ctrl.Attendance.CalculateTotals(tx, &att)
		return tx.Save(&att).Error
	})
	if txErr != nil {
		return helper.JsonAppError(c, txErr)
	}

	return helper.JsonDeleted(c, "Istirahat berhasil dihapus", attendanceDTO.FromBreakTimeModel(deleted))
}
