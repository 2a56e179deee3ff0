// file: internals/features/reports/controller/report_controller.go
package controller

import (
	reportDTO "absensiku_backend/internals/features/reports/dto"
	"absensiku_backend/internals/features/reports/service"
	helper "absensiku_backend/internals/helpers"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ReportController struct {
	DB      *gorm.DB
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		DB:      db,
		Service: service.NewReportService(db),
	}
}

// GET /api/u/reports/monthly?year=&month=
// Default: bulan berjalan di timezone organisasi.
func (ctrl *ReportController) Monthly(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	now := dbtime.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if year <= 0 || month < 1 || month > 12 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter year/month tidak valid")
	}

	rep, err := ctrl.Service.GetMonthlyReport(c.Context(), userID, year, month)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun laporan bulanan")
	}
	return helper.Success(c, "OK", reportDTO.FromMonthlyReport(*rep))
}

// GET /api/u/reports/yearly?year=
func (ctrl *ReportController) Yearly(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	year := c.QueryInt("year", dbtime.Now().Year())
	if year <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter year tidak valid")
	}

	rep, err := ctrl.Service.GetYearlyReport(c.Context(), userID, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun laporan tahunan")
	}
	return helper.Success(c, "OK", reportDTO.FromYearlyReport(*rep))
}
