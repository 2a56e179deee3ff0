// file: internals/features/reports/route/report_route.go
package route

import (
	reportCtrl "absensiku_backend/internals/features/reports/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReportRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := reportCtrl.NewReportController(db)

	group := r.Group("/reports")
	group.Get("/monthly", ctrl.Monthly) // ?year=&month=
	group.Get("/yearly", ctrl.Yearly)   // ?year=
}
