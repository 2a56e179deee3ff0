// file: internals/route/index.go
package routes

import (
	"log"

	attendanceRoute "absensiku_backend/internals/features/attendance/route"
	reportRoute "absensiku_backend/internals/features/reports/route"
	userRoute "absensiku_backend/internals/features/users/route"
	authMw "absensiku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app.Group("/api"), db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMw.AuthMiddleware())

	userRoute.UserRoutes(private, db)
	attendanceRoute.AttendanceRoutes(private, db)
	reportRoute.ReportRoutes(private, db)
}
