// file: internals/features/attendance/route/attendance_route.go
package route

import (
	attendanceCtrl "absensiku_backend/internals/features/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	// =====================
	// Attendance
	// =====================
	ctrl := attendanceCtrl.NewAttendanceController(db)

	group := r.Group("/attendance")
	group.Post("/clock-in", ctrl.ClockIn)
	group.Post("/clock-out", ctrl.ClockOut)
	group.Get("/today", ctrl.GetToday)
	group.Get("/calendar", ctrl.MonthlyCalendar) // ?year=&month=
	group.Get("/", ctrl.List)                    // ?year=&month=&page=&per_page=
	group.Put("/:id", ctrl.Update)
	group.Delete("/:id", ctrl.Delete)

	// =====================
	// Break Times
	// =====================
	bt := attendanceCtrl.NewBreakTimeController(db)

	btGroup := r.Group("/breaks")
	btGroup.Post("/start", bt.Start)
	btGroup.Post("/end", bt.End)
	btGroup.Get("/attendance/:attendance_id", bt.ListByAttendance)
	btGroup.Put("/:id", bt.Update)
	btGroup.Delete("/:id", bt.Delete)
}
