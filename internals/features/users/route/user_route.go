// file: internals/features/users/route/user_route.go
package route

import (
	userCtrl "absensiku_backend/internals/features/users/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes: endpoint publik (tanpa token).
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserController(db)
	r.Post("/login", ctrl.Login)
}

// UserRoutes: profil & administrasi pengguna (butuh token).
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserController(db)

	group := r.Group("/users")
	group.Get("/me", ctrl.GetMe)
	group.Put("/me", ctrl.UpdateMe)
	group.Put("/me/hourly-rate", ctrl.UpdateHourlyRate)
	group.Get("/", ctrl.List)
	group.Post("/", ctrl.Create)
}
