package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	"simasjid_backend/internals/features/finance/pemasukan/controller"
	authMiddleware "simasjid_backend/internals/middlewares/auth"
)

func PemasukanAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPemasukanController(db)
	tulis := authMiddleware.RequireRoles("keuangan", constants.RoleAdmin, constants.RoleBendahara)

	r := api.Group("/pemasukan")
	r.Get("/", ctrl.GetAll)
	r.Get("/total", ctrl.GetTotal)
	r.Post("/sync", tulis, ctrl.SyncAll)
}
