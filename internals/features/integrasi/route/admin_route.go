package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	"simasjid_backend/internals/features/integrasi/controller"
	authMiddleware "simasjid_backend/internals/middlewares/auth"
)

func IntegrasiAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewIntegrasiController(db)
	tulis := authMiddleware.RequireRoles("keuangan", constants.RoleAdmin, constants.RoleBendahara)

	r := api.Group("/integrasi")
	r.Get("/", ctrl.GetUnified)
	r.Put("/", tulis, ctrl.ApplyEdit)
}
