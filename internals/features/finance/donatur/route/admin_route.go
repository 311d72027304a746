package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	donaturController "simasjid_backend/internals/features/finance/donatur/controller"
	authMiddleware "simasjid_backend/internals/middlewares/auth"
)

// DonaturAdminRoutes mendaftarkan route CRUD + agregat donatur.
// Viewer boleh baca; tulis hanya admin & bendahara.
func DonaturAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := donaturController.NewDonaturController(db)
	tulis := authMiddleware.RequireRoles("keuangan", constants.RoleAdmin, constants.RoleBendahara)

	r := api.Group("/donatur")
	r.Get("/", ctrl.GetAll)
	r.Get("/total-tahunan", ctrl.GetTotalTahunan)
	r.Get("/bulanan", ctrl.GetBulanan)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", tulis, ctrl.Create)
	r.Put("/:id", tulis, ctrl.Update)
	r.Delete("/:id", tulis, ctrl.Delete)
}
