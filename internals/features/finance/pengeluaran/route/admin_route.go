package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	"simasjid_backend/internals/features/finance/pengeluaran/controller"
	authMiddleware "simasjid_backend/internals/middlewares/auth"
)

func PengeluaranAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPengeluaranController(db)
	tulis := authMiddleware.RequireRoles("keuangan", constants.RoleAdmin, constants.RoleBendahara)

	r := api.Group("/pengeluaran")
	r.Get("/", ctrl.GetAll)
	r.Get("/total-tahunan", ctrl.GetTotalTahunan)
	r.Get("/rekap-kategori", ctrl.GetRekapKategori)
	r.Get("/total-bulanan", ctrl.GetTotalBulanan)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", tulis, ctrl.Create)
	r.Put("/:id", tulis, ctrl.Update)
	r.Delete("/:id", tulis, ctrl.Delete)
}
