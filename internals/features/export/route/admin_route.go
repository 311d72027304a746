package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/export/controller"
)

func ExportAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExportController(db)

	r := api.Group("/export")
	r.Get("/donatur", ctrl.ExportDonatur)
	r.Get("/rekap", ctrl.ExportRekap)
	r.Get("/integrasi", ctrl.ExportIntegrasi)
}
