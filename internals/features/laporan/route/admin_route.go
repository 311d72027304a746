package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/laporan/controller"
)

func LaporanAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLaporanController(db)

	r := api.Group("/laporan")
	r.Get("/dashboard", ctrl.GetDashboard)
	r.Get("/rekap-tahunan", ctrl.GetRekapTahunan)
	r.Get("/jumat", ctrl.GetLaporanJumat)

	api.Get("/stats", ctrl.GetStats)
}
