package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	kotakAmalController "simasjid_backend/internals/features/finance/kotak_amal/controller"
	authMiddleware "simasjid_backend/internals/middlewares/auth"
)

// KotakAmalAdminRoutes mendaftarkan route ketiga varian kotak amal.
// Viewer boleh baca; tulis hanya admin & bendahara.
func KotakAmalAdminRoutes(api fiber.Router, db *gorm.DB) {
	tulis := authMiddleware.RequireRoles("keuangan", constants.RoleAdmin, constants.RoleBendahara)

	luar := kotakAmalController.NewKotakAmalController(db)
	r := api.Group("/kotak-amal")
	r.Get("/", luar.GetAll)
	r.Get("/total-tahunan", luar.GetTotalTahunan)
	r.Get("/bulanan", luar.GetBulanan)
	r.Get("/:id", luar.GetByID)
	r.Post("/", tulis, luar.Create)
	r.Put("/:id", tulis, luar.Update)
	r.Delete("/:id", tulis, luar.Delete)

	masjid := kotakAmalController.NewKotakAmalMasjidController(db)
	m := api.Group("/kotak-amal-masjid")
	m.Get("/", masjid.GetAll)
	m.Get("/total-tahunan", masjid.GetTotalTahunan)
	m.Get("/:id", masjid.GetByID)
	m.Post("/", tulis, masjid.Create)
	m.Put("/:id", tulis, masjid.Update)
	m.Delete("/:id", tulis, masjid.Delete)

	jumat := kotakAmalController.NewKotakAmalJumatController(db)
	j := api.Group("/kotak-amal-jumat")
	j.Get("/", jumat.GetAll)
	j.Get("/total-tahunan", jumat.GetTotalTahunan)
	j.Get("/:id", jumat.GetByID)
	j.Post("/", tulis, jumat.Create)
	j.Put("/:id", tulis, jumat.Update)
	j.Delete("/:id", tulis, jumat.Delete)
}
