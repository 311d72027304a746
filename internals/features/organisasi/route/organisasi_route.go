package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/organisasi/controller"
)

func OrganisasiAdminRoutes(api fiber.Router, db *gorm.DB) {
	pk := controller.NewProgramKerjaController(db)
	vm := controller.NewVisiMisiController(db)

	rpk := api.Group("/program-kerja")
	rpk.Get("/", pk.GetAll)
	rpk.Get("/:id", pk.GetByID)
	rpk.Post("/", pk.Create)
	rpk.Put("/:id", pk.Update)
	rpk.Delete("/:id", pk.Delete)

	rvm := api.Group("/visi-misi")
	rvm.Get("/", vm.GetAll)
	rvm.Post("/", vm.Create)
	rvm.Put("/:id", vm.Update)
	rvm.Delete("/:id", vm.Delete)
}

func OrganisasiPublicRoutes(api fiber.Router, db *gorm.DB) {
	vm := controller.NewVisiMisiController(db)
	api.Get("/visi-misi", vm.GetAll)
}
