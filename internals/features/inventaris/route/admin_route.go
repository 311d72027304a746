package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/inventaris/controller"
)

func InventarisAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInventarisController(db)

	r := api.Group("/inventaris")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
