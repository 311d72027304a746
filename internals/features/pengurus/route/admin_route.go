package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/pengurus/controller"
)

func PengurusAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPengurusController(db)

	r := api.Group("/pengurus")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}
