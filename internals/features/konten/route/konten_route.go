package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/konten/controller"
)

func KontenAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKontenController(db)

	r := api.Group("/konten")
	r.Get("/", ctrl.GetAll)
	r.Get("/:id", ctrl.GetByID)
	r.Post("/", ctrl.Create)
	r.Put("/:id", ctrl.Update)
	r.Patch("/:id/status", ctrl.UpdateStatus)
	r.Delete("/:id", ctrl.Delete)
}

func KontenPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKontenController(db)

	r := api.Group("/konten")
	r.Get("/", ctrl.GetPublished)
	r.Get("/slug/:slug", ctrl.GetBySlug)
	r.Post("/:id/dilihat", ctrl.IncrementDilihat)
}
