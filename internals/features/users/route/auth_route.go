package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/users/controller"
	"simasjid_backend/internals/middlewares"
	authMiddleware "simasjid_backend/internals/middlewares/auth"
)

// AuthRoutes dipasang di /api/auth tanpa guard token; login dibatasi
// rate limiter khusus.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/logout", ctrl.Logout)
}

// AuthAdminRoutes dipasang di bawah guard token (/api/a).
func AuthAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	r := api.Group("/auth")
	r.Get("/me", ctrl.Me)
	r.Post("/register", authMiddleware.AdminOnly("manajemen user"), ctrl.Register)
}
