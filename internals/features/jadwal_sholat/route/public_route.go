package route

import (
	"github.com/gofiber/fiber/v2"

	"simasjid_backend/internals/features/jadwal_sholat/controller"
)

func JadwalSholatPublicRoutes(api fiber.Router) {
	ctrl := controller.NewJadwalSholatController()
	api.Get("/jadwal-sholat", ctrl.GetJadwal)
}
