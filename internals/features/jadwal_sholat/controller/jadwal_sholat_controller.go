package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"simasjid_backend/internals/features/jadwal_sholat/service"
	helper "simasjid_backend/internals/helpers"
)

type JadwalSholatController struct {
	client *service.Client
}

func NewJadwalSholatController() *JadwalSholatController {
	return &JadwalSholatController{client: service.NewClient()}
}

// 🟢 GET /api/public/jadwal-sholat?kota=1301&tanggal=2025-09-01
// kota memakai kode kota API myquran; default Jakarta Pusat.
func (ctrl *JadwalSholatController) GetJadwal(c *fiber.Ctx) error {
	kota := c.Query("kota", "1301")

	tanggal := time.Now()
	if s := c.Query("tanggal"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		tanggal = parsed
	}

	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	jadwal, fallback := ctrl.client.Jadwal(ctx, kota, tanggal)
	return helper.Success(c, "Jadwal sholat berhasil diambil", fiber.Map{
		"jadwal":   jadwal,
		"fallback": fallback,
	})
}
