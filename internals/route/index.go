package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	exportRoute "simasjid_backend/internals/features/export/route"
	donasiKhususRoute "simasjid_backend/internals/features/finance/donasi_khusus/route"
	donaturRoute "simasjid_backend/internals/features/finance/donatur/route"
	kotakAmalRoute "simasjid_backend/internals/features/finance/kotak_amal/route"
	pemasukanRoute "simasjid_backend/internals/features/finance/pemasukan/route"
	pengeluaranRoute "simasjid_backend/internals/features/finance/pengeluaran/route"
	integrasiRoute "simasjid_backend/internals/features/integrasi/route"
	inventarisRoute "simasjid_backend/internals/features/inventaris/route"
	jadwalSholatRoute "simasjid_backend/internals/features/jadwal_sholat/route"
	kontenRoute "simasjid_backend/internals/features/konten/route"
	laporanRoute "simasjid_backend/internals/features/laporan/route"
	organisasiRoute "simasjid_backend/internals/features/organisasi/route"
	pengurusRoute "simasjid_backend/internals/features/pengurus/route"
	usersRoute "simasjid_backend/internals/features/users/route"
	authMiddleware "simasjid_backend/internals/middlewares/auth"
)

// SetupRoutes memasang tiga kelompok rute: /api/auth (terbuka, login
// dibatasi rate limiter), /api/public (tanpa token), dan /api/a (dijaga
// JWT) untuk seluruh operasi admin.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Menyiapkan rute /api/auth...")
	auth := app.Group("/api/auth")
	usersRoute.AuthRoutes(auth, db)

	log.Println("[INFO] Menyiapkan rute /api/public...")
	public := app.Group("/api/public")
	kontenRoute.KontenPublicRoutes(public, db)
	organisasiRoute.OrganisasiPublicRoutes(public, db)
	jadwalSholatRoute.JadwalSholatPublicRoutes(public)

	log.Println("[INFO] Menyiapkan rute /api/a...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	usersRoute.AuthAdminRoutes(admin, db)
	donaturRoute.DonaturAdminRoutes(admin, db)
	kotakAmalRoute.KotakAmalAdminRoutes(admin, db)
	donasiKhususRoute.DonasiKhususAdminRoutes(admin, db)
	pemasukanRoute.PemasukanAdminRoutes(admin, db)
	pengeluaranRoute.PengeluaranAdminRoutes(admin, db)
	inventarisRoute.InventarisAdminRoutes(admin, db)
	pengurusRoute.PengurusAdminRoutes(admin, db)
	kontenRoute.KontenAdminRoutes(admin, db)
	organisasiRoute.OrganisasiAdminRoutes(admin, db)
	laporanRoute.LaporanAdminRoutes(admin, db)
	integrasiRoute.IntegrasiAdminRoutes(admin, db)
	exportRoute.ExportAdminRoutes(admin, db)
}
