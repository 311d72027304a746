package controller

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/export/service"
	donasiModel "simasjid_backend/internals/features/finance/donasi_khusus/model"
	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
	kotakAmalModel "simasjid_backend/internals/features/finance/kotak_amal/model"
	pemasukanModel "simasjid_backend/internals/features/finance/pemasukan/model"
	pengeluaranModel "simasjid_backend/internals/features/finance/pengeluaran/model"
	integrasiService "simasjid_backend/internals/features/integrasi/service"
	laporanDto "simasjid_backend/internals/features/laporan/dto"
	laporanService "simasjid_backend/internals/features/laporan/service"
	helper "simasjid_backend/internals/helpers"
	"simasjid_backend/internals/helpers/oss"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

func kirimCSV(c *fiber.Ctx, namaFile, isi string) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, namaFile))
	return c.SendString(isi)
}

// kirimXLSX mengirim workbook sebagai unduhan, atau menyimpannya ke
// bucket OSS dulu kalau ?simpan=oss (respons memuat URL publiknya).
func kirimXLSX(c *fiber.Ctx, namaFile string, isi []byte) error {
	if c.Query("simpan") == "oss" {
		svc, err := oss.GetBlobService()
		if err != nil {
			log.Println("[ERROR] Blob service tidak tersedia:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan berkas export")
		}
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		url, err := svc.UploadBytes(ctx, "laporan", namaFile, isi, xlsxContentType)
		if err != nil {
			log.Println("[ERROR] Gagal simpan export ke OSS:", err)
			return helper.Error(c, fiber.StatusBadGateway, "Gagal menyimpan berkas export")
		}
		return helper.Success(c, "Berkas export tersimpan", fiber.Map{"url": url})
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, namaFile))
	return c.Send(isi)
}

// 🟢 GET /api/a/export/donatur?tahun=2025&format=csv|xlsx
func (ctrl *ExportController) ExportDonatur(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun", time.Now().Year())

	var donaturs []donaturModel.Donatur
	if err := ctrl.DB.Order("donatur_no ASC").Find(&donaturs, "donatur_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donatur untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}

	if c.Query("format", "csv") == "xlsx" {
		f, err := service.BuildDonaturXLSX(donaturs, tahun)
		if err != nil {
			log.Println("[ERROR] Gagal susun workbook donatur:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			log.Println("[ERROR] Gagal tulis workbook donatur:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
		}
		return kirimXLSX(c, fmt.Sprintf("donatur_%d.xlsx", tahun), buf.Bytes())
	}

	return kirimCSV(c, fmt.Sprintf("donatur_%d.csv", tahun), service.BuildDonaturCSV(donaturs, tahun))
}

// 🟢 GET /api/a/export/rekap?tahun=2025
func (ctrl *ExportController) ExportRekap(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun", time.Now().Year())

	var pemasukan []pemasukanModel.Pemasukan
	if err := ctrl.DB.Find(&pemasukan, "pemasukan_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil pemasukan untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}
	var jumat []kotakAmalModel.KotakAmalJumat
	if err := ctrl.DB.Find(&jumat, "kotak_amal_jumat_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal jumat untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}

	rekap := laporanDto.RekapTahunanResponse{Tahun: tahun}
	rekap.Pemasukan = laporanService.BuildRekapPemasukan(pemasukan, jumat, tahun)
	for _, r := range rekap.Pemasukan {
		rekap.TotalPemasukan += r.Total
	}
	if err := ctrl.DB.Model(&pengeluaranModel.Pengeluaran{}).
		Select("pengeluaran_kategori AS kategori, COALESCE(SUM(pengeluaran_jumlah), 0) AS total").
		Where("pengeluaran_tahun = ?", tahun).
		Group("pengeluaran_kategori").
		Order("total DESC").
		Scan(&rekap.Pengeluaran).Error; err != nil {
		log.Println("[ERROR] Gagal rekap pengeluaran untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}
	for _, r := range rekap.Pengeluaran {
		rekap.TotalPengeluaran += r.Total
	}
	rekap.Saldo = rekap.TotalPemasukan - rekap.TotalPengeluaran

	return kirimCSV(c, fmt.Sprintf("rekap_%d.csv", tahun), service.BuildRekapCSV(rekap))
}

// 🟢 GET /api/a/export/integrasi?tahun=2025&format=csv|xlsx
func (ctrl *ExportController) ExportIntegrasi(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun", time.Now().Year())

	var donaturs []donaturModel.Donatur
	if err := ctrl.DB.Find(&donaturs, "donatur_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donatur untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}
	var kotakAmals []kotakAmalModel.KotakAmal
	if err := ctrl.DB.Find(&kotakAmals, "kotak_amal_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}
	var masjid []kotakAmalModel.KotakAmalMasjid
	if err := ctrl.DB.Find(&masjid, "kotak_amal_masjid_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal masjid untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}
	var jumat []kotakAmalModel.KotakAmalJumat
	if err := ctrl.DB.Find(&jumat, "kotak_amal_jumat_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal jumat untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}
	var donasi []donasiModel.DonasiKhusus
	if err := ctrl.DB.Find(&donasi, "donasi_khusus_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donasi khusus untuk export:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
	}

	unified := integrasiService.Merge(donaturs, kotakAmals, masjid, jumat, donasi, tahun)

	if c.Query("format", "csv") == "xlsx" {
		f, err := service.BuildIntegrasiXLSX(unified, tahun)
		if err != nil {
			log.Println("[ERROR] Gagal susun workbook integrasi:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
		}
		buf, err := f.WriteToBuffer()
		if err != nil {
			log.Println("[ERROR] Gagal tulis workbook integrasi:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun berkas export")
		}
		return kirimXLSX(c, fmt.Sprintf("integrasi_%d.xlsx", tahun), buf.Bytes())
	}

	return kirimCSV(c, fmt.Sprintf("integrasi_%d.csv", tahun), service.BuildIntegrasiCSV(unified, tahun))
}
