package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/finance/pemasukan/model"
	"simasjid_backend/internals/features/finance/pemasukan/service"
	helper "simasjid_backend/internals/helpers"
)

type PemasukanController struct {
	DB   *gorm.DB
	sync *service.PemasukanSyncService
}

func NewPemasukanController(db *gorm.DB) *PemasukanController {
	return &PemasukanController{
		DB:   db,
		sync: service.NewPemasukanSyncService(db),
	}
}

// 🟢 GET /api/a/pemasukan?tahun=2025&bulan=6&sumber=Donatur&page=1&per_page=50
func (ctrl *PemasukanController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Pemasukan{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("pemasukan_tahun = ?", tahun)
	}
	if bulan := c.QueryInt("bulan", -1); bulan >= 0 {
		q = q.Where("pemasukan_bulan = ?", bulan)
	}
	if sumber := c.Query("sumber"); sumber != "" {
		q = q.Where("pemasukan_sumber = ?", sumber)
	}

	p := helper.ParsePaginationWith(c, "tanggal", "desc", helper.AdminOpts)
	orderClause, err := p.SafeOrderClause(map[string]string{
		"tanggal": "pemasukan_tanggal",
		"jumlah":  "pemasukan_jumlah",
		"sumber":  "pemasukan_sumber",
	}, "tanggal")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Kolom urut tidak dikenal")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung pemasukan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pemasukan")
	}

	var rows []model.Pemasukan
	if err := q.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil pemasukan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pemasukan")
	}
	return helper.Success(c, "Data pemasukan berhasil diambil", fiber.Map{
		"rows":       rows,
		"pagination": helper.BuildPaginationMeta(total, p),
	})
}

// 🟢 GET /api/a/pemasukan/total?tahun=2025
func (ctrl *PemasukanController) GetTotal(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	type totalRow struct {
		Sumber string `json:"sumber"`
		Total  int64  `json:"total"`
	}
	var perSumber []totalRow
	if err := ctrl.DB.Model(&model.Pemasukan{}).
		Select("pemasukan_sumber AS sumber, COALESCE(SUM(pemasukan_jumlah), 0) AS total").
		Where("pemasukan_tahun = ?", tahun).
		Group("pemasukan_sumber").
		Order("pemasukan_sumber ASC").
		Scan(&perSumber).Error; err != nil {
		log.Println("[ERROR] Gagal hitung total pemasukan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung total pemasukan")
	}

	var total int64
	for _, r := range perSumber {
		total += r.Total
	}
	return helper.Success(c, "Total pemasukan berhasil dihitung", fiber.Map{
		"tahun":      tahun,
		"total":      total,
		"per_sumber": perSumber,
	})
}

// 🟢 POST /api/a/pemasukan/sync — bangun ulang seluruh buku besar dari 4 sumber.
func (ctrl *PemasukanController) SyncAll(c *fiber.Ctx) error {
	count, err := ctrl.sync.SyncAll()
	if err != nil {
		log.Println("[ERROR] Gagal sinkron ulang pemasukan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyinkronkan ulang pemasukan")
	}
	return helper.Success(c, "Sinkronisasi pemasukan selesai", fiber.Map{"jumlah_baris": count})
}
