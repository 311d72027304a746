package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	"simasjid_backend/internals/features/finance/pengeluaran/dto"
	"simasjid_backend/internals/features/finance/pengeluaran/model"
	helper "simasjid_backend/internals/helpers"
)

type PengeluaranController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewPengeluaranController(db *gorm.DB) *PengeluaranController {
	return &PengeluaranController{DB: db, validate: validator.New()}
}

func pengeluaranTahunScope(tahun int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("pengeluaran_tahun = ?", tahun)
	}
}

// 🟢 GET /api/a/pengeluaran?tahun=2025&kategori=Operasional
func (ctrl *PengeluaranController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Pengeluaran{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("pengeluaran_tahun = ?", tahun)
	}
	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("pengeluaran_kategori = ?", kategori)
	}

	var rows []model.Pengeluaran
	if err := q.Order("pengeluaran_tanggal DESC, pengeluaran_no DESC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}
	return helper.Success(c, "Data pengeluaran berhasil diambil", rows)
}

// 🟢 GET /api/a/pengeluaran/:id
func (ctrl *PengeluaranController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengeluaran tidak valid")
	}

	var row model.Pengeluaran
	if err := ctrl.DB.First(&row, "pengeluaran_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}
	return helper.Success(c, "Data pengeluaran berhasil diambil", row)
}

// 🟢 POST /api/a/pengeluaran
func (ctrl *PengeluaranController) Create(c *fiber.Ctx) error {
	var req dto.CreatePengeluaranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tanggal, err := req.ParseTanggal()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	no, err := helper.NextNo(ctrl.DB, "pengeluarans", "pengeluaran_no", pengeluaranTahunScope(tanggal.Year()))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}

	row := model.Pengeluaran{
		PengeluaranNo:         no,
		PengeluaranNama:       req.Nama,
		PengeluaranTanggal:    tanggal,
		PengeluaranTahun:      tanggal.Year(),
		PengeluaranBulan:      int(tanggal.Month()),
		PengeluaranJumlah:     req.Jumlah,
		PengeluaranKategori:   req.Kategori,
		PengeluaranKeterangan: req.Keterangan,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengeluaran")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengeluaran berhasil dibuat", row)
}

// 🟢 PUT /api/a/pengeluaran/:id
func (ctrl *PengeluaranController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengeluaran tidak valid")
	}

	var req dto.UpdatePengeluaranRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.Pengeluaran
	if err := ctrl.DB.First(&row, "pengeluaran_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}

	tahunLama := row.PengeluaranTahun
	if req.Nama != nil {
		row.PengeluaranNama = *req.Nama
	}
	if req.Tanggal != nil {
		tanggal, err := time.Parse("2006-01-02", *req.Tanggal)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		row.PengeluaranTanggal = tanggal
		row.PengeluaranTahun = tanggal.Year()
		row.PengeluaranBulan = int(tanggal.Month())
	}
	if req.Jumlah != nil {
		row.PengeluaranJumlah = *req.Jumlah
	}
	if req.Kategori != nil {
		row.PengeluaranKategori = *req.Kategori
	}
	if req.Keterangan != nil {
		row.PengeluaranKeterangan = *req.Keterangan
	}

	pindahTahun := row.PengeluaranTahun != tahunLama
	if pindahTahun {
		no, err := helper.NextNo(ctrl.DB, "pengeluarans", "pengeluaran_no", pengeluaranTahunScope(row.PengeluaranTahun))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pengeluaran")
		}
		row.PengeluaranNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pengeluaran")
	}

	if pindahTahun {
		if err := helper.RenumberNo(ctrl.DB, "pengeluarans", "pengeluaran_id", "pengeluaran_no", pengeluaranTahunScope(tahunLama)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor pengeluaran:", err)
		}
	}
	return helper.Success(c, "Pengeluaran berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/pengeluaran/:id
func (ctrl *PengeluaranController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengeluaran tidak valid")
	}

	var row model.Pengeluaran
	if err := ctrl.DB.First(&row, "pengeluaran_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pengeluaran")
	}

	if err := helper.RenumberNo(ctrl.DB, "pengeluarans", "pengeluaran_id", "pengeluaran_no", pengeluaranTahunScope(row.PengeluaranTahun)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Pengeluaran berhasil dihapus", fiber.Map{"pengeluaran_id": id})
}

// 🟢 GET /api/a/pengeluaran/total-tahunan?tahun=2025
func (ctrl *PengeluaranController) GetTotalTahunan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var total int64
	if err := ctrl.DB.Model(&model.Pengeluaran{}).
		Where("pengeluaran_tahun = ?", tahun).
		Select("COALESCE(SUM(pengeluaran_jumlah), 0)").
		Scan(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung total pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung total pengeluaran")
	}
	return helper.Success(c, "Total pengeluaran tahunan berhasil dihitung", fiber.Map{
		"tahun": tahun,
		"total": total,
	})
}

// 🟢 GET /api/a/pengeluaran/rekap-kategori?tahun=2025
func (ctrl *PengeluaranController) GetRekapKategori(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var rekap []dto.RekapKategoriResponse
	if err := ctrl.DB.Model(&model.Pengeluaran{}).
		Select("pengeluaran_kategori AS kategori, COUNT(*) AS jumlah, COALESCE(SUM(pengeluaran_jumlah), 0) AS total").
		Where("pengeluaran_tahun = ?", tahun).
		Group("pengeluaran_kategori").
		Order("total DESC").
		Scan(&rekap).Error; err != nil {
		log.Println("[ERROR] Gagal rekap kategori pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal merekap pengeluaran per kategori")
	}
	return helper.Success(c, "Rekap pengeluaran per kategori berhasil dihitung", rekap)
}

// 🟢 GET /api/a/pengeluaran/total-bulanan?tahun=2025
func (ctrl *PengeluaranController) GetTotalBulanan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var rows []model.Pengeluaran
	if err := ctrl.DB.Find(&rows, "pengeluaran_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengeluaran")
	}

	var perBulan [13]int64
	for i := range rows {
		if b := rows[i].PengeluaranBulan; b >= 1 && b <= 12 {
			perBulan[b] += rows[i].PengeluaranJumlah
		}
	}

	resp := make([]dto.TotalBulananResponse, 0, 12)
	for b := 1; b <= 12; b++ {
		resp = append(resp, dto.TotalBulananResponse{
			Bulan:     b,
			NamaBulan: constants.NamaBulan[b],
			Total:     perBulan[b],
		})
	}
	return helper.Success(c, "Total pengeluaran bulanan berhasil dihitung", resp)
}
