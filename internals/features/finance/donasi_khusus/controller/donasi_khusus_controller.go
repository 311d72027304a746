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
	"simasjid_backend/internals/features/finance/donasi_khusus/dto"
	"simasjid_backend/internals/features/finance/donasi_khusus/model"
	pemasukanService "simasjid_backend/internals/features/finance/pemasukan/service"
	helper "simasjid_backend/internals/helpers"
)

type DonasiKhususController struct {
	DB       *gorm.DB
	validate *validator.Validate
	sync     *pemasukanService.PemasukanSyncService
}

func NewDonasiKhususController(db *gorm.DB) *DonasiKhususController {
	return &DonasiKhususController{
		DB:       db,
		validate: validator.New(),
		sync:     pemasukanService.NewPemasukanSyncService(db),
	}
}

func donasiTahunScope(tahun int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("donasi_khusus_tahun = ?", tahun)
	}
}

// 🟢 GET /api/a/donasi-khusus?tahun=2025
func (ctrl *DonasiKhususController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.DonasiKhusus{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("donasi_khusus_tahun = ?", tahun)
	}

	var rows []model.DonasiKhusus
	if err := q.Order("donasi_khusus_tanggal DESC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi khusus")
	}
	return helper.Success(c, "Data donasi khusus berhasil diambil", rows)
}

// 🟢 GET /api/a/donasi-khusus/:id
func (ctrl *DonasiKhususController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donasi khusus tidak valid")
	}

	var row model.DonasiKhusus
	if err := ctrl.DB.First(&row, "donasi_khusus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donasi khusus tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi khusus")
	}
	return helper.Success(c, "Data donasi khusus berhasil diambil", row)
}

// 🟢 POST /api/a/donasi-khusus
func (ctrl *DonasiKhususController) Create(c *fiber.Ctx) error {
	var req dto.CreateDonasiKhususRequest
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

	no, err := helper.NextNo(ctrl.DB, "donasi_khusus", "donasi_khusus_no", donasiTahunScope(tanggal.Year()))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi khusus")
	}

	row := model.DonasiKhusus{
		DonasiKhususNo:         no,
		DonasiKhususNama:       req.Nama,
		DonasiKhususTanggal:    tanggal,
		DonasiKhususTahun:      tanggal.Year(),
		DonasiKhususBulan:      int(tanggal.Month()),
		DonasiKhususJumlah:     req.Jumlah,
		DonasiKhususKeterangan: req.Keterangan,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donasi khusus")
	}

	if err := ctrl.sync.SyncForDonasiKhusus(row.DonasiKhususID); err != nil {
		log.Println("[SYNC] Gagal sinkron pemasukan donasi khusus:", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donasi khusus berhasil dibuat", row)
}

// 🟢 PUT /api/a/donasi-khusus/:id
func (ctrl *DonasiKhususController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donasi khusus tidak valid")
	}

	var req dto.UpdateDonasiKhususRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.DonasiKhusus
	if err := ctrl.DB.First(&row, "donasi_khusus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donasi khusus tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi khusus")
	}

	tahunLama := row.DonasiKhususTahun
	if req.Nama != nil {
		row.DonasiKhususNama = *req.Nama
	}
	if req.Tanggal != nil {
		tanggal, err := time.Parse("2006-01-02", *req.Tanggal)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		row.DonasiKhususTanggal = tanggal
		row.DonasiKhususTahun = tanggal.Year()
		row.DonasiKhususBulan = int(tanggal.Month())
	}
	if req.Jumlah != nil {
		row.DonasiKhususJumlah = *req.Jumlah
	}
	if req.Keterangan != nil {
		row.DonasiKhususKeterangan = *req.Keterangan
	}

	pindahTahun := row.DonasiKhususTahun != tahunLama
	if pindahTahun {
		no, err := helper.NextNo(ctrl.DB, "donasi_khusus", "donasi_khusus_no", donasiTahunScope(row.DonasiKhususTahun))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui donasi khusus")
		}
		row.DonasiKhususNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui donasi khusus")
	}

	if pindahTahun {
		if err := helper.RenumberNo(ctrl.DB, "donasi_khusus", "donasi_khusus_id", "donasi_khusus_no", donasiTahunScope(tahunLama)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor donasi khusus:", err)
		}
	}

	if err := ctrl.sync.SyncForDonasiKhusus(row.DonasiKhususID); err != nil {
		log.Println("[SYNC] Gagal sinkron pemasukan donasi khusus:", err)
	}

	return helper.Success(c, "Donasi khusus berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/donasi-khusus/:id
func (ctrl *DonasiKhususController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donasi khusus tidak valid")
	}

	var row model.DonasiKhusus
	if err := ctrl.DB.First(&row, "donasi_khusus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donasi khusus tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi khusus")
	}

	if err := ctrl.sync.RemoveForDonasiKhusus(id); err != nil {
		log.Println("[ERROR] Gagal hapus pemasukan donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus donasi khusus")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus donasi khusus")
	}

	if err := helper.RenumberNo(ctrl.DB, "donasi_khusus", "donasi_khusus_id", "donasi_khusus_no", donasiTahunScope(row.DonasiKhususTahun)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Donasi khusus berhasil dihapus", fiber.Map{"donasi_khusus_id": id})
}

// 🟢 GET /api/a/donasi-khusus/total-tahunan?tahun=2025
func (ctrl *DonasiKhususController) GetTotalTahunan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var rows []model.DonasiKhusus
	if err := ctrl.DB.Find(&rows, "donasi_khusus_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi khusus")
	}

	resp := dto.TotalTahunanResponse{Tahun: tahun, JumlahRecord: len(rows)}
	for i := range rows {
		resp.Total += rows[i].DonasiKhususJumlah
	}
	return helper.Success(c, "Total donasi khusus tahunan berhasil dihitung", resp)
}

// 🟢 GET /api/a/donasi-khusus/total-bulanan?tahun=2025
func (ctrl *DonasiKhususController) GetTotalBulanan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var rows []model.DonasiKhusus
	if err := ctrl.DB.Find(&rows, "donasi_khusus_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donasi khusus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donasi khusus")
	}

	var perBulan [13]int64
	for i := range rows {
		if b := rows[i].DonasiKhususBulan; b >= 1 && b <= 12 {
			perBulan[b] += rows[i].DonasiKhususJumlah
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
	return helper.Success(c, "Total donasi khusus bulanan berhasil dihitung", resp)
}
