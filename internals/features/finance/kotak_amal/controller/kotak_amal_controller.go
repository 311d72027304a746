package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/finance/kotak_amal/dto"
	"simasjid_backend/internals/features/finance/kotak_amal/model"
	pemasukanService "simasjid_backend/internals/features/finance/pemasukan/service"
	helper "simasjid_backend/internals/helpers"
)

// KotakAmalController mengelola kotak amal luar (bulanan, per lokasi).
type KotakAmalController struct {
	DB       *gorm.DB
	validate *validator.Validate
	sync     *pemasukanService.PemasukanSyncService
}

func NewKotakAmalController(db *gorm.DB) *KotakAmalController {
	return &KotakAmalController{
		DB:       db,
		validate: validator.New(),
		sync:     pemasukanService.NewPemasukanSyncService(db),
	}
}

func kotakAmalTahunScope(tahun int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("kotak_amal_tahun = ?", tahun)
	}
}

// 🟢 GET /api/a/kotak-amal?tahun=2025
func (ctrl *KotakAmalController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.KotakAmal{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("kotak_amal_tahun = ?", tahun)
	}

	var rows []model.KotakAmal
	if err := q.Order("kotak_amal_tahun DESC, kotak_amal_no ASC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal")
	}
	return helper.Success(c, "Data kotak amal berhasil diambil", rows)
}

// 🟢 GET /api/a/kotak-amal/:id
func (ctrl *KotakAmalController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal tidak valid")
	}

	var row model.KotakAmal
	if err := ctrl.DB.First(&row, "kotak_amal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal")
	}
	return helper.Success(c, "Data kotak amal berhasil diambil", row)
}

// 🟢 POST /api/a/kotak-amal
func (ctrl *KotakAmalController) Create(c *fiber.Ctx) error {
	var req dto.CreateKotakAmalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	no, err := helper.NextNo(ctrl.DB, "kotak_amals", "kotak_amal_no", kotakAmalTahunScope(req.Tahun))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kotak amal")
	}

	row := req.ToModel(no)
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kotak amal")
	}

	if err := ctrl.sync.SyncForKotakAmal(row.KotakAmalID); err != nil {
		log.Println("[SYNC] Gagal sinkron pemasukan kotak amal:", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kotak amal berhasil dibuat", row)
}

// 🟢 PUT /api/a/kotak-amal/:id
func (ctrl *KotakAmalController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal tidak valid")
	}

	var req dto.UpdateKotakAmalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.KotakAmal
	if err := ctrl.DB.First(&row, "kotak_amal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal")
	}

	tahunLama := row.KotakAmalTahun
	pindahTahun := req.Apply(&row)
	if pindahTahun {
		no, err := helper.NextNo(ctrl.DB, "kotak_amals", "kotak_amal_no", kotakAmalTahunScope(row.KotakAmalTahun))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kotak amal")
		}
		row.KotakAmalNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kotak amal")
	}

	if pindahTahun {
		if err := helper.RenumberNo(ctrl.DB, "kotak_amals", "kotak_amal_id", "kotak_amal_no", kotakAmalTahunScope(tahunLama)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor kotak amal:", err)
		}
	}

	if err := ctrl.sync.SyncForKotakAmal(row.KotakAmalID); err != nil {
		log.Println("[SYNC] Gagal sinkron pemasukan kotak amal:", err)
	}

	return helper.Success(c, "Kotak amal berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/kotak-amal/:id
func (ctrl *KotakAmalController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal tidak valid")
	}

	var row model.KotakAmal
	if err := ctrl.DB.First(&row, "kotak_amal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal")
	}

	if err := ctrl.sync.RemoveForKotakAmal(id); err != nil {
		log.Println("[ERROR] Gagal hapus pemasukan kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kotak amal")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kotak amal")
	}

	if err := helper.RenumberNo(ctrl.DB, "kotak_amals", "kotak_amal_id", "kotak_amal_no", kotakAmalTahunScope(row.KotakAmalTahun)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Kotak amal berhasil dihapus", fiber.Map{"kotak_amal_id": id})
}

// 🟢 GET /api/a/kotak-amal/total-tahunan?tahun=2025
func (ctrl *KotakAmalController) GetTotalTahunan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var rows []model.KotakAmal
	if err := ctrl.DB.Find(&rows, "kotak_amal_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal")
	}

	resp := dto.TotalTahunanResponse{Tahun: tahun, JumlahRecord: len(rows)}
	for i := range rows {
		resp.Total += rows[i].TotalSetahun()
	}
	return helper.Success(c, "Total kotak amal tahunan berhasil dihitung", resp)
}

// 🟢 GET /api/a/kotak-amal/bulanan?tahun=2025&bulan=3
func (ctrl *KotakAmalController) GetBulanan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	bulan := c.QueryInt("bulan")
	if tahun <= 0 || bulan < 1 || bulan > 12 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun/bulan tidak valid")
	}

	var rows []model.KotakAmal
	if err := ctrl.DB.Find(&rows, "kotak_amal_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal")
	}

	resp := dto.BulananResponse{Tahun: tahun, Bulan: bulan}
	for i := range rows {
		resp.Total += rows[i].Bulanan()[bulan]
	}
	return helper.Success(c, "Total kotak amal bulanan berhasil dihitung", resp)
}
