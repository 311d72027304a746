package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/finance/donatur/dto"
	"simasjid_backend/internals/features/finance/donatur/model"
	pemasukanService "simasjid_backend/internals/features/finance/pemasukan/service"
	helper "simasjid_backend/internals/helpers"
)

type DonaturController struct {
	DB       *gorm.DB
	validate *validator.Validate
	sync     *pemasukanService.PemasukanSyncService
}

func NewDonaturController(db *gorm.DB) *DonaturController {
	return &DonaturController{
		DB:       db,
		validate: validator.New(),
		sync:     pemasukanService.NewPemasukanSyncService(db),
	}
}

func tahunScope(tahun int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("donatur_tahun = ?", tahun)
	}
}

// 🟢 GET /api/a/donatur?tahun=2025
func (ctrl *DonaturController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Donatur{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("donatur_tahun = ?", tahun)
	}

	var donaturs []model.Donatur
	if err := q.Order("donatur_tahun DESC, donatur_no ASC").Find(&donaturs).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donatur")
	}
	return helper.Success(c, "Data donatur berhasil diambil", donaturs)
}

// 🟢 GET /api/a/donatur/:id
func (ctrl *DonaturController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donatur tidak valid")
	}

	var donatur model.Donatur
	if err := ctrl.DB.First(&donatur, "donatur_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donatur tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donatur")
	}
	return helper.Success(c, "Data donatur berhasil diambil", donatur)
}

// 🟢 POST /api/a/donatur
func (ctrl *DonaturController) Create(c *fiber.Ctx) error {
	var req dto.CreateDonaturRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// nomor urut berikutnya untuk tahun ini
	no, err := helper.NextNo(ctrl.DB, "donaturs", "donatur_no", tahunScope(req.Tahun))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donatur")
	}

	donatur := req.ToModel(no)
	if err := ctrl.DB.Create(&donatur).Error; err != nil {
		log.Println("[ERROR] Gagal simpan donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan donatur")
	}

	// sinkronisasi buku besar; gagal sync tidak membatalkan create
	if err := ctrl.sync.SyncForDonatur(donatur.DonaturID); err != nil {
		log.Println("[SYNC] Gagal sinkron pemasukan donatur:", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Donatur berhasil dibuat", donatur)
}

// 🟢 PUT /api/a/donatur/:id
func (ctrl *DonaturController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donatur tidak valid")
	}

	var req dto.UpdateDonaturRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var donatur model.Donatur
	if err := ctrl.DB.First(&donatur, "donatur_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donatur tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donatur")
	}

	tahunLama := donatur.DonaturTahun
	pindahTahun := req.Apply(&donatur)
	if pindahTahun {
		no, err := helper.NextNo(ctrl.DB, "donaturs", "donatur_no", tahunScope(donatur.DonaturTahun))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui donatur")
		}
		donatur.DonaturNo = no
	}

	if err := ctrl.DB.Save(&donatur).Error; err != nil {
		log.Println("[ERROR] Gagal update donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui donatur")
	}

	if pindahTahun {
		if err := helper.RenumberNo(ctrl.DB, "donaturs", "donatur_id", "donatur_no", tahunScope(tahunLama)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor donatur:", err)
		}
	}

	if err := ctrl.sync.SyncForDonatur(donatur.DonaturID); err != nil {
		log.Println("[SYNC] Gagal sinkron pemasukan donatur:", err)
	}

	return helper.Success(c, "Donatur berhasil diperbarui", donatur)
}

// 🟢 DELETE /api/a/donatur/:id
// Hapus baris pemasukan miliknya dulu, lalu donatur, lalu nomor urut
// tahun yang sama ditata ulang supaya tetap 1..N.
func (ctrl *DonaturController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donatur tidak valid")
	}

	var donatur model.Donatur
	if err := ctrl.DB.First(&donatur, "donatur_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Donatur tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donatur")
	}

	if err := ctrl.sync.RemoveForDonatur(id); err != nil {
		log.Println("[ERROR] Gagal hapus pemasukan donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus donatur")
	}
	if err := ctrl.DB.Delete(&donatur).Error; err != nil {
		log.Println("[ERROR] Gagal hapus donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus donatur")
	}

	if err := helper.RenumberNo(ctrl.DB, "donaturs", "donatur_id", "donatur_no", tahunScope(donatur.DonaturTahun)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Donatur berhasil dihapus", fiber.Map{"donatur_id": id})
}

// 🟢 GET /api/a/donatur/total-tahunan?tahun=2025
func (ctrl *DonaturController) GetTotalTahunan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var donaturs []model.Donatur
	if err := ctrl.DB.Find(&donaturs, "donatur_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donatur")
	}

	resp := dto.TotalTahunanResponse{Tahun: tahun, JumlahRecord: len(donaturs)}
	for i := range donaturs {
		resp.TotalBulanan += donaturs[i].TotalBulanan()
		resp.TotalInfaq += donaturs[i].Infaq
	}
	resp.Total = resp.TotalBulanan + resp.TotalInfaq

	return helper.Success(c, "Total donatur tahunan berhasil dihitung", resp)
}

// 🟢 GET /api/a/donatur/bulanan?tahun=2025&bulan=3
func (ctrl *DonaturController) GetBulanan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	bulan := c.QueryInt("bulan")
	if tahun <= 0 || bulan < 1 || bulan > 12 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun/bulan tidak valid")
	}

	var donaturs []model.Donatur
	if err := ctrl.DB.Find(&donaturs, "donatur_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data donatur")
	}

	resp := dto.BulananResponse{Tahun: tahun, Bulan: bulan}
	for i := range donaturs {
		resp.Total += donaturs[i].Bulanan()[bulan]
	}

	return helper.Success(c, "Total donatur bulanan berhasil dihitung", resp)
}
