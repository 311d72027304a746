package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/organisasi/dto"
	"simasjid_backend/internals/features/organisasi/model"
	helper "simasjid_backend/internals/helpers"
)

type ProgramKerjaController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewProgramKerjaController(db *gorm.DB) *ProgramKerjaController {
	return &ProgramKerjaController{DB: db, validate: validator.New()}
}

// Nomor urut berjalan per tahun + bagian.
func programKerjaScope(tahun int, bagian string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("program_kerja_tahun = ? AND program_kerja_bagian = ?", tahun, bagian)
	}
}

// 🟢 GET /api/a/program-kerja?tahun=2025&bagian=Pendidikan
func (ctrl *ProgramKerjaController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.ProgramKerja{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("program_kerja_tahun = ?", tahun)
	}
	if bagian := c.Query("bagian"); bagian != "" {
		q = q.Where("program_kerja_bagian = ?", bagian)
	}

	var rows []model.ProgramKerja
	if err := q.Order("program_kerja_tahun DESC, program_kerja_bagian ASC, program_kerja_no ASC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil program kerja:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data program kerja")
	}
	return helper.Success(c, "Data program kerja berhasil diambil", rows)
}

// 🟢 GET /api/a/program-kerja/:id
func (ctrl *ProgramKerjaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID program kerja tidak valid")
	}

	var row model.ProgramKerja
	if err := ctrl.DB.First(&row, "program_kerja_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program kerja tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil program kerja:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data program kerja")
	}
	return helper.Success(c, "Data program kerja berhasil diambil", row)
}

// 🟢 POST /api/a/program-kerja
func (ctrl *ProgramKerjaController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramKerjaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	no, err := helper.NextNo(ctrl.DB, "program_kerjas", "program_kerja_no", programKerjaScope(req.Tahun, req.Bagian))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan program kerja")
	}

	row := model.ProgramKerja{
		ProgramKerjaNo:         no,
		ProgramKerjaNama:       req.Nama,
		ProgramKerjaBagian:     req.Bagian,
		ProgramKerjaTahun:      req.Tahun,
		ProgramKerjaKeterangan: req.Keterangan,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan program kerja:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan program kerja")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program kerja berhasil dibuat", row)
}

// 🟢 PUT /api/a/program-kerja/:id
func (ctrl *ProgramKerjaController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID program kerja tidak valid")
	}

	var req dto.UpdateProgramKerjaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.ProgramKerja
	if err := ctrl.DB.First(&row, "program_kerja_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program kerja tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil program kerja:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data program kerja")
	}

	oldTahun, oldBagian := row.ProgramKerjaTahun, row.ProgramKerjaBagian

	if req.Nama != nil {
		row.ProgramKerjaNama = *req.Nama
	}
	if req.Bagian != nil {
		row.ProgramKerjaBagian = *req.Bagian
	}
	if req.Tahun != nil {
		row.ProgramKerjaTahun = *req.Tahun
	}
	if req.Keterangan != nil {
		row.ProgramKerjaKeterangan = *req.Keterangan
	}

	// Pindah scope berarti ambil nomor baru di scope tujuan dan rapatkan scope asal.
	movedScope := row.ProgramKerjaTahun != oldTahun || row.ProgramKerjaBagian != oldBagian
	if movedScope {
		no, err := helper.NextNo(ctrl.DB, "program_kerjas", "program_kerja_no", programKerjaScope(row.ProgramKerjaTahun, row.ProgramKerjaBagian))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui program kerja")
		}
		row.ProgramKerjaNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update program kerja:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui program kerja")
	}

	if movedScope {
		if err := helper.RenumberNo(ctrl.DB, "program_kerjas", "program_kerja_id", "program_kerja_no", programKerjaScope(oldTahun, oldBagian)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor program kerja:", err)
		}
	}

	return helper.Success(c, "Program kerja berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/program-kerja/:id
func (ctrl *ProgramKerjaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID program kerja tidak valid")
	}

	var row model.ProgramKerja
	if err := ctrl.DB.First(&row, "program_kerja_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Program kerja tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil program kerja:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data program kerja")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus program kerja:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus program kerja")
	}

	if err := helper.RenumberNo(ctrl.DB, "program_kerjas", "program_kerja_id", "program_kerja_no", programKerjaScope(row.ProgramKerjaTahun, row.ProgramKerjaBagian)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor program kerja:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Program kerja berhasil dihapus", fiber.Map{"program_kerja_id": id})
}
