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

type VisiMisiController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewVisiMisiController(db *gorm.DB) *VisiMisiController {
	return &VisiMisiController{DB: db, validate: validator.New()}
}

func visiMisiScope(kategori string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("visi_misi_kategori = ?", kategori)
	}
}

// 🟢 GET /api/public/visi-misi?kategori=visi
func (ctrl *VisiMisiController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.VisiMisi{})
	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("visi_misi_kategori = ?", kategori)
	}

	var rows []model.VisiMisi
	if err := q.Order("visi_misi_kategori ASC, visi_misi_no ASC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil visi misi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data visi misi")
	}
	return helper.Success(c, "Data visi misi berhasil diambil", rows)
}

// 🟢 POST /api/a/visi-misi
func (ctrl *VisiMisiController) Create(c *fiber.Ctx) error {
	var req dto.CreateVisiMisiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	no, err := helper.NextNo(ctrl.DB, "visi_misis", "visi_misi_no", visiMisiScope(req.Kategori))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan visi misi")
	}

	row := model.VisiMisi{
		VisiMisiNo:       no,
		VisiMisiKategori: req.Kategori,
		VisiMisiIsi:      req.Isi,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan visi misi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan visi misi")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Visi misi berhasil dibuat", row)
}

// 🟢 PUT /api/a/visi-misi/:id
func (ctrl *VisiMisiController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID visi misi tidak valid")
	}

	var req dto.UpdateVisiMisiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.VisiMisi
	if err := ctrl.DB.First(&row, "visi_misi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Visi misi tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil visi misi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data visi misi")
	}

	oldKategori := row.VisiMisiKategori
	if req.Kategori != nil {
		row.VisiMisiKategori = *req.Kategori
	}
	if req.Isi != nil {
		row.VisiMisiIsi = *req.Isi
	}

	movedScope := row.VisiMisiKategori != oldKategori
	if movedScope {
		no, err := helper.NextNo(ctrl.DB, "visi_misis", "visi_misi_no", visiMisiScope(row.VisiMisiKategori))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui visi misi")
		}
		row.VisiMisiNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update visi misi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui visi misi")
	}

	if movedScope {
		if err := helper.RenumberNo(ctrl.DB, "visi_misis", "visi_misi_id", "visi_misi_no", visiMisiScope(oldKategori)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor visi misi:", err)
		}
	}

	return helper.Success(c, "Visi misi berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/visi-misi/:id
func (ctrl *VisiMisiController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID visi misi tidak valid")
	}

	var row model.VisiMisi
	if err := ctrl.DB.First(&row, "visi_misi_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Visi misi tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil visi misi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data visi misi")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus visi misi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus visi misi")
	}

	if err := helper.RenumberNo(ctrl.DB, "visi_misis", "visi_misi_id", "visi_misi_no", visiMisiScope(row.VisiMisiKategori)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor visi misi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Visi misi berhasil dihapus", fiber.Map{"visi_misi_id": id})
}
