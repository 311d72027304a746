package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/pengurus/dto"
	"simasjid_backend/internals/features/pengurus/model"
	helper "simasjid_backend/internals/helpers"
	"simasjid_backend/internals/helpers/oss"
)

type PengurusController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewPengurusController(db *gorm.DB) *PengurusController {
	return &PengurusController{DB: db, validate: validator.New()}
}

// Nomor urut pengurus berjalan per kategori kepengurusan.
func pengurusKategoriScope(kategori string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("pengurus_kategori = ?", kategori)
	}
}

// 🟢 GET /api/a/pengurus?kategori=Harian&periode=2024-2029
func (ctrl *PengurusController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Pengurus{})
	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("pengurus_kategori = ?", kategori)
	}
	if periode := c.Query("periode"); periode != "" {
		q = q.Where("pengurus_periode = ?", periode)
	}

	var rows []model.Pengurus
	if err := q.Order("pengurus_kategori ASC, pengurus_no ASC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil pengurus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengurus")
	}
	return helper.Success(c, "Data pengurus berhasil diambil", rows)
}

// 🟢 GET /api/a/pengurus/:id
func (ctrl *PengurusController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengurus tidak valid")
	}

	var row model.Pengurus
	if err := ctrl.DB.First(&row, "pengurus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengurus tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil pengurus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengurus")
	}
	return helper.Success(c, "Data pengurus berhasil diambil", row)
}

// 🟢 POST /api/a/pengurus (multipart, field foto opsional)
func (ctrl *PengurusController) Create(c *fiber.Ctx) error {
	var req dto.CreatePengurusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	no, err := helper.NextNo(ctrl.DB, "pengurus", "pengurus_no", pengurusKategoriScope(req.Kategori))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengurus")
	}

	row := model.Pengurus{
		PengurusNo:       no,
		PengurusNama:     req.Nama,
		PengurusJabatan:  req.Jabatan,
		PengurusPeriode:  req.Periode,
		PengurusKategori: req.Kategori,
	}

	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		svc, err := oss.GetBlobService()
		if err != nil {
			log.Println("[ERROR] Blob service tidak tersedia:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto pengurus")
		}
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		url, err := svc.UploadImage(ctx, "pengurus", fh)
		if err != nil {
			log.Println("[ERROR] Gagal unggah foto pengurus:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto pengurus")
		}
		row.PengurusFotoURL = url
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan pengurus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan pengurus")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengurus berhasil dibuat", row)
}

// 🟢 PUT /api/a/pengurus/:id (multipart atau JSON)
func (ctrl *PengurusController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengurus tidak valid")
	}

	var req dto.UpdatePengurusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.Pengurus
	if err := ctrl.DB.First(&row, "pengurus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengurus tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil pengurus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengurus")
	}

	kategoriLama := row.PengurusKategori
	if req.Nama != nil {
		row.PengurusNama = *req.Nama
	}
	if req.Jabatan != nil {
		row.PengurusJabatan = *req.Jabatan
	}
	if req.Periode != nil {
		row.PengurusPeriode = *req.Periode
	}
	if req.Kategori != nil {
		row.PengurusKategori = *req.Kategori
	}

	if oss.IsMultipart(c) {
		if fh, err := c.FormFile("foto"); err == nil && fh != nil {
			svc, err := oss.GetBlobService()
			if err != nil {
				log.Println("[ERROR] Blob service tidak tersedia:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto pengurus")
			}
			ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
			defer cancel()
			url, err := svc.ReplaceImage(ctx, "pengurus", fh, row.PengurusFotoURL)
			if err != nil {
				log.Println("[ERROR] Gagal ganti foto pengurus:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto pengurus")
			}
			row.PengurusFotoURL = url
		}
	}

	pindahKategori := row.PengurusKategori != kategoriLama
	if pindahKategori {
		no, err := helper.NextNo(ctrl.DB, "pengurus", "pengurus_no", pengurusKategoriScope(row.PengurusKategori))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pengurus")
		}
		row.PengurusNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update pengurus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui pengurus")
	}

	if pindahKategori {
		if err := helper.RenumberNo(ctrl.DB, "pengurus", "pengurus_id", "pengurus_no", pengurusKategoriScope(kategoriLama)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor pengurus:", err)
		}
	}
	return helper.Success(c, "Pengurus berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/pengurus/:id
func (ctrl *PengurusController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID pengurus tidak valid")
	}

	var row model.Pengurus
	if err := ctrl.DB.First(&row, "pengurus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengurus tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil pengurus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data pengurus")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus pengurus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus pengurus")
	}

	if row.PengurusFotoURL != "" {
		if svc, err := oss.GetBlobService(); err == nil {
			if err := svc.DeleteByPublicURL(c.Context(), row.PengurusFotoURL); err != nil {
				log.Println("[WARN] Gagal hapus foto pengurus lama:", err)
			}
		}
	}

	if err := helper.RenumberNo(ctrl.DB, "pengurus", "pengurus_id", "pengurus_no", pengurusKategoriScope(row.PengurusKategori)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor pengurus:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Pengurus berhasil dihapus", fiber.Map{"pengurus_id": id})
}
