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

	"simasjid_backend/internals/features/inventaris/dto"
	"simasjid_backend/internals/features/inventaris/model"
	helper "simasjid_backend/internals/helpers"
	"simasjid_backend/internals/helpers/oss"
)

type InventarisController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewInventarisController(db *gorm.DB) *InventarisController {
	return &InventarisController{DB: db, validate: validator.New()}
}

func inventarisTahunScope(tahun int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("inventaris_tahun = ?", tahun)
	}
}

// 🟢 GET /api/a/inventaris?tahun=2025&kategori=Elektronik
func (ctrl *InventarisController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Inventaris{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("inventaris_tahun = ?", tahun)
	}
	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("inventaris_kategori = ?", kategori)
	}

	var rows []model.Inventaris
	if err := q.Order("inventaris_tahun DESC, inventaris_no ASC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil inventaris:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data inventaris")
	}
	return helper.Success(c, "Data inventaris berhasil diambil", rows)
}

// 🟢 GET /api/a/inventaris/:id
func (ctrl *InventarisController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inventaris tidak valid")
	}

	var row model.Inventaris
	if err := ctrl.DB.First(&row, "inventaris_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Inventaris tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil inventaris:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data inventaris")
	}
	return helper.Success(c, "Data inventaris berhasil diambil", row)
}

// 🟢 POST /api/a/inventaris (multipart, field foto opsional)
func (ctrl *InventarisController) Create(c *fiber.Ctx) error {
	var req dto.CreateInventarisRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	tanggal, err := req.ParseTanggalMasuk()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal masuk harus YYYY-MM-DD")
	}

	no, err := helper.NextNo(ctrl.DB, "inventaris", "inventaris_no", inventarisTahunScope(tanggal.Year()))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan inventaris")
	}

	row := model.Inventaris{
		InventarisNo:           no,
		InventarisNama:         req.Nama,
		InventarisKategori:     req.Kategori,
		InventarisKondisi:      req.Kondisi,
		InventarisJumlah:       req.Jumlah,
		InventarisSatuan:       req.Satuan,
		InventarisLokasi:       req.Lokasi,
		InventarisTanggalMasuk: tanggal,
		InventarisTahun:        tanggal.Year(),
	}

	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		svc, err := oss.GetBlobService()
		if err != nil {
			log.Println("[ERROR] Blob service tidak tersedia:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto inventaris")
		}
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		url, err := svc.UploadImage(ctx, "inventaris", fh)
		if err != nil {
			log.Println("[ERROR] Gagal unggah foto inventaris:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto inventaris")
		}
		row.InventarisFotoURL = url
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan inventaris:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan inventaris")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Inventaris berhasil dibuat", row)
}

// 🟢 PUT /api/a/inventaris/:id (multipart atau JSON)
func (ctrl *InventarisController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inventaris tidak valid")
	}

	var req dto.UpdateInventarisRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.Inventaris
	if err := ctrl.DB.First(&row, "inventaris_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Inventaris tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil inventaris:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data inventaris")
	}

	tahunLama := row.InventarisTahun
	if req.Nama != nil {
		row.InventarisNama = *req.Nama
	}
	if req.Kategori != nil {
		row.InventarisKategori = *req.Kategori
	}
	if req.Kondisi != nil {
		row.InventarisKondisi = *req.Kondisi
	}
	if req.Jumlah != nil {
		row.InventarisJumlah = *req.Jumlah
	}
	if req.Satuan != nil {
		row.InventarisSatuan = *req.Satuan
	}
	if req.Lokasi != nil {
		row.InventarisLokasi = *req.Lokasi
	}
	if req.TanggalMasuk != nil {
		tanggal, err := time.Parse("2006-01-02", *req.TanggalMasuk)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal masuk harus YYYY-MM-DD")
		}
		row.InventarisTanggalMasuk = tanggal
		row.InventarisTahun = tanggal.Year()
	}

	if oss.IsMultipart(c) {
		if fh, err := c.FormFile("foto"); err == nil && fh != nil {
			svc, err := oss.GetBlobService()
			if err != nil {
				log.Println("[ERROR] Blob service tidak tersedia:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto inventaris")
			}
			ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
			defer cancel()
			url, err := svc.ReplaceImage(ctx, "inventaris", fh, row.InventarisFotoURL)
			if err != nil {
				log.Println("[ERROR] Gagal ganti foto inventaris:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto inventaris")
			}
			row.InventarisFotoURL = url
		}
	}

	pindahTahun := row.InventarisTahun != tahunLama
	if pindahTahun {
		no, err := helper.NextNo(ctrl.DB, "inventaris", "inventaris_no", inventarisTahunScope(row.InventarisTahun))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui inventaris")
		}
		row.InventarisNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update inventaris:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui inventaris")
	}

	if pindahTahun {
		if err := helper.RenumberNo(ctrl.DB, "inventaris", "inventaris_id", "inventaris_no", inventarisTahunScope(tahunLama)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor inventaris:", err)
		}
	}
	return helper.Success(c, "Inventaris berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/inventaris/:id
func (ctrl *InventarisController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID inventaris tidak valid")
	}

	var row model.Inventaris
	if err := ctrl.DB.First(&row, "inventaris_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Inventaris tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil inventaris:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data inventaris")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus inventaris:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus inventaris")
	}

	if row.InventarisFotoURL != "" {
		if svc, err := oss.GetBlobService(); err == nil {
			if err := svc.DeleteByPublicURL(c.Context(), row.InventarisFotoURL); err != nil {
				log.Println("[WARN] Gagal hapus foto inventaris lama:", err)
			}
		}
	}

	if err := helper.RenumberNo(ctrl.DB, "inventaris", "inventaris_id", "inventaris_no", inventarisTahunScope(row.InventarisTahun)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor inventaris:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Inventaris berhasil dihapus", fiber.Map{"inventaris_id": id})
}
