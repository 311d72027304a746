package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/konten/dto"
	"simasjid_backend/internals/features/konten/model"
	helper "simasjid_backend/internals/helpers"
	"simasjid_backend/internals/helpers/oss"
)

type KontenController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewKontenController(db *gorm.DB) *KontenController {
	return &KontenController{DB: db, validate: validator.New()}
}

func tagsToJSON(tags []string) (datatypes.JSON, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// 🟢 GET /api/a/konten?status=published&kategori=kegiatan&beranda=true&penting=true
func (ctrl *KontenController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Konten{}).Preload("Gambar")
	if status := c.Query("status"); status != "" {
		q = q.Where("konten_status = ?", status)
	}
	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("konten_kategori = ?", kategori)
	}
	if c.Query("beranda") == "true" {
		q = q.Where("konten_tampil_di_beranda = ?", true)
	}
	if c.Query("penting") == "true" {
		q = q.Where("konten_penting = ?", true)
	}

	p := helper.ParsePaginationWith(c, "tanggal", "desc", helper.AdminOpts)
	orderClause, err := p.SafeOrderClause(map[string]string{
		"tanggal": "konten_tanggal",
		"judul":   "konten_judul",
		"dilihat": "konten_dilihat",
	}, "tanggal")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Kolom urut tidak dikenal")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data konten")
	}

	var rows []model.Konten
	if err := q.Order(strings.TrimPrefix(orderClause, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data konten")
	}
	return helper.Success(c, "Data konten berhasil diambil", fiber.Map{
		"rows":       rows,
		"pagination": helper.BuildPaginationMeta(total, p),
	})
}

// 🟢 GET /api/public/konten — hanya yang berstatus published.
func (ctrl *KontenController) GetPublished(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.Konten{}).Preload("Gambar").
		Where("konten_status = ?", model.KontenStatusPublished)
	if c.Query("beranda") == "true" {
		q = q.Where("konten_tampil_di_beranda = ?", true)
	}
	if kategori := c.Query("kategori"); kategori != "" {
		q = q.Where("konten_kategori = ?", kategori)
	}

	var rows []model.Konten
	if err := q.Order("konten_penting DESC, konten_tanggal DESC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil konten publik:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data konten")
	}
	return helper.Success(c, "Data konten berhasil diambil", rows)
}

// 🟢 GET /api/public/konten/slug/:slug
func (ctrl *KontenController) GetBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var row model.Konten
	if err := ctrl.DB.Preload("Gambar").
		First(&row, "konten_slug = ? AND konten_status = ?", slug, model.KontenStatusPublished).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data konten")
	}
	return helper.Success(c, "Data konten berhasil diambil", row)
}

// 🟢 GET /api/a/konten/:id
func (ctrl *KontenController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID konten tidak valid")
	}

	var row model.Konten
	if err := ctrl.DB.Preload("Gambar").First(&row, "konten_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data konten")
	}
	return helper.Success(c, "Data konten berhasil diambil", row)
}

// 🟢 POST /api/a/konten (multipart, field foto & gambar[] opsional)
func (ctrl *KontenController) Create(c *fiber.Ctx) error {
	var req dto.CreateKontenRequest
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

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, helper.Slugify(req.Judul, 100), "kontens", "konten_slug")
	if err != nil {
		log.Println("[ERROR] Gagal buat slug konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan konten")
	}

	donaturID, err := parseOptionalUUID(req.DonaturID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID donatur tidak valid")
	}
	kotakAmalID, err := parseOptionalUUID(req.KotakAmalID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal tidak valid")
	}
	tags, err := tagsToJSON(req.Tags)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tags tidak valid")
	}

	status := req.Status
	if status == "" {
		status = model.KontenStatusDraft
	}

	row := model.Konten{
		KontenJudul:           req.Judul,
		KontenSlug:            slug,
		KontenDeskripsi:       req.Deskripsi,
		KontenTanggal:         tanggal,
		KontenWaktu:           req.Waktu,
		KontenLokasi:          req.Lokasi,
		KontenPenulis:         req.Penulis,
		KontenKategori:        req.Kategori,
		KontenStatus:          status,
		KontenTags:            tags,
		KontenTampilDiBeranda: req.TampilDiBeranda,
		KontenPenting:         req.Penting,
		DonaturID:             donaturID,
		KotakAmalID:           kotakAmalID,
	}

	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		svc, err := oss.GetBlobService()
		if err != nil {
			log.Println("[ERROR] Blob service tidak tersedia:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto konten")
		}
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		url, err := svc.UploadImage(ctx, "konten", fh)
		if err != nil {
			log.Println("[ERROR] Gagal unggah foto konten:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto konten")
		}
		row.KontenFotoURL = url
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan konten")
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		files := form.File["gambar"]
		if len(files) > 0 {
			svc, err := oss.GetBlobService()
			if err != nil {
				log.Println("[ERROR] Blob service tidak tersedia:", err)
			} else {
				ctx, cancel := context.WithTimeout(c.Context(), 60*time.Second)
				defer cancel()
				for i, fh := range files {
					url, err := svc.UploadImage(ctx, "konten/gambar", fh)
					if err != nil {
						log.Println("[ERROR] Gagal unggah gambar konten:", err)
						continue
					}
					gambar := model.KontenGambar{
						KontenID:           row.KontenID,
						KontenGambarURL:    url,
						KontenGambarUrutan: i + 1,
					}
					if err := ctrl.DB.Create(&gambar).Error; err != nil {
						log.Println("[ERROR] Gagal simpan gambar konten:", err)
					}
				}
			}
		}
	}

	if err := ctrl.DB.Preload("Gambar").First(&row, "konten_id = ?", row.KontenID).Error; err != nil {
		log.Println("[ERROR] Gagal muat ulang konten:", err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Konten berhasil dibuat", row)
}

// 🟢 PUT /api/a/konten/:id (multipart atau JSON). Slug dibuat ulang bila judul berubah.
func (ctrl *KontenController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID konten tidak valid")
	}

	var req dto.UpdateKontenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.Konten
	if err := ctrl.DB.First(&row, "konten_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data konten")
	}

	if req.Judul != nil && *req.Judul != row.KontenJudul {
		row.KontenJudul = *req.Judul
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, helper.Slugify(*req.Judul, 100), "kontens", "konten_slug")
		if err != nil {
			log.Println("[ERROR] Gagal buat slug konten:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui konten")
		}
		row.KontenSlug = slug
	}
	if req.Deskripsi != nil {
		row.KontenDeskripsi = *req.Deskripsi
	}
	if req.Tanggal != nil {
		tanggal, err := time.Parse("2006-01-02", *req.Tanggal)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		row.KontenTanggal = tanggal
	}
	if req.Waktu != nil {
		row.KontenWaktu = *req.Waktu
	}
	if req.Lokasi != nil {
		row.KontenLokasi = *req.Lokasi
	}
	if req.Penulis != nil {
		row.KontenPenulis = *req.Penulis
	}
	if req.Kategori != nil {
		row.KontenKategori = *req.Kategori
	}
	if req.Status != nil {
		row.KontenStatus = *req.Status
	}
	if req.TampilDiBeranda != nil {
		row.KontenTampilDiBeranda = *req.TampilDiBeranda
	}
	if req.Penting != nil {
		row.KontenPenting = *req.Penting
	}
	if req.DonaturID != nil {
		donaturID, err := parseOptionalUUID(*req.DonaturID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "ID donatur tidak valid")
		}
		row.DonaturID = donaturID
	}
	if req.KotakAmalID != nil {
		kotakAmalID, err := parseOptionalUUID(*req.KotakAmalID)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal tidak valid")
		}
		row.KotakAmalID = kotakAmalID
	}
	if len(req.Tags) > 0 {
		tags, err := tagsToJSON(req.Tags)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tags tidak valid")
		}
		row.KontenTags = tags
	}

	if oss.IsMultipart(c) {
		if fh, err := c.FormFile("foto"); err == nil && fh != nil {
			svc, err := oss.GetBlobService()
			if err != nil {
				log.Println("[ERROR] Blob service tidak tersedia:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto konten")
			}
			ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
			defer cancel()
			url, err := svc.ReplaceImage(ctx, "konten", fh, row.KontenFotoURL)
			if err != nil {
				log.Println("[ERROR] Gagal ganti foto konten:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto konten")
			}
			row.KontenFotoURL = url
		}
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui konten")
	}
	return helper.Success(c, "Konten berhasil diperbarui", row)
}

// 🟢 PATCH /api/a/konten/:id/status
func (ctrl *KontenController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID konten tidak valid")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.Konten{}).
		Where("konten_id = ?", id).
		Update("konten_status", req.Status)
	if res.Error != nil {
		log.Println("[ERROR] Gagal ubah status konten:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah status konten")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	}
	return helper.Success(c, "Status konten berhasil diubah", fiber.Map{
		"konten_id": id,
		"status":    req.Status,
	})
}

// 🟢 POST /api/public/konten/:id/dilihat — increment atomik, tanpa auth.
func (ctrl *KontenController) IncrementDilihat(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID konten tidak valid")
	}

	res := ctrl.DB.Model(&model.Konten{}).
		Where("konten_id = ?", id).
		UpdateColumn("konten_dilihat", gorm.Expr("konten_dilihat + 1"))
	if res.Error != nil {
		log.Println("[ERROR] Gagal tambah jumlah dilihat:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui jumlah dilihat")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Konten tidak ditemukan")
	}
	return helper.Success(c, "Jumlah dilihat berhasil ditambah", fiber.Map{"konten_id": id})
}

// 🟢 DELETE /api/a/konten/:id
func (ctrl *KontenController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID konten tidak valid")
	}

	var row model.Konten
	if err := ctrl.DB.Preload("Gambar").First(&row, "konten_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Konten tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data konten")
	}

	if err := ctrl.DB.Where("konten_gambar_konten_id = ?", id).Delete(&model.KontenGambar{}).Error; err != nil {
		log.Println("[ERROR] Gagal hapus gambar konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus konten")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus konten:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus konten")
	}

	if svc, err := oss.GetBlobService(); err == nil {
		if row.KontenFotoURL != "" {
			if err := svc.DeleteByPublicURL(c.Context(), row.KontenFotoURL); err != nil {
				log.Println("[WARN] Gagal hapus foto konten lama:", err)
			}
		}
		for _, g := range row.Gambar {
			if err := svc.DeleteByPublicURL(c.Context(), g.KontenGambarURL); err != nil {
				log.Println("[WARN] Gagal hapus gambar konten lama:", err)
			}
		}
	}

	return helper.Success(c, "Konten berhasil dihapus", fiber.Map{"konten_id": id})
}
