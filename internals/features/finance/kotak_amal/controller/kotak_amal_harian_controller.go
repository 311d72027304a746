package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/finance/kotak_amal/dto"
	"simasjid_backend/internals/features/finance/kotak_amal/model"
	pemasukanService "simasjid_backend/internals/features/finance/pemasukan/service"
	helper "simasjid_backend/internals/helpers"
)

/* =======================================================================
   Kotak amal masjid (per tanggal, ikut disinkron ke buku besar)
======================================================================= */

type KotakAmalMasjidController struct {
	DB       *gorm.DB
	validate *validator.Validate
	sync     *pemasukanService.PemasukanSyncService
}

func NewKotakAmalMasjidController(db *gorm.DB) *KotakAmalMasjidController {
	return &KotakAmalMasjidController{
		DB:       db,
		validate: validator.New(),
		sync:     pemasukanService.NewPemasukanSyncService(db),
	}
}

func masjidTahunScope(tahun int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("kotak_amal_masjid_tahun = ?", tahun)
	}
}

// 🟢 GET /api/a/kotak-amal-masjid?tahun=2025&dari=2025-03-01&sampai=2025-03-31
func (ctrl *KotakAmalMasjidController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.KotakAmalMasjid{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("kotak_amal_masjid_tahun = ?", tahun)
	}
	if dari := c.Query("dari"); dari != "" {
		t, err := time.Parse("2006-01-02", dari)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format dari harus YYYY-MM-DD")
		}
		q = q.Where("kotak_amal_masjid_tanggal >= ?", t)
	}
	if sampai := c.Query("sampai"); sampai != "" {
		t, err := time.Parse("2006-01-02", sampai)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format sampai harus YYYY-MM-DD")
		}
		q = q.Where("kotak_amal_masjid_tanggal <= ?", t)
	}

	var rows []model.KotakAmalMasjid
	if err := q.Order("kotak_amal_masjid_tanggal DESC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal masjid")
	}
	return helper.Success(c, "Data kotak amal masjid berhasil diambil", rows)
}

// 🟢 GET /api/a/kotak-amal-masjid/total-tahunan?tahun=2025
func (ctrl *KotakAmalMasjidController) GetTotalTahunan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var agg struct {
		JumlahRecord int
		Total        int64
	}
	if err := ctrl.DB.Model(&model.KotakAmalMasjid{}).
		Where("kotak_amal_masjid_tahun = ?", tahun).
		Select("COUNT(*) AS jumlah_record, COALESCE(SUM(kotak_amal_masjid_jumlah), 0) AS total").
		Scan(&agg).Error; err != nil {
		log.Println("[ERROR] Gagal hitung total kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung total kotak amal masjid")
	}
	resp := dto.TotalTahunanResponse{Tahun: tahun, JumlahRecord: agg.JumlahRecord, Total: agg.Total}
	return helper.Success(c, "Total kotak amal masjid tahunan berhasil dihitung", resp)
}

// 🟢 GET /api/a/kotak-amal-masjid/:id
func (ctrl *KotakAmalMasjidController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.KotakAmalMasjid
	if err := ctrl.DB.First(&row, "kotak_amal_masjid_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal masjid tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal masjid")
	}
	return helper.Success(c, "Data kotak amal masjid berhasil diambil", row)
}

// 🟢 POST /api/a/kotak-amal-masjid
func (ctrl *KotakAmalMasjidController) Create(c *fiber.Ctx) error {
	var req dto.CreateKotakAmalHarianRequest
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
	tahun := tanggal.Year()

	no, err := helper.NextNo(ctrl.DB, "kotak_amal_masjids", "kotak_amal_masjid_no", masjidTahunScope(tahun))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kotak amal masjid")
	}

	row := model.KotakAmalMasjid{
		KotakAmalMasjidNo:      no,
		KotakAmalMasjidTanggal: tanggal,
		KotakAmalMasjidJumlah:  req.Jumlah,
		KotakAmalMasjidTahun:   tahun,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kotak amal masjid")
	}

	if err := ctrl.sync.SyncForKotakAmalMasjid(row.KotakAmalMasjidID); err != nil {
		log.Println("[SYNC] Gagal sinkron pemasukan kotak amal masjid:", err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kotak amal masjid berhasil dibuat", row)
}

// 🟢 PUT /api/a/kotak-amal-masjid/:id
func (ctrl *KotakAmalMasjidController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal masjid tidak valid")
	}

	var req dto.UpdateKotakAmalHarianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.KotakAmalMasjid
	if err := ctrl.DB.First(&row, "kotak_amal_masjid_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal masjid tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal masjid")
	}

	tahunLama := row.KotakAmalMasjidTahun
	if req.Tanggal != nil {
		tanggal, err := time.Parse("2006-01-02", *req.Tanggal)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		row.KotakAmalMasjidTanggal = tanggal
		row.KotakAmalMasjidTahun = tanggal.Year()
	}
	if req.Jumlah != nil {
		row.KotakAmalMasjidJumlah = *req.Jumlah
	}

	// Pindah tahun berarti ambil nomor baru di scope tujuan dan rapatkan scope asal.
	pindahTahun := row.KotakAmalMasjidTahun != tahunLama
	if pindahTahun {
		no, err := helper.NextNo(ctrl.DB, "kotak_amal_masjids", "kotak_amal_masjid_no", masjidTahunScope(row.KotakAmalMasjidTahun))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kotak amal masjid")
		}
		row.KotakAmalMasjidNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kotak amal masjid")
	}

	if pindahTahun {
		if err := helper.RenumberNo(ctrl.DB, "kotak_amal_masjids", "kotak_amal_masjid_id", "kotak_amal_masjid_no", masjidTahunScope(tahunLama)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor kotak amal masjid:", err)
		}
	}

	if err := ctrl.sync.SyncForKotakAmalMasjid(row.KotakAmalMasjidID); err != nil {
		log.Println("[SYNC] Gagal sinkron pemasukan kotak amal masjid:", err)
	}

	return helper.Success(c, "Kotak amal masjid berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/kotak-amal-masjid/:id
func (ctrl *KotakAmalMasjidController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal masjid tidak valid")
	}

	var row model.KotakAmalMasjid
	if err := ctrl.DB.First(&row, "kotak_amal_masjid_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal masjid tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal masjid")
	}

	if err := ctrl.sync.RemoveForKotakAmalMasjid(id); err != nil {
		log.Println("[ERROR] Gagal hapus pemasukan kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kotak amal masjid")
	}
	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kotak amal masjid")
	}

	if err := helper.RenumberNo(ctrl.DB, "kotak_amal_masjids", "kotak_amal_masjid_id", "kotak_amal_masjid_no", masjidTahunScope(row.KotakAmalMasjidTahun)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor kotak amal masjid:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Kotak amal masjid berhasil dihapus", fiber.Map{"kotak_amal_masjid_id": id})
}

/* =======================================================================
   Kotak amal jumat (per tanggal, dipakai laporan Jumat; tidak masuk
   buku besar pemasukan)
======================================================================= */

type KotakAmalJumatController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewKotakAmalJumatController(db *gorm.DB) *KotakAmalJumatController {
	return &KotakAmalJumatController{DB: db, validate: validator.New()}
}

func jumatTahunScope(tahun int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("kotak_amal_jumat_tahun = ?", tahun)
	}
}

// 🟢 GET /api/a/kotak-amal-jumat?tahun=2025&dari=2025-03-01&sampai=2025-03-31
func (ctrl *KotakAmalJumatController) GetAll(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.KotakAmalJumat{})
	if tahun := c.QueryInt("tahun"); tahun > 0 {
		q = q.Where("kotak_amal_jumat_tahun = ?", tahun)
	}
	if dari := c.Query("dari"); dari != "" {
		t, err := time.Parse("2006-01-02", dari)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format dari harus YYYY-MM-DD")
		}
		q = q.Where("kotak_amal_jumat_tanggal >= ?", t)
	}
	if sampai := c.Query("sampai"); sampai != "" {
		t, err := time.Parse("2006-01-02", sampai)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format sampai harus YYYY-MM-DD")
		}
		q = q.Where("kotak_amal_jumat_tanggal <= ?", t)
	}

	var rows []model.KotakAmalJumat
	if err := q.Order("kotak_amal_jumat_tanggal DESC").Find(&rows).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal jumat")
	}
	return helper.Success(c, "Data kotak amal jumat berhasil diambil", rows)
}

// 🟢 GET /api/a/kotak-amal-jumat/total-tahunan?tahun=2025
func (ctrl *KotakAmalJumatController) GetTotalTahunan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun")
	if tahun <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Parameter tahun wajib diisi")
	}

	var agg struct {
		JumlahRecord int
		Total        int64
	}
	if err := ctrl.DB.Model(&model.KotakAmalJumat{}).
		Where("kotak_amal_jumat_tahun = ?", tahun).
		Select("COUNT(*) AS jumlah_record, COALESCE(SUM(kotak_amal_jumat_jumlah), 0) AS total").
		Scan(&agg).Error; err != nil {
		log.Println("[ERROR] Gagal hitung total kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung total kotak amal jumat")
	}
	resp := dto.TotalTahunanResponse{Tahun: tahun, JumlahRecord: agg.JumlahRecord, Total: agg.Total}
	return helper.Success(c, "Total kotak amal jumat tahunan berhasil dihitung", resp)
}

// 🟢 GET /api/a/kotak-amal-jumat/:id
func (ctrl *KotakAmalJumatController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.KotakAmalJumat
	if err := ctrl.DB.First(&row, "kotak_amal_jumat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal jumat tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal jumat")
	}
	return helper.Success(c, "Data kotak amal jumat berhasil diambil", row)
}

// 🟢 POST /api/a/kotak-amal-jumat
func (ctrl *KotakAmalJumatController) Create(c *fiber.Ctx) error {
	var req dto.CreateKotakAmalHarianRequest
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
	tahun := tanggal.Year()

	no, err := helper.NextNo(ctrl.DB, "kotak_amal_jumats", "kotak_amal_jumat_no", jumatTahunScope(tahun))
	if err != nil {
		log.Println("[ERROR] Gagal hitung nomor urut:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kotak amal jumat")
	}

	row := model.KotakAmalJumat{
		KotakAmalJumatNo:      no,
		KotakAmalJumatTanggal: tanggal,
		KotakAmalJumatJumlah:  req.Jumlah,
		KotakAmalJumatTahun:   tahun,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal simpan kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kotak amal jumat")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kotak amal jumat berhasil dibuat", row)
}

// 🟢 PUT /api/a/kotak-amal-jumat/:id
func (ctrl *KotakAmalJumatController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal jumat tidak valid")
	}

	var req dto.UpdateKotakAmalHarianRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.KotakAmalJumat
	if err := ctrl.DB.First(&row, "kotak_amal_jumat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal jumat tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal jumat")
	}

	tahunLama := row.KotakAmalJumatTahun
	if req.Tanggal != nil {
		tanggal, err := time.Parse("2006-01-02", *req.Tanggal)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		row.KotakAmalJumatTanggal = tanggal
		row.KotakAmalJumatTahun = tanggal.Year()
	}
	if req.Jumlah != nil {
		row.KotakAmalJumatJumlah = *req.Jumlah
	}

	pindahTahun := row.KotakAmalJumatTahun != tahunLama
	if pindahTahun {
		no, err := helper.NextNo(ctrl.DB, "kotak_amal_jumats", "kotak_amal_jumat_no", jumatTahunScope(row.KotakAmalJumatTahun))
		if err != nil {
			log.Println("[ERROR] Gagal hitung nomor urut:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kotak amal jumat")
		}
		row.KotakAmalJumatNo = no
	}

	if err := ctrl.DB.Save(&row).Error; err != nil {
		log.Println("[ERROR] Gagal update kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui kotak amal jumat")
	}

	if pindahTahun {
		if err := helper.RenumberNo(ctrl.DB, "kotak_amal_jumats", "kotak_amal_jumat_id", "kotak_amal_jumat_no", jumatTahunScope(tahunLama)); err != nil {
			log.Println("[ERROR] Gagal tata ulang nomor kotak amal jumat:", err)
		}
	}

	return helper.Success(c, "Kotak amal jumat berhasil diperbarui", row)
}

// 🟢 DELETE /api/a/kotak-amal-jumat/:id
func (ctrl *KotakAmalJumatController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID kotak amal jumat tidak valid")
	}

	var row model.KotakAmalJumat
	if err := ctrl.DB.First(&row, "kotak_amal_jumat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kotak amal jumat tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data kotak amal jumat")
	}

	if err := ctrl.DB.Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus kotak amal jumat")
	}

	if err := helper.RenumberNo(ctrl.DB, "kotak_amal_jumats", "kotak_amal_jumat_id", "kotak_amal_jumat_no", jumatTahunScope(row.KotakAmalJumatTahun)); err != nil {
		log.Println("[ERROR] Gagal tata ulang nomor kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menata ulang nomor urut")
	}

	return helper.Success(c, "Kotak amal jumat berhasil dihapus", fiber.Map{"kotak_amal_jumat_id": id})
}
