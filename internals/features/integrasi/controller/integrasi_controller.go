package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	donasiModel "simasjid_backend/internals/features/finance/donasi_khusus/model"
	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
	kotakAmalModel "simasjid_backend/internals/features/finance/kotak_amal/model"
	pemasukanService "simasjid_backend/internals/features/finance/pemasukan/service"
	"simasjid_backend/internals/features/integrasi/dto"
	"simasjid_backend/internals/features/integrasi/service"
	helper "simasjid_backend/internals/helpers"
)

type IntegrasiController struct {
	DB       *gorm.DB
	validate *validator.Validate
	sync     *pemasukanService.PemasukanSyncService
}

func NewIntegrasiController(db *gorm.DB) *IntegrasiController {
	return &IntegrasiController{
		DB:       db,
		validate: validator.New(),
		sync:     pemasukanService.NewPemasukanSyncService(db),
	}
}

func (ctrl *IntegrasiController) muatSumber(tahun int) (
	[]donaturModel.Donatur,
	[]kotakAmalModel.KotakAmal,
	[]kotakAmalModel.KotakAmalMasjid,
	[]kotakAmalModel.KotakAmalJumat,
	[]donasiModel.DonasiKhusus,
	error,
) {
	var donaturs []donaturModel.Donatur
	if err := ctrl.DB.Find(&donaturs, "donatur_tahun = ?", tahun).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	var kotakAmals []kotakAmalModel.KotakAmal
	if err := ctrl.DB.Find(&kotakAmals, "kotak_amal_tahun = ?", tahun).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	var masjid []kotakAmalModel.KotakAmalMasjid
	if err := ctrl.DB.Find(&masjid, "kotak_amal_masjid_tahun = ?", tahun).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	var jumat []kotakAmalModel.KotakAmalJumat
	if err := ctrl.DB.Find(&jumat, "kotak_amal_jumat_tahun = ?", tahun).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	var donasi []donasiModel.DonasiKhusus
	if err := ctrl.DB.Find(&donasi, "donasi_khusus_tahun = ?", tahun).Error; err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return donaturs, kotakAmals, masjid, jumat, donasi, nil
}

// 🟢 GET /api/a/integrasi?tahun=2025 — riwayat tahunan gabungan lima sumber.
func (ctrl *IntegrasiController) GetUnified(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun", time.Now().Year())

	donaturs, kotakAmals, masjid, jumat, donasi, err := ctrl.muatSumber(tahun)
	if err != nil {
		log.Println("[ERROR] Gagal muat sumber integrasi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun data gabungan")
	}

	rows := service.Merge(donaturs, kotakAmals, masjid, jumat, donasi, tahun)
	return helper.Success(c, "Data gabungan berhasil disusun", fiber.Map{
		"tahun": tahun,
		"rows":  rows,
	})
}

// 🟢 PUT /api/a/integrasi — suntingan baris gabungan dipetakan balik ke
// record sumbernya (hanya donatur dan kotak amal luar yang bisa berubah).
func (ctrl *IntegrasiController) ApplyEdit(c *fiber.Ctx) error {
	var req dto.EditUnifiedRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	sourceID, err := uuid.Parse(req.SourceID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID sumber tidak valid")
	}

	donaturs, kotakAmals, _, _, _, err := ctrl.muatSumber(req.Tahun)
	if err != nil {
		log.Println("[ERROR] Gagal muat sumber integrasi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menerapkan suntingan")
	}

	row := service.UnifiedRow{
		SourceType: req.SourceType,
		SourceID:   sourceID,
		Tahun:      req.Tahun,
		Infaq:      req.Infaq,
	}
	for i, v := range req.Bulanan {
		row.Bulanan[i+1] = v
	}

	if !service.ApplyEdit(row, donaturs, kotakAmals) {
		return helper.Success(c, "Tidak ada record yang berubah", fiber.Map{"changed": false})
	}

	switch req.SourceType {
	case constants.TipeDonatur:
		for i := range donaturs {
			if donaturs[i].DonaturID != sourceID {
				continue
			}
			if err := ctrl.DB.Save(&donaturs[i]).Error; err != nil {
				log.Println("[ERROR] Gagal simpan suntingan donatur:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal menerapkan suntingan")
			}
			if err := ctrl.sync.SyncForDonatur(sourceID); err != nil {
				log.Println("[SYNC] Gagal sinkron pemasukan donatur:", err)
			}
		}
	case constants.TipeKotakAmalLuar:
		for i := range kotakAmals {
			if kotakAmals[i].KotakAmalID != sourceID {
				continue
			}
			if err := ctrl.DB.Save(&kotakAmals[i]).Error; err != nil {
				log.Println("[ERROR] Gagal simpan suntingan kotak amal:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Gagal menerapkan suntingan")
			}
			if err := ctrl.sync.SyncForKotakAmal(sourceID); err != nil {
				log.Println("[SYNC] Gagal sinkron pemasukan kotak amal:", err)
			}
		}
	}

	return helper.Success(c, "Suntingan berhasil diterapkan", fiber.Map{"changed": true})
}
