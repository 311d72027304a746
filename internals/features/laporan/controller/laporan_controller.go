package controller

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
	donasiModel "simasjid_backend/internals/features/finance/donasi_khusus/model"
	kotakAmalModel "simasjid_backend/internals/features/finance/kotak_amal/model"
	pemasukanModel "simasjid_backend/internals/features/finance/pemasukan/model"
	pengeluaranModel "simasjid_backend/internals/features/finance/pengeluaran/model"
	"simasjid_backend/internals/features/laporan/dto"
	"simasjid_backend/internals/features/laporan/service"
	helper "simasjid_backend/internals/helpers"
)

type LaporanController struct {
	DB *gorm.DB
}

func NewLaporanController(db *gorm.DB) *LaporanController {
	return &LaporanController{DB: db}
}

func (ctrl *LaporanController) buildDashboard(db *gorm.DB, tahun int, now time.Time) (dto.DashboardResponse, error) {
	resp := dto.DashboardResponse{Tahun: tahun}

	sumPemasukan := func(extra func(*gorm.DB) *gorm.DB) (int64, error) {
		q := db.Model(&pemasukanModel.Pemasukan{}).Where("pemasukan_tahun = ?", tahun)
		if extra != nil {
			q = extra(q)
		}
		var total int64
		err := q.Select("COALESCE(SUM(pemasukan_jumlah), 0)").Scan(&total).Error
		return total, err
	}
	sumPengeluaran := func(extra func(*gorm.DB) *gorm.DB) (int64, error) {
		q := db.Model(&pengeluaranModel.Pengeluaran{}).Where("pengeluaran_tahun = ?", tahun)
		if extra != nil {
			q = extra(q)
		}
		var total int64
		err := q.Select("COALESCE(SUM(pengeluaran_jumlah), 0)").Scan(&total).Error
		return total, err
	}

	var err error
	if resp.TotalPemasukan, err = sumPemasukan(nil); err != nil {
		return resp, err
	}
	if resp.TotalPengeluaran, err = sumPengeluaran(nil); err != nil {
		return resp, err
	}

	// Kotak amal jumat tidak lewat buku besar, jumlahkan langsung.
	var totalJumat int64
	if err = db.Model(&kotakAmalModel.KotakAmalJumat{}).
		Where("kotak_amal_jumat_tahun = ?", tahun).
		Select("COALESCE(SUM(kotak_amal_jumat_jumlah), 0)").
		Scan(&totalJumat).Error; err != nil {
		return resp, err
	}
	resp.TotalPemasukan += totalJumat
	resp.Saldo = resp.TotalPemasukan - resp.TotalPengeluaran

	bulanIni := int(now.Month())
	bulanLalu := bulanIni - 1

	bulanScopePemasukan := func(bulan int) func(*gorm.DB) *gorm.DB {
		return func(q *gorm.DB) *gorm.DB { return q.Where("pemasukan_bulan = ?", bulan) }
	}
	bulanScopePengeluaran := func(bulan int) func(*gorm.DB) *gorm.DB {
		return func(q *gorm.DB) *gorm.DB { return q.Where("pengeluaran_bulan = ?", bulan) }
	}

	if resp.PemasukanBulanIni, err = sumPemasukan(bulanScopePemasukan(bulanIni)); err != nil {
		return resp, err
	}
	if resp.PengeluaranBulanIni, err = sumPengeluaran(bulanScopePengeluaran(bulanIni)); err != nil {
		return resp, err
	}

	var pemasukanLalu, pengeluaranLalu int64
	if bulanLalu >= 1 {
		if pemasukanLalu, err = sumPemasukan(bulanScopePemasukan(bulanLalu)); err != nil {
			return resp, err
		}
		if pengeluaranLalu, err = sumPengeluaran(bulanScopePengeluaran(bulanLalu)); err != nil {
			return resp, err
		}
	}
	resp.GrowthPemasukan = service.Growth(pemasukanLalu, resp.PemasukanBulanIni)
	resp.GrowthPengeluaran = service.Growth(pengeluaranLalu, resp.PengeluaranBulanIni)

	if err = db.Model(&donaturModel.Donatur{}).
		Where("donatur_tahun = ?", tahun).
		Count(&resp.JumlahDonatur).Error; err != nil {
		return resp, err
	}
	if err = db.Model(&donasiModel.DonasiKhusus{}).
		Where("donasi_khusus_tahun = ?", tahun).
		Count(&resp.JumlahDonasiKhusus).Error; err != nil {
		return resp, err
	}
	return resp, nil
}

// 🟢 GET /api/a/laporan/dashboard?tahun=2025
func (ctrl *LaporanController) GetDashboard(c *fiber.Ctx) error {
	now := time.Now()
	tahun := c.QueryInt("tahun", now.Year())

	resp, err := ctrl.buildDashboard(ctrl.DB, tahun, now)
	if err != nil {
		log.Println("[ERROR] Gagal hitung dashboard:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data dashboard")
	}
	return helper.Success(c, "Data dashboard berhasil dihitung", resp)
}

// 🟢 GET /api/a/laporan/rekap-tahunan?tahun=2025
func (ctrl *LaporanController) GetRekapTahunan(c *fiber.Ctx) error {
	tahun := c.QueryInt("tahun", time.Now().Year())

	var pemasukan []pemasukanModel.Pemasukan
	if err := ctrl.DB.Find(&pemasukan, "pemasukan_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil pemasukan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun rekap tahunan")
	}
	var jumat []kotakAmalModel.KotakAmalJumat
	if err := ctrl.DB.Find(&jumat, "kotak_amal_jumat_tahun = ?", tahun).Error; err != nil {
		log.Println("[ERROR] Gagal ambil kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun rekap tahunan")
	}

	resp := dto.RekapTahunanResponse{Tahun: tahun}
	resp.Pemasukan = service.BuildRekapPemasukan(pemasukan, jumat, tahun)
	for _, r := range resp.Pemasukan {
		resp.TotalPemasukan += r.Total
	}

	if err := ctrl.DB.Model(&pengeluaranModel.Pengeluaran{}).
		Select("pengeluaran_kategori AS kategori, COALESCE(SUM(pengeluaran_jumlah), 0) AS total").
		Where("pengeluaran_tahun = ?", tahun).
		Group("pengeluaran_kategori").
		Order("total DESC").
		Scan(&resp.Pengeluaran).Error; err != nil {
		log.Println("[ERROR] Gagal rekap pengeluaran:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun rekap tahunan")
	}
	for _, r := range resp.Pengeluaran {
		resp.TotalPengeluaran += r.Total
	}
	resp.Saldo = resp.TotalPemasukan - resp.TotalPengeluaran

	return helper.Success(c, "Rekap tahunan berhasil disusun", resp)
}

// 🟢 GET /api/a/laporan/jumat?tanggal=2025-08-29
func (ctrl *LaporanController) GetLaporanJumat(c *fiber.Ctx) error {
	tanggal := time.Now()
	if s := c.Query("tanggal"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		tanggal = parsed
	}

	jumatLalu := service.PreviousFriday(tanggal)
	resp := dto.LaporanJumatResponse{
		TanggalLaporan:  tanggal.Format("2006-01-02"),
		JumatSebelumnya: jumatLalu.Format("2006-01-02"),
	}

	var rowJumat kotakAmalModel.KotakAmalJumat
	err := ctrl.DB.First(&rowJumat, "kotak_amal_jumat_tanggal = ?", jumatLalu.Format("2006-01-02")).Error
	switch {
	case err == nil:
		resp.KotakAmalJumatLalu = rowJumat.KotakAmalJumatJumlah
	case errors.Is(err, gorm.ErrRecordNotFound):
		// belum ada setoran Jumat lalu, biarkan nol
	default:
		log.Println("[ERROR] Gagal ambil kotak amal jumat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun laporan Jumat")
	}

	// Total donatur Januari s.d. bulan laporan.
	if err := ctrl.DB.Model(&pemasukanModel.Pemasukan{}).
		Where("pemasukan_tahun = ? AND pemasukan_sumber = ? AND pemasukan_bulan BETWEEN 1 AND ?",
			tanggal.Year(), constants.SumberDonatur, int(tanggal.Month())).
		Select("COALESCE(SUM(pemasukan_jumlah), 0)").
		Scan(&resp.DonaturSampaiBulan).Error; err != nil {
		log.Println("[ERROR] Gagal hitung total donatur:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun laporan Jumat")
	}

	awalSepekan := tanggal.AddDate(0, 0, -6)
	if err := ctrl.DB.Model(&donasiModel.DonasiKhusus{}).
		Where("donasi_khusus_tanggal BETWEEN ? AND ?", awalSepekan.Format("2006-01-02"), tanggal.Format("2006-01-02")).
		Select("COALESCE(SUM(donasi_khusus_jumlah), 0)").
		Scan(&resp.DonasiKhususSepekan).Error; err != nil {
		log.Println("[ERROR] Gagal hitung donasi khusus sepekan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun laporan Jumat")
	}

	if err := ctrl.DB.Model(&pengeluaranModel.Pengeluaran{}).
		Where("pengeluaran_tanggal BETWEEN ? AND ?", awalSepekan.Format("2006-01-02"), tanggal.Format("2006-01-02")).
		Select("COALESCE(SUM(pengeluaran_jumlah), 0)").
		Scan(&resp.PengeluaranSepekan).Error; err != nil {
		log.Println("[ERROR] Gagal hitung pengeluaran sepekan:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyusun laporan Jumat")
	}

	resp.KotakAmalLuarBulan = service.KotakAmalLuarBulanIni()

	return helper.Success(c, "Laporan Jumat berhasil disusun", resp)
}

// 🟢 GET /api/a/stats — angka dashboard dengan batas waktu; saat lewat
// tenggat kirim angka nol bertanda fallback alih-alih error.
func (ctrl *LaporanController) GetStats(c *fiber.Ctx) error {
	now := time.Now()
	tahun := c.QueryInt("tahun", now.Year())

	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	type hasil struct {
		dash dto.DashboardResponse
		err  error
	}
	done := make(chan hasil, 1)
	go func() {
		dash, err := ctrl.buildDashboard(ctrl.DB.WithContext(ctx), tahun, now)
		done <- hasil{dash, err}
	}()

	select {
	case h := <-done:
		if h.err != nil {
			log.Println("[ERROR] Gagal hitung statistik:", h.err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
		}
		return helper.Success(c, "Statistik berhasil dihitung", dto.StatsResponse{Dashboard: h.dash})
	case <-ctx.Done():
		log.Println("[WARN] Statistik melewati tenggat, kirim angka fallback")
		return helper.Success(c, "Statistik dikirim dari fallback", dto.StatsResponse{
			Dashboard: dto.DashboardResponse{Tahun: tahun},
			Fallback:  true,
		})
	}
}
