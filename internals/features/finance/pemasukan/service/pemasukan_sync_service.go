package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"simasjid_backend/internals/constants"
	donasiKhususModel "simasjid_backend/internals/features/finance/donasi_khusus/model"
	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
	kotakAmalModel "simasjid_backend/internals/features/finance/kotak_amal/model"
	"simasjid_backend/internals/features/finance/pemasukan/model"
)

// PemasukanSyncService menjaga tabel pemasukan tetap konsisten dengan empat
// entitas sumbernya. Alurnya selalu sama: ambil sumber, hapus semua baris
// pemasukan milik sumber itu, bangun ulang dari nilai terkini, insert.
// Error sinkronisasi DICATAT oleh pemanggil dan tidak menggagalkan operasi
// tulis utamanya; tabel pemasukan bisa diperbaiki penuh lewat SyncAll.
type PemasukanSyncService struct {
	DB *gorm.DB
}

func NewPemasukanSyncService(db *gorm.DB) *PemasukanSyncService {
	return &PemasukanSyncService{DB: db}
}

/* =======================================================================
   Pembangun baris (murni, tanpa DB)
======================================================================= */

// BuildRowsForDonatur: satu baris per bulan yang nominalnya bukan nol,
// plus satu baris infaq (bulan 0) bila ada.
func BuildRowsForDonatur(d *donaturModel.Donatur) []model.Pemasukan {
	var rows []model.Pemasukan
	bulanan := d.Bulanan()
	for b := 1; b <= 12; b++ {
		if bulanan[b] == 0 {
			continue
		}
		rows = append(rows, model.Pemasukan{
			PemasukanSumber:     constants.SumberDonatur,
			DonaturID:           &d.DonaturID,
			PemasukanJumlah:     bulanan[b],
			PemasukanBulan:      b,
			PemasukanTahun:      d.DonaturTahun,
			PemasukanTanggal:    awalBulan(d.DonaturTahun, b),
			PemasukanKeterangan: fmt.Sprintf("Donatur %s - %s", d.DonaturNama, constants.NamaBulan[b]),
		})
	}
	if d.Infaq != 0 {
		rows = append(rows, model.Pemasukan{
			PemasukanSumber:     constants.SumberDonatur,
			DonaturID:           &d.DonaturID,
			PemasukanJumlah:     d.Infaq,
			PemasukanBulan:      0,
			PemasukanTahun:      d.DonaturTahun,
			PemasukanTanggal:    awalBulan(d.DonaturTahun, 1),
			PemasukanKeterangan: fmt.Sprintf("Infaq donatur %s", d.DonaturNama),
		})
	}
	return rows
}

func BuildRowsForKotakAmal(k *kotakAmalModel.KotakAmal) []model.Pemasukan {
	var rows []model.Pemasukan
	bulanan := k.Bulanan()
	for b := 1; b <= 12; b++ {
		if bulanan[b] == 0 {
			continue
		}
		rows = append(rows, model.Pemasukan{
			PemasukanSumber:     constants.SumberKotakAmalLuar,
			KotakAmalID:         &k.KotakAmalID,
			PemasukanJumlah:     bulanan[b],
			PemasukanBulan:      b,
			PemasukanTahun:      k.KotakAmalTahun,
			PemasukanTanggal:    awalBulan(k.KotakAmalTahun, b),
			PemasukanKeterangan: fmt.Sprintf("Kotak amal %s - %s", k.KotakAmalLokasi, constants.NamaBulan[b]),
		})
	}
	if k.Infaq != 0 {
		rows = append(rows, model.Pemasukan{
			PemasukanSumber:     constants.SumberKotakAmalLuar,
			KotakAmalID:         &k.KotakAmalID,
			PemasukanJumlah:     k.Infaq,
			PemasukanBulan:      0,
			PemasukanTahun:      k.KotakAmalTahun,
			PemasukanTanggal:    awalBulan(k.KotakAmalTahun, 1),
			PemasukanKeterangan: fmt.Sprintf("Infaq kotak amal %s", k.KotakAmalLokasi),
		})
	}
	return rows
}

// BuildRowsForKotakAmalMasjid: sumber bertanggal, selalu tepat satu baris.
func BuildRowsForKotakAmalMasjid(k *kotakAmalModel.KotakAmalMasjid) []model.Pemasukan {
	return []model.Pemasukan{{
		PemasukanSumber:     constants.SumberKotakAmalMasjid,
		KotakAmalMasjidID:   &k.KotakAmalMasjidID,
		PemasukanJumlah:     k.KotakAmalMasjidJumlah,
		PemasukanBulan:      int(k.KotakAmalMasjidTanggal.Month()),
		PemasukanTahun:      k.KotakAmalMasjidTahun,
		PemasukanTanggal:    k.KotakAmalMasjidTanggal,
		PemasukanKeterangan: fmt.Sprintf("Kotak amal masjid %s", k.KotakAmalMasjidTanggal.Format("02-01-2006")),
	}}
}

func BuildRowsForDonasiKhusus(d *donasiKhususModel.DonasiKhusus) []model.Pemasukan {
	return []model.Pemasukan{{
		PemasukanSumber:     constants.SumberDonasiKhusus,
		DonasiKhususID:      &d.DonasiKhususID,
		PemasukanJumlah:     d.DonasiKhususJumlah,
		PemasukanBulan:      d.DonasiKhususBulan,
		PemasukanTahun:      d.DonasiKhususTahun,
		PemasukanTanggal:    d.DonasiKhususTanggal,
		PemasukanKeterangan: d.DonasiKhususKeterangan,
	}}
}

func awalBulan(tahun, bulan int) time.Time {
	return time.Date(tahun, time.Month(bulan), 1, 0, 0, 0, 0, time.UTC)
}

/* =======================================================================
   Sinkronisasi per sumber
======================================================================= */

func (s *PemasukanSyncService) SyncForDonatur(id uuid.UUID) error {
	var d donaturModel.Donatur
	if err := s.DB.First(&d, "donatur_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[SYNC] donatur %s tidak ditemukan, sinkronisasi dilewati", id)
			return nil
		}
		return err
	}
	return s.rebuild("pemasukan_donatur_id = ?", id, BuildRowsForDonatur(&d))
}

func (s *PemasukanSyncService) SyncForKotakAmal(id uuid.UUID) error {
	var k kotakAmalModel.KotakAmal
	if err := s.DB.First(&k, "kotak_amal_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[SYNC] kotak amal %s tidak ditemukan, sinkronisasi dilewati", id)
			return nil
		}
		return err
	}
	return s.rebuild("pemasukan_kotak_amal_id = ?", id, BuildRowsForKotakAmal(&k))
}

func (s *PemasukanSyncService) SyncForKotakAmalMasjid(id uuid.UUID) error {
	var k kotakAmalModel.KotakAmalMasjid
	if err := s.DB.First(&k, "kotak_amal_masjid_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[SYNC] kotak amal masjid %s tidak ditemukan, sinkronisasi dilewati", id)
			return nil
		}
		return err
	}
	return s.rebuild("pemasukan_kotak_amal_masjid_id = ?", id, BuildRowsForKotakAmalMasjid(&k))
}

func (s *PemasukanSyncService) SyncForDonasiKhusus(id uuid.UUID) error {
	var d donasiKhususModel.DonasiKhusus
	if err := s.DB.First(&d, "donasi_khusus_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[SYNC] donasi khusus %s tidak ditemukan, sinkronisasi dilewati", id)
			return nil
		}
		return err
	}
	return s.rebuild("pemasukan_donasi_khusus_id = ?", id, BuildRowsForDonasiKhusus(&d))
}

// rebuild: hapus semua baris milik sumber lalu insert hasil bangun ulang.
// Deterministik untuk sumber yang tidak berubah (idempoten).
func (s *PemasukanSyncService) rebuild(fkWhere string, id uuid.UUID, rows []model.Pemasukan) error {
	if err := s.DB.Where(fkWhere, id).Delete(&model.Pemasukan{}).Error; err != nil {
		return fmt.Errorf("hapus pemasukan lama: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}
	if err := s.DB.Create(&rows).Error; err != nil {
		return fmt.Errorf("insert pemasukan baru: %w", err)
	}
	return nil
}

/* =======================================================================
   Penghapusan & rebuild penuh
======================================================================= */

// RemoveForDonatur dipanggil sebelum donatur dihapus supaya buku besar
// tidak menyisakan baris yatim.
func (s *PemasukanSyncService) RemoveForDonatur(id uuid.UUID) error {
	return s.DB.Where("pemasukan_donatur_id = ?", id).Delete(&model.Pemasukan{}).Error
}

func (s *PemasukanSyncService) RemoveForKotakAmal(id uuid.UUID) error {
	return s.DB.Where("pemasukan_kotak_amal_id = ?", id).Delete(&model.Pemasukan{}).Error
}

func (s *PemasukanSyncService) RemoveForKotakAmalMasjid(id uuid.UUID) error {
	return s.DB.Where("pemasukan_kotak_amal_masjid_id = ?", id).Delete(&model.Pemasukan{}).Error
}

func (s *PemasukanSyncService) RemoveForDonasiKhusus(id uuid.UUID) error {
	return s.DB.Where("pemasukan_donasi_khusus_id = ?", id).Delete(&model.Pemasukan{}).Error
}

// SyncAll membangun ulang seluruh buku besar dari empat sumbernya.
// Dipakai sebagai alat perbaikan manual kalau ada sinkronisasi yang
// pernah gagal (lihat catatan error di log [SYNC]).
func (s *PemasukanSyncService) SyncAll() (int, error) {
	if err := s.DB.Where("1 = 1").Delete(&model.Pemasukan{}).Error; err != nil {
		return 0, fmt.Errorf("kosongkan pemasukan: %w", err)
	}

	var all []model.Pemasukan

	var donaturs []donaturModel.Donatur
	if err := s.DB.Find(&donaturs).Error; err != nil {
		return 0, err
	}
	for i := range donaturs {
		all = append(all, BuildRowsForDonatur(&donaturs[i])...)
	}

	var kotakAmals []kotakAmalModel.KotakAmal
	if err := s.DB.Find(&kotakAmals).Error; err != nil {
		return 0, err
	}
	for i := range kotakAmals {
		all = append(all, BuildRowsForKotakAmal(&kotakAmals[i])...)
	}

	var masjids []kotakAmalModel.KotakAmalMasjid
	if err := s.DB.Find(&masjids).Error; err != nil {
		return 0, err
	}
	for i := range masjids {
		all = append(all, BuildRowsForKotakAmalMasjid(&masjids[i])...)
	}

	var khusus []donasiKhususModel.DonasiKhusus
	if err := s.DB.Find(&khusus).Error; err != nil {
		return 0, err
	}
	for i := range khusus {
		all = append(all, BuildRowsForDonasiKhusus(&khusus[i])...)
	}

	if len(all) == 0 {
		return 0, nil
	}
	if err := s.DB.CreateInBatches(&all, 500).Error; err != nil {
		return 0, fmt.Errorf("insert pemasukan: %w", err)
	}
	return len(all), nil
}
