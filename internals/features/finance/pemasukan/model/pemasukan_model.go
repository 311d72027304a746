package model

import (
	"time"

	"github.com/google/uuid"
)

// Pemasukan adalah buku besar pemasukan hasil denormalisasi. Barisnya tidak
// pernah diedit tangan; selalu dibangun ulang (hapus lalu insert) oleh sync
// service setiap kali entitas sumbernya berubah. Tepat satu FK yang terisi.
type Pemasukan struct {
	PemasukanID uuid.UUID `gorm:"column:pemasukan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pemasukan_id"`

	PemasukanSumber string `gorm:"column:pemasukan_sumber;type:varchar(50);not null;index" json:"pemasukan_sumber"`

	DonaturID         *uuid.UUID `gorm:"column:pemasukan_donatur_id;type:uuid;index" json:"pemasukan_donatur_id,omitempty"`
	KotakAmalID       *uuid.UUID `gorm:"column:pemasukan_kotak_amal_id;type:uuid;index" json:"pemasukan_kotak_amal_id,omitempty"`
	KotakAmalMasjidID *uuid.UUID `gorm:"column:pemasukan_kotak_amal_masjid_id;type:uuid;index" json:"pemasukan_kotak_amal_masjid_id,omitempty"`
	DonasiKhususID    *uuid.UUID `gorm:"column:pemasukan_donasi_khusus_id;type:uuid;index" json:"pemasukan_donasi_khusus_id,omitempty"`

	PemasukanJumlah     int64     `gorm:"column:pemasukan_jumlah;not null;default:0" json:"pemasukan_jumlah"`
	PemasukanBulan      int       `gorm:"column:pemasukan_bulan;not null" json:"pemasukan_bulan"` // 0 untuk baris infaq
	PemasukanTahun      int       `gorm:"column:pemasukan_tahun;not null;index" json:"pemasukan_tahun"`
	PemasukanTanggal    time.Time `gorm:"column:pemasukan_tanggal;type:date;not null" json:"pemasukan_tanggal"`
	PemasukanKeterangan string    `gorm:"column:pemasukan_keterangan;type:text" json:"pemasukan_keterangan"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Pemasukan) TableName() string {
	return "pemasukans"
}
