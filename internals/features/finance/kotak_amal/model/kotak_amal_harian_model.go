package model

import (
	"time"

	"github.com/google/uuid"
)

// KotakAmalMasjid adalah setoran kotak amal dalam masjid per tanggal
// (satu baris per pembukaan kotak).
type KotakAmalMasjid struct {
	KotakAmalMasjidID uuid.UUID `gorm:"column:kotak_amal_masjid_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kotak_amal_masjid_id"`

	KotakAmalMasjidNo      int       `gorm:"column:kotak_amal_masjid_no;not null" json:"kotak_amal_masjid_no"`
	KotakAmalMasjidTanggal time.Time `gorm:"column:kotak_amal_masjid_tanggal;type:date;not null" json:"kotak_amal_masjid_tanggal"`
	KotakAmalMasjidJumlah  int64     `gorm:"column:kotak_amal_masjid_jumlah;not null;default:0" json:"kotak_amal_masjid_jumlah"`
	KotakAmalMasjidTahun   int       `gorm:"column:kotak_amal_masjid_tahun;not null;index" json:"kotak_amal_masjid_tahun"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KotakAmalMasjid) TableName() string {
	return "kotak_amal_masjids"
}

// KotakAmalJumat adalah perolehan kotak amal tiap Jumat.
type KotakAmalJumat struct {
	KotakAmalJumatID uuid.UUID `gorm:"column:kotak_amal_jumat_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kotak_amal_jumat_id"`

	KotakAmalJumatNo      int       `gorm:"column:kotak_amal_jumat_no;not null" json:"kotak_amal_jumat_no"`
	KotakAmalJumatTanggal time.Time `gorm:"column:kotak_amal_jumat_tanggal;type:date;not null" json:"kotak_amal_jumat_tanggal"`
	KotakAmalJumatJumlah  int64     `gorm:"column:kotak_amal_jumat_jumlah;not null;default:0" json:"kotak_amal_jumat_jumlah"`
	KotakAmalJumatTahun   int       `gorm:"column:kotak_amal_jumat_tahun;not null;index" json:"kotak_amal_jumat_tahun"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KotakAmalJumat) TableName() string {
	return "kotak_amal_jumats"
}
