package model

import (
	"time"

	"github.com/google/uuid"
)

// DonasiKhusus adalah donasi sekali jalan yang diniatkan untuk keperluan
// tertentu (keterangan), terikat tanggal.
type DonasiKhusus struct {
	DonasiKhususID uuid.UUID `gorm:"column:donasi_khusus_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donasi_khusus_id"`

	DonasiKhususNo         int       `gorm:"column:donasi_khusus_no;not null" json:"donasi_khusus_no"`
	DonasiKhususNama       string    `gorm:"column:donasi_khusus_nama;type:varchar(100);not null" json:"donasi_khusus_nama"`
	DonasiKhususTanggal    time.Time `gorm:"column:donasi_khusus_tanggal;type:date;not null" json:"donasi_khusus_tanggal"`
	DonasiKhususTahun      int       `gorm:"column:donasi_khusus_tahun;not null;index" json:"donasi_khusus_tahun"`
	DonasiKhususBulan      int       `gorm:"column:donasi_khusus_bulan;not null" json:"donasi_khusus_bulan"`
	DonasiKhususJumlah     int64     `gorm:"column:donasi_khusus_jumlah;not null;default:0" json:"donasi_khusus_jumlah"`
	DonasiKhususKeterangan string    `gorm:"column:donasi_khusus_keterangan;type:text" json:"donasi_khusus_keterangan"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DonasiKhusus) TableName() string {
	return "donasi_khusus"
}
