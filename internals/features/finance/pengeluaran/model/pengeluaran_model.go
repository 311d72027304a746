package model

import (
	"time"

	"github.com/google/uuid"
)

type Pengeluaran struct {
	PengeluaranID         uuid.UUID `gorm:"column:pengeluaran_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pengeluaran_id"`
	PengeluaranNo         int       `gorm:"column:pengeluaran_no;not null" json:"pengeluaran_no"`
	PengeluaranNama       string    `gorm:"column:pengeluaran_nama;type:varchar(150);not null" json:"pengeluaran_nama"`
	PengeluaranTanggal    time.Time `gorm:"column:pengeluaran_tanggal;type:date;not null" json:"pengeluaran_tanggal"`
	PengeluaranTahun      int       `gorm:"column:pengeluaran_tahun;not null;index" json:"pengeluaran_tahun"`
	PengeluaranBulan      int       `gorm:"column:pengeluaran_bulan;not null" json:"pengeluaran_bulan"`
	PengeluaranJumlah     int64     `gorm:"column:pengeluaran_jumlah;not null;default:0" json:"pengeluaran_jumlah"`
	PengeluaranKategori   string    `gorm:"column:pengeluaran_kategori;type:varchar(100);not null;index" json:"pengeluaran_kategori"`
	PengeluaranKeterangan string    `gorm:"column:pengeluaran_keterangan;type:text" json:"pengeluaran_keterangan"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Pengeluaran) TableName() string {
	return "pengeluarans"
}
