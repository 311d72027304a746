package model

import (
	"time"

	"github.com/google/uuid"
)

type Inventaris struct {
	InventarisID           uuid.UUID `gorm:"column:inventaris_id;type:uuid;default:gen_random_uuid();primaryKey" json:"inventaris_id"`
	InventarisNo           int       `gorm:"column:inventaris_no;not null" json:"inventaris_no"`
	InventarisNama         string    `gorm:"column:inventaris_nama;type:varchar(150);not null" json:"inventaris_nama"`
	InventarisKategori     string    `gorm:"column:inventaris_kategori;type:varchar(100);not null" json:"inventaris_kategori"`
	InventarisKondisi      string    `gorm:"column:inventaris_kondisi;type:varchar(50);not null" json:"inventaris_kondisi"`
	InventarisJumlah       int       `gorm:"column:inventaris_jumlah;not null;default:1" json:"inventaris_jumlah"`
	InventarisSatuan       string    `gorm:"column:inventaris_satuan;type:varchar(30)" json:"inventaris_satuan"`
	InventarisLokasi       string    `gorm:"column:inventaris_lokasi;type:varchar(150)" json:"inventaris_lokasi"`
	InventarisFotoURL      string    `gorm:"column:inventaris_foto_url;type:text" json:"inventaris_foto_url"`
	InventarisTanggalMasuk time.Time `gorm:"column:inventaris_tanggal_masuk;type:date;not null" json:"inventaris_tanggal_masuk"`
	InventarisTahun        int       `gorm:"column:inventaris_tahun;not null;index" json:"inventaris_tahun"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Inventaris) TableName() string {
	return "inventaris"
}
