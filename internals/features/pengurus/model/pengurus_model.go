package model

import (
	"time"

	"github.com/google/uuid"
)

type Pengurus struct {
	PengurusID       uuid.UUID `gorm:"column:pengurus_id;type:uuid;default:gen_random_uuid();primaryKey" json:"pengurus_id"`
	PengurusNo       int       `gorm:"column:pengurus_no;not null" json:"pengurus_no"`
	PengurusNama     string    `gorm:"column:pengurus_nama;type:varchar(150);not null" json:"pengurus_nama"`
	PengurusJabatan  string    `gorm:"column:pengurus_jabatan;type:varchar(100);not null" json:"pengurus_jabatan"`
	PengurusPeriode  string    `gorm:"column:pengurus_periode;type:varchar(30);not null" json:"pengurus_periode"`
	PengurusKategori string    `gorm:"column:pengurus_kategori;type:varchar(100);not null;index" json:"pengurus_kategori"`
	PengurusFotoURL  string    `gorm:"column:pengurus_foto_url;type:text" json:"pengurus_foto_url"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Pengurus) TableName() string {
	return "pengurus"
}
