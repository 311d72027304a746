package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	VisiMisiKategoriVisi = "visi"
	VisiMisiKategoriMisi = "misi"
)

type VisiMisi struct {
	VisiMisiID       uuid.UUID `gorm:"column:visi_misi_id;type:uuid;default:gen_random_uuid();primaryKey" json:"visi_misi_id"`
	VisiMisiNo       int       `gorm:"column:visi_misi_no;not null" json:"visi_misi_no"`
	VisiMisiKategori string    `gorm:"column:visi_misi_kategori;type:varchar(10);not null;index" json:"visi_misi_kategori"`
	VisiMisiIsi      string    `gorm:"column:visi_misi_isi;type:text;not null" json:"visi_misi_isi"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (VisiMisi) TableName() string {
	return "visi_misis"
}
