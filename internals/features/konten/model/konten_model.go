package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status konten mengikuti alur redaksi sederhana.
const (
	KontenStatusDraft     = "draft"
	KontenStatusReviewed  = "reviewed"
	KontenStatusPublished = "published"
	KontenStatusArchived  = "archived"
)

type Konten struct {
	KontenID        uuid.UUID      `gorm:"column:konten_id;type:uuid;default:gen_random_uuid();primaryKey" json:"konten_id"`
	KontenJudul     string         `gorm:"column:konten_judul;type:varchar(200);not null" json:"konten_judul"`
	KontenSlug      string         `gorm:"column:konten_slug;type:varchar(120);not null;uniqueIndex" json:"konten_slug"`
	KontenDeskripsi string         `gorm:"column:konten_deskripsi;type:text" json:"konten_deskripsi"`
	KontenTanggal   time.Time      `gorm:"column:konten_tanggal;type:date;not null" json:"konten_tanggal"`
	KontenWaktu     string         `gorm:"column:konten_waktu;type:varchar(30)" json:"konten_waktu"`
	KontenLokasi    string         `gorm:"column:konten_lokasi;type:varchar(150)" json:"konten_lokasi"`
	KontenPenulis   string         `gorm:"column:konten_penulis;type:varchar(100)" json:"konten_penulis"`
	KontenKategori  string         `gorm:"column:konten_kategori;type:varchar(100);index" json:"konten_kategori"`
	KontenStatus    string         `gorm:"column:konten_status;type:varchar(20);not null;default:'draft';index" json:"konten_status"`
	KontenDilihat   int            `gorm:"column:konten_dilihat;not null;default:0" json:"konten_dilihat"`
	KontenFotoURL   string         `gorm:"column:konten_foto_url;type:text" json:"konten_foto_url"`
	KontenTags      datatypes.JSON `gorm:"column:konten_tags;type:jsonb" json:"konten_tags,omitempty"`

	KontenTampilDiBeranda bool `gorm:"column:konten_tampil_di_beranda;not null;default:false" json:"konten_tampil_di_beranda"`
	KontenPenting         bool `gorm:"column:konten_penting;not null;default:false" json:"konten_penting"`

	DonaturID   *uuid.UUID `gorm:"column:konten_donatur_id;type:uuid" json:"konten_donatur_id,omitempty"`
	KotakAmalID *uuid.UUID `gorm:"column:konten_kotak_amal_id;type:uuid" json:"konten_kotak_amal_id,omitempty"`

	Gambar []KontenGambar `gorm:"foreignKey:KontenID;references:KontenID" json:"gambar,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Konten) TableName() string {
	return "kontens"
}

type KontenGambar struct {
	KontenGambarID     uuid.UUID `gorm:"column:konten_gambar_id;type:uuid;default:gen_random_uuid();primaryKey" json:"konten_gambar_id"`
	KontenID           uuid.UUID `gorm:"column:konten_gambar_konten_id;type:uuid;not null;index" json:"konten_gambar_konten_id"`
	KontenGambarURL    string    `gorm:"column:konten_gambar_url;type:text;not null" json:"konten_gambar_url"`
	KontenGambarUrutan int       `gorm:"column:konten_gambar_urutan;not null;default:0" json:"konten_gambar_urutan"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (KontenGambar) TableName() string {
	return "konten_gambars"
}

// ValidStatus memeriksa nilai status yang dikenal.
func ValidStatus(s string) bool {
	switch s {
	case KontenStatusDraft, KontenStatusReviewed, KontenStatusPublished, KontenStatusArchived:
		return true
	}
	return false
}
