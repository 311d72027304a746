package dto

import (
	"time"
)

// Form values, bukan JSON: inventaris dibuat lewat multipart agar foto bisa
// ikut dalam satu request.
type CreateInventarisRequest struct {
	Nama         string `form:"nama" validate:"required,max=150"`
	Kategori     string `form:"kategori" validate:"required,max=100"`
	Kondisi      string `form:"kondisi" validate:"required,max=50"`
	Jumlah       int    `form:"jumlah" validate:"required,gt=0"`
	Satuan       string `form:"satuan" validate:"omitempty,max=30"`
	Lokasi       string `form:"lokasi" validate:"omitempty,max=150"`
	TanggalMasuk string `form:"tanggal_masuk" validate:"required,datetime=2006-01-02"`
}

func (r *CreateInventarisRequest) ParseTanggalMasuk() (time.Time, error) {
	return time.Parse("2006-01-02", r.TanggalMasuk)
}

type UpdateInventarisRequest struct {
	Nama         *string `form:"nama" validate:"omitempty,max=150"`
	Kategori     *string `form:"kategori" validate:"omitempty,max=100"`
	Kondisi      *string `form:"kondisi" validate:"omitempty,max=50"`
	Jumlah       *int    `form:"jumlah" validate:"omitempty,gt=0"`
	Satuan       *string `form:"satuan" validate:"omitempty,max=30"`
	Lokasi       *string `form:"lokasi" validate:"omitempty,max=150"`
	TanggalMasuk *string `form:"tanggal_masuk" validate:"omitempty,datetime=2006-01-02"`
}
