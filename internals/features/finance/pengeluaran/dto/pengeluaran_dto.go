package dto

import (
	"time"
)

type CreatePengeluaranRequest struct {
	Nama       string `json:"nama" validate:"required,max=150"`
	Tanggal    string `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Jumlah     int64  `json:"jumlah" validate:"required,gt=0"`
	Kategori   string `json:"kategori" validate:"required,max=100"`
	Keterangan string `json:"keterangan"`
}

func (r *CreatePengeluaranRequest) ParseTanggal() (time.Time, error) {
	return time.Parse("2006-01-02", r.Tanggal)
}

type UpdatePengeluaranRequest struct {
	Nama       *string `json:"nama" validate:"omitempty,max=150"`
	Tanggal    *string `json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	Jumlah     *int64  `json:"jumlah" validate:"omitempty,gt=0"`
	Kategori   *string `json:"kategori" validate:"omitempty,max=100"`
	Keterangan *string `json:"keterangan"`
}

type RekapKategoriResponse struct {
	Kategori string `json:"kategori"`
	Jumlah   int    `json:"jumlah_record"`
	Total    int64  `json:"total"`
}

type TotalBulananResponse struct {
	Bulan     int    `json:"bulan"`
	NamaBulan string `json:"nama_bulan"`
	Total     int64  `json:"total"`
}
