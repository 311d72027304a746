package dto

import (
	"time"
)

type CreateDonasiKhususRequest struct {
	Nama       string `json:"nama" validate:"required,max=100"`
	Tanggal    string `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Jumlah     int64  `json:"jumlah" validate:"required,gt=0"`
	Keterangan string `json:"keterangan"`
}

func (r *CreateDonasiKhususRequest) ParseTanggal() (time.Time, error) {
	return time.Parse("2006-01-02", r.Tanggal)
}

type UpdateDonasiKhususRequest struct {
	Nama       *string `json:"nama" validate:"omitempty,max=100"`
	Tanggal    *string `json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	Jumlah     *int64  `json:"jumlah" validate:"omitempty,gt=0"`
	Keterangan *string `json:"keterangan"`
}

type TotalTahunanResponse struct {
	Tahun        int   `json:"tahun"`
	JumlahRecord int   `json:"jumlah_record"`
	Total        int64 `json:"total"`
}

type TotalBulananResponse struct {
	Bulan     int    `json:"bulan"`
	NamaBulan string `json:"nama_bulan"`
	Total     int64  `json:"total"`
}
