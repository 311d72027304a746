package dto

import (
	"simasjid_backend/internals/features/finance/donatur/model"
)

type CreateDonaturRequest struct {
	Nama   string `json:"nama" validate:"required,max=100"`
	Alamat string `json:"alamat"`
	Tahun  int    `json:"tahun" validate:"required,gte=2000,lte=2100"`

	Jan int64 `json:"jan" validate:"gte=0"`
	Feb int64 `json:"feb" validate:"gte=0"`
	Mar int64 `json:"mar" validate:"gte=0"`
	Apr int64 `json:"apr" validate:"gte=0"`
	Mei int64 `json:"mei" validate:"gte=0"`
	Jun int64 `json:"jun" validate:"gte=0"`
	Jul int64 `json:"jul" validate:"gte=0"`
	Agu int64 `json:"agu" validate:"gte=0"`
	Sep int64 `json:"sep" validate:"gte=0"`
	Okt int64 `json:"okt" validate:"gte=0"`
	Nov int64 `json:"nov" validate:"gte=0"`
	Des int64 `json:"des" validate:"gte=0"`

	Infaq int64 `json:"infaq" validate:"gte=0"`
}

func (r *CreateDonaturRequest) ToModel(no int) model.Donatur {
	return model.Donatur{
		DonaturNo:     no,
		DonaturNama:   r.Nama,
		DonaturAlamat: r.Alamat,
		DonaturTahun:  r.Tahun,
		Jan:           r.Jan, Feb: r.Feb, Mar: r.Mar, Apr: r.Apr,
		Mei: r.Mei, Jun: r.Jun, Jul: r.Jul, Agu: r.Agu,
		Sep: r.Sep, Okt: r.Okt, Nov: r.Nov, Des: r.Des,
		Infaq: r.Infaq,
	}
}

// UpdateDonaturRequest: semua field opsional (partial update).
type UpdateDonaturRequest struct {
	Nama   *string `json:"nama" validate:"omitempty,max=100"`
	Alamat *string `json:"alamat"`
	Tahun  *int    `json:"tahun" validate:"omitempty,gte=2000,lte=2100"`

	Jan *int64 `json:"jan" validate:"omitempty,gte=0"`
	Feb *int64 `json:"feb" validate:"omitempty,gte=0"`
	Mar *int64 `json:"mar" validate:"omitempty,gte=0"`
	Apr *int64 `json:"apr" validate:"omitempty,gte=0"`
	Mei *int64 `json:"mei" validate:"omitempty,gte=0"`
	Jun *int64 `json:"jun" validate:"omitempty,gte=0"`
	Jul *int64 `json:"jul" validate:"omitempty,gte=0"`
	Agu *int64 `json:"agu" validate:"omitempty,gte=0"`
	Sep *int64 `json:"sep" validate:"omitempty,gte=0"`
	Okt *int64 `json:"okt" validate:"omitempty,gte=0"`
	Nov *int64 `json:"nov" validate:"omitempty,gte=0"`
	Des *int64 `json:"des" validate:"omitempty,gte=0"`

	Infaq *int64 `json:"infaq" validate:"omitempty,gte=0"`
}

// Apply menerapkan field yang terisi; pindahTahun true kalau update
// memindahkan baris ke scope tahun lain (nomor urut harus ditata ulang).
func (r *UpdateDonaturRequest) Apply(d *model.Donatur) (pindahTahun bool) {
	if r.Nama != nil {
		d.DonaturNama = *r.Nama
	}
	if r.Alamat != nil {
		d.DonaturAlamat = *r.Alamat
	}
	if r.Tahun != nil && *r.Tahun != d.DonaturTahun {
		d.DonaturTahun = *r.Tahun
		pindahTahun = true
	}
	setIf := func(dst *int64, src *int64) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&d.Jan, r.Jan)
	setIf(&d.Feb, r.Feb)
	setIf(&d.Mar, r.Mar)
	setIf(&d.Apr, r.Apr)
	setIf(&d.Mei, r.Mei)
	setIf(&d.Jun, r.Jun)
	setIf(&d.Jul, r.Jul)
	setIf(&d.Agu, r.Agu)
	setIf(&d.Sep, r.Sep)
	setIf(&d.Okt, r.Okt)
	setIf(&d.Nov, r.Nov)
	setIf(&d.Des, r.Des)
	setIf(&d.Infaq, r.Infaq)
	return pindahTahun
}

// TotalTahunanResponse untuk endpoint agregat tahunan.
type TotalTahunanResponse struct {
	Tahun        int   `json:"tahun"`
	JumlahRecord int   `json:"jumlah_record"`
	TotalBulanan int64 `json:"total_bulanan"`
	TotalInfaq   int64 `json:"total_infaq"`
	Total        int64 `json:"total"`
}

// BulananResponse untuk endpoint agregat per bulan.
type BulananResponse struct {
	Tahun int   `json:"tahun"`
	Bulan int   `json:"bulan"`
	Total int64 `json:"total"`
}
