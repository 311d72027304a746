package dto

import (
	"time"

	"simasjid_backend/internals/features/finance/kotak_amal/model"
)

type CreateKotakAmalRequest struct {
	Lokasi string `json:"lokasi" validate:"required,max=100"`
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

func (r *CreateKotakAmalRequest) ToModel(no int) model.KotakAmal {
	return model.KotakAmal{
		KotakAmalNo:     no,
		KotakAmalLokasi: r.Lokasi,
		KotakAmalTahun:  r.Tahun,
		Jan:             r.Jan, Feb: r.Feb, Mar: r.Mar, Apr: r.Apr,
		Mei: r.Mei, Jun: r.Jun, Jul: r.Jul, Agu: r.Agu,
		Sep: r.Sep, Okt: r.Okt, Nov: r.Nov, Des: r.Des,
		Infaq: r.Infaq,
	}
}

type UpdateKotakAmalRequest struct {
	Lokasi *string `json:"lokasi" validate:"omitempty,max=100"`
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

// Apply menerapkan field yang terisi; pindahTahun true kalau baris
// pindah scope tahun sehingga nomor urut harus ditata ulang.
func (r *UpdateKotakAmalRequest) Apply(k *model.KotakAmal) (pindahTahun bool) {
	if r.Lokasi != nil {
		k.KotakAmalLokasi = *r.Lokasi
	}
	if r.Tahun != nil && *r.Tahun != k.KotakAmalTahun {
		k.KotakAmalTahun = *r.Tahun
		pindahTahun = true
	}
	setIf := func(dst *int64, src *int64) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&k.Jan, r.Jan)
	setIf(&k.Feb, r.Feb)
	setIf(&k.Mar, r.Mar)
	setIf(&k.Apr, r.Apr)
	setIf(&k.Mei, r.Mei)
	setIf(&k.Jun, r.Jun)
	setIf(&k.Jul, r.Jul)
	setIf(&k.Agu, r.Agu)
	setIf(&k.Sep, r.Sep)
	setIf(&k.Okt, r.Okt)
	setIf(&k.Nov, r.Nov)
	setIf(&k.Des, r.Des)
	setIf(&k.Infaq, r.Infaq)
	return pindahTahun
}

// Request untuk kotak amal bertanggal (masjid & jumat).
type CreateKotakAmalHarianRequest struct {
	Tanggal string `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Jumlah  int64  `json:"jumlah" validate:"required,gt=0"`
}

func (r *CreateKotakAmalHarianRequest) ParseTanggal() (time.Time, error) {
	return time.Parse("2006-01-02", r.Tanggal)
}

type UpdateKotakAmalHarianRequest struct {
	Tanggal *string `json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	Jumlah  *int64  `json:"jumlah" validate:"omitempty,gt=0"`
}

type TotalTahunanResponse struct {
	Tahun        int   `json:"tahun"`
	JumlahRecord int   `json:"jumlah_record"`
	Total        int64 `json:"total"`
}

type BulananResponse struct {
	Tahun int   `json:"tahun"`
	Bulan int   `json:"bulan"`
	Total int64 `json:"total"`
}
