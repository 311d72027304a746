package dto

import (
	"time"
)

type CreateKontenRequest struct {
	Judul           string   `form:"judul" json:"judul" validate:"required,max=200"`
	Deskripsi       string   `form:"deskripsi" json:"deskripsi"`
	Tanggal         string   `form:"tanggal" json:"tanggal" validate:"required,datetime=2006-01-02"`
	Waktu           string   `form:"waktu" json:"waktu" validate:"omitempty,max=30"`
	Lokasi          string   `form:"lokasi" json:"lokasi" validate:"omitempty,max=150"`
	Penulis         string   `form:"penulis" json:"penulis" validate:"omitempty,max=100"`
	Kategori        string   `form:"kategori" json:"kategori" validate:"omitempty,max=100"`
	Status          string   `form:"status" json:"status" validate:"omitempty,oneof=draft reviewed published archived"`
	TampilDiBeranda bool     `form:"tampil_di_beranda" json:"tampil_di_beranda"`
	Penting         bool     `form:"penting" json:"penting"`
	DonaturID       string   `form:"donatur_id" json:"donatur_id" validate:"omitempty,uuid4"`
	KotakAmalID     string   `form:"kotak_amal_id" json:"kotak_amal_id" validate:"omitempty,uuid4"`
	Tags            []string `form:"tags" json:"tags"`
}

func (r *CreateKontenRequest) ParseTanggal() (time.Time, error) {
	return time.Parse("2006-01-02", r.Tanggal)
}

type UpdateKontenRequest struct {
	Judul           *string  `form:"judul" json:"judul" validate:"omitempty,max=200"`
	Deskripsi       *string  `form:"deskripsi" json:"deskripsi"`
	Tanggal         *string  `form:"tanggal" json:"tanggal" validate:"omitempty,datetime=2006-01-02"`
	Waktu           *string  `form:"waktu" json:"waktu" validate:"omitempty,max=30"`
	Lokasi          *string  `form:"lokasi" json:"lokasi" validate:"omitempty,max=150"`
	Penulis         *string  `form:"penulis" json:"penulis" validate:"omitempty,max=100"`
	Kategori        *string  `form:"kategori" json:"kategori" validate:"omitempty,max=100"`
	Status          *string  `form:"status" json:"status" validate:"omitempty,oneof=draft reviewed published archived"`
	TampilDiBeranda *bool    `form:"tampil_di_beranda" json:"tampil_di_beranda"`
	Penting         *bool    `form:"penting" json:"penting"`
	DonaturID       *string  `form:"donatur_id" json:"donatur_id" validate:"omitempty,uuid4"`
	KotakAmalID     *string  `form:"kotak_amal_id" json:"kotak_amal_id" validate:"omitempty,uuid4"`
	Tags            []string `form:"tags" json:"tags"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft reviewed published archived"`
}
