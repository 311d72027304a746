package service

import (
	"testing"
	"time"

	"simasjid_backend/internals/constants"
	kotakAmalModel "simasjid_backend/internals/features/finance/kotak_amal/model"
	pemasukanModel "simasjid_backend/internals/features/finance/pemasukan/model"
)

func TestGrowth(t *testing.T) {
	tests := []struct {
		nama string
		prev int64
		cur  int64
		want float64
	}{
		{"sebelumnya nol, ada nilai baru", 0, 250000, 100},
		{"keduanya nol", 0, 0, 0},
		{"naik dua kali lipat", 50, 100, 100.0},
		{"tidak berubah", 75000, 75000, 0},
		{"turun setengah", 100000, 50000, -50},
		{"pembulatan satu desimal", 30000, 40000, 33.3},
	}
	for _, tc := range tests {
		if got := Growth(tc.prev, tc.cur); got != tc.want {
			t.Errorf("%s: Growth(%d, %d) = %v, harusnya %v", tc.nama, tc.prev, tc.cur, got, tc.want)
		}
	}
}

func TestBuildRekapPemasukan(t *testing.T) {
	rows := []pemasukanModel.Pemasukan{
		{PemasukanSumber: constants.SumberDonatur, PemasukanBulan: 1, PemasukanTahun: 2025, PemasukanJumlah: 100000},
		{PemasukanSumber: constants.SumberDonatur, PemasukanBulan: 3, PemasukanTahun: 2025, PemasukanJumlah: 200000},
		{PemasukanSumber: constants.SumberDonatur, PemasukanBulan: 0, PemasukanTahun: 2025, PemasukanJumlah: 50000}, // infaq
		{PemasukanSumber: constants.SumberDonasiKhusus, PemasukanBulan: 6, PemasukanTahun: 2025, PemasukanJumlah: 75000},
	}
	jumat := []kotakAmalModel.KotakAmalJumat{
		{KotakAmalJumatTanggal: time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC), KotakAmalJumatTahun: 2025, KotakAmalJumatJumlah: 30000},
		{KotakAmalJumatTanggal: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), KotakAmalJumatTahun: 2025, KotakAmalJumatJumlah: 40000},
		{KotakAmalJumatTanggal: time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC), KotakAmalJumatTahun: 2024, KotakAmalJumatJumlah: 99999}, // tahun lain, diabaikan
	}

	rekap := BuildRekapPemasukan(rows, jumat, 2025)
	if len(rekap) != 3 {
		t.Fatalf("jumlah baris rekap = %d, harusnya 3 (tipe tanpa nominal tidak muncul)", len(rekap))
	}

	byTipe := make(map[string]int)
	for i, r := range rekap {
		byTipe[r.Tipe] = i
	}

	donatur := rekap[byTipe[constants.TipeDonatur]]
	if donatur.Bulanan[0] != 100000 || donatur.Bulanan[2] != 200000 {
		t.Errorf("kolom bulanan donatur = %v", donatur.Bulanan)
	}
	if donatur.Total != 350000 {
		t.Errorf("total donatur = %d, harusnya 350000 (termasuk infaq)", donatur.Total)
	}

	jmt := rekap[byTipe[constants.TipeKotakAmalJumat]]
	if jmt.Bulanan[1] != 70000 || jmt.Total != 70000 {
		t.Errorf("rekap kotak amal jumat = %+v", jmt)
	}

	dk := rekap[byTipe[constants.TipeDonasiKhusus]]
	if dk.Bulanan[5] != 75000 || dk.Total != 75000 {
		t.Errorf("rekap donasi khusus = %+v", dk)
	}
}

func TestPreviousFriday(t *testing.T) {
	// 2025-08-29 adalah Jumat; Jumat sebelumnya 2025-08-22.
	jumat := time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC)
	got := PreviousFriday(jumat)
	if got.Format("2006-01-02") != "2025-08-22" {
		t.Errorf("PreviousFriday(%s) = %s", jumat.Format("2006-01-02"), got.Format("2006-01-02"))
	}

	// Dari hari Senin, mundur ke Jumat pekan yang sama.
	senin := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	got = PreviousFriday(senin)
	if got.Format("2006-01-02") != "2025-08-29" {
		t.Errorf("PreviousFriday(%s) = %s", senin.Format("2006-01-02"), got.Format("2006-01-02"))
	}
}
