package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"simasjid_backend/internals/constants"
	donasiKhususModel "simasjid_backend/internals/features/finance/donasi_khusus/model"
	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
)

func TestBuildRowsForDonatur_HanyaBulanTerisi(t *testing.T) {
	d := donaturModel.Donatur{
		DonaturID:    uuid.New(),
		DonaturNama:  "Pak Ahmad",
		DonaturTahun: 2025,
		Jan:          100000,
		Mei:          250000,
	}

	rows := BuildRowsForDonatur(&d)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	if rows[0].PemasukanBulan != 1 || rows[0].PemasukanJumlah != 100000 {
		t.Errorf("baris jan = bulan %d jumlah %d, want 1/100000", rows[0].PemasukanBulan, rows[0].PemasukanJumlah)
	}
	if rows[1].PemasukanBulan != 5 || rows[1].PemasukanJumlah != 250000 {
		t.Errorf("baris mei = bulan %d jumlah %d, want 5/250000", rows[1].PemasukanBulan, rows[1].PemasukanJumlah)
	}
	for _, r := range rows {
		if r.PemasukanSumber != constants.SumberDonatur {
			t.Errorf("sumber = %q, want %q", r.PemasukanSumber, constants.SumberDonatur)
		}
		if r.DonaturID == nil || *r.DonaturID != d.DonaturID {
			t.Errorf("donatur_id tidak terisi dengan benar")
		}
		if r.KotakAmalID != nil || r.KotakAmalMasjidID != nil || r.DonasiKhususID != nil {
			t.Errorf("FK selain donatur harus nil")
		}
		if r.PemasukanTahun != 2025 {
			t.Errorf("tahun = %d, want 2025", r.PemasukanTahun)
		}
	}
}

func TestBuildRowsForDonatur_InfaqJadiBarisSendiri(t *testing.T) {
	d := donaturModel.Donatur{
		DonaturID:    uuid.New(),
		DonaturNama:  "Bu Siti",
		DonaturTahun: 2025,
		Jan:          100000,
		Infaq:        50000,
	}

	rows := BuildRowsForDonatur(&d)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	infaq := rows[1]
	if infaq.PemasukanBulan != 0 {
		t.Errorf("bulan baris infaq = %d, want 0", infaq.PemasukanBulan)
	}
	if infaq.PemasukanJumlah != 50000 {
		t.Errorf("jumlah baris infaq = %d, want 50000", infaq.PemasukanJumlah)
	}
}

func TestBuildRowsForDonatur_KosongTanpaNominal(t *testing.T) {
	d := donaturModel.Donatur{DonaturID: uuid.New(), DonaturTahun: 2025}
	if rows := BuildRowsForDonatur(&d); len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

// Pembangun baris deterministik untuk sumber yang tidak berubah; inilah
// yang membuat sinkronisasi hapus-lalu-insert idempoten.
func TestBuildRowsForDonatur_Deterministik(t *testing.T) {
	d := donaturModel.Donatur{
		DonaturID:    uuid.New(),
		DonaturNama:  "Pak Budi",
		DonaturTahun: 2025,
		Feb:          75000,
		Des:          125000,
		Infaq:        10000,
	}

	first := BuildRowsForDonatur(&d)
	second := BuildRowsForDonatur(&d)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("dua kali build menghasilkan baris berbeda")
	}
}

func TestBuildRowsForDonasiKhusus_SatuBaris(t *testing.T) {
	tgl := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	d := donasiKhususModel.DonasiKhusus{
		DonasiKhususID:         uuid.New(),
		DonasiKhususNama:       "Hamba Allah",
		DonasiKhususTanggal:    tgl,
		DonasiKhususTahun:      2025,
		DonasiKhususBulan:      3,
		DonasiKhususJumlah:     50000,
		DonasiKhususKeterangan: "Renovasi tempat wudhu",
	}

	rows := BuildRowsForDonasiKhusus(&d)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.PemasukanSumber != constants.SumberDonasiKhusus {
		t.Errorf("sumber = %q, want %q", r.PemasukanSumber, constants.SumberDonasiKhusus)
	}
	if r.DonasiKhususID == nil || *r.DonasiKhususID != d.DonasiKhususID {
		t.Errorf("donasi_khusus_id tidak terisi dengan benar")
	}
	if r.PemasukanJumlah != 50000 {
		t.Errorf("jumlah = %d, want 50000", r.PemasukanJumlah)
	}
	if r.PemasukanBulan != 3 || r.PemasukanTahun != 2025 {
		t.Errorf("bulan/tahun = %d/%d, want 3/2025", r.PemasukanBulan, r.PemasukanTahun)
	}
	if !r.PemasukanTanggal.Equal(tgl) {
		t.Errorf("tanggal = %v, want %v", r.PemasukanTanggal, tgl)
	}
}
