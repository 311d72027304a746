package service

import (
	"encoding/csv"
	"strconv"
	"strings"
	"testing"

	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
)

func TestBuildDonaturCSV_BarisTotal(t *testing.T) {
	donaturs := []donaturModel.Donatur{
		{DonaturNo: 1, DonaturNama: "Pak Ahmad", Jan: 100000, Feb: 50000, Infaq: 25000},
		{DonaturNo: 2, DonaturNama: "Bu Siti", Jan: 200000},
	}

	out := BuildDonaturCSV(donaturs, 2025)
	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("hasil CSV tidak bisa diparse: %v", err)
	}

	// judul + header + 2 donatur + total
	if len(records) != 5 {
		t.Fatalf("jumlah baris = %d, harusnya 5", len(records))
	}

	totalRow := records[len(records)-1]
	if totalRow[1] != "Total" {
		t.Fatalf("baris terakhir bukan baris total: %v", totalRow)
	}
	// kolom Jan = indeks 3, total keseluruhan = kolom terakhir
	if totalRow[3] != "300000" {
		t.Errorf("total Jan = %s, harusnya 300000", totalRow[3])
	}
	wantTotal := int64(100000 + 50000 + 25000 + 200000)
	if totalRow[len(totalRow)-1] != strconv.FormatInt(wantTotal, 10) {
		t.Errorf("total keseluruhan = %s, harusnya %d", totalRow[len(totalRow)-1], wantTotal)
	}
}

func TestBuildDonaturCSV_TanpaData(t *testing.T) {
	out := BuildDonaturCSV(nil, 2025)
	if !strings.Contains(out, "Daftar Donatur 2025") {
		t.Error("judul tahun tidak muncul")
	}
	if !strings.Contains(out, "Total") {
		t.Error("baris total harus tetap ada meski data kosong")
	}
}
