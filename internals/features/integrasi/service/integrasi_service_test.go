package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"simasjid_backend/internals/constants"
	donasiModel "simasjid_backend/internals/features/finance/donasi_khusus/model"
	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
	kotakAmalModel "simasjid_backend/internals/features/finance/kotak_amal/model"
)

func TestMerge_SatuDonatur(t *testing.T) {
	id := uuid.New()
	donaturs := []donaturModel.Donatur{
		{DonaturID: id, DonaturNama: "Pak Ahmad", DonaturTahun: 2025, Jan: 100000},
	}

	rows := Merge(donaturs, nil, nil, nil, nil, 2025)
	if len(rows) != 1 {
		t.Fatalf("jumlah baris = %d, harusnya 1", len(rows))
	}
	r := rows[0]
	if r.SourceType != constants.TipeDonatur || r.SourceID != id {
		t.Errorf("penanda sumber salah: %s %s", r.SourceType, r.SourceID)
	}
	if r.Bulanan[1] != 100000 || r.Total != 100000 {
		t.Errorf("jan = %d, total = %d, harusnya 100000", r.Bulanan[1], r.Total)
	}
}

func TestMerge_MasjidJumatDijumlahkanPerBulan(t *testing.T) {
	masjid := []kotakAmalModel.KotakAmalMasjid{
		{KotakAmalMasjidTanggal: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), KotakAmalMasjidTahun: 2025, KotakAmalMasjidJumlah: 20000},
		{KotakAmalMasjidTanggal: time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), KotakAmalMasjidTahun: 2025, KotakAmalMasjidJumlah: 30000},
	}
	jumat := []kotakAmalModel.KotakAmalJumat{
		{KotakAmalJumatTanggal: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), KotakAmalJumatTahun: 2025, KotakAmalJumatJumlah: 15000},
	}

	rows := Merge(nil, nil, masjid, jumat, nil, 2025)
	if len(rows) != 2 {
		t.Fatalf("jumlah baris = %d, harusnya 2 baris sintetis", len(rows))
	}

	m := FindBySource(rows, constants.TipeKotakAmalMasjid, uuid.Nil)
	if m == nil || m.Bulanan[3] != 50000 || m.Total != 50000 {
		t.Errorf("baris masjid = %+v", m)
	}
	j := FindBySource(rows, constants.TipeKotakAmalJumat, uuid.Nil)
	if j == nil || j.Bulanan[3] != 15000 {
		t.Errorf("baris jumat = %+v", j)
	}
}

func TestMerge_DonasiKhususDikelompokkan(t *testing.T) {
	donasi := []donasiModel.DonasiKhusus{
		{DonasiKhususID: uuid.New(), DonasiKhususNama: "Hamba Allah", DonasiKhususKeterangan: "Renovasi", DonasiKhususTahun: 2025, DonasiKhususBulan: 2, DonasiKhususJumlah: 500000},
		{DonasiKhususID: uuid.New(), DonasiKhususNama: "Hamba Allah", DonasiKhususKeterangan: "Renovasi", DonasiKhususTahun: 2025, DonasiKhususBulan: 4, DonasiKhususJumlah: 250000},
		{DonasiKhususID: uuid.New(), DonasiKhususNama: "Hamba Allah", DonasiKhususKeterangan: "Karpet", DonasiKhususTahun: 2025, DonasiKhususBulan: 4, DonasiKhususJumlah: 100000},
	}

	rows := Merge(nil, nil, nil, nil, donasi, 2025)
	if len(rows) != 2 {
		t.Fatalf("jumlah baris = %d, harusnya 2 grup (nama, keterangan)", len(rows))
	}
	var renovasi *UnifiedRow
	for i := range rows {
		if rows[i].Bulanan[2] == 500000 {
			renovasi = &rows[i]
		}
	}
	if renovasi == nil {
		t.Fatal("grup Renovasi tidak ditemukan")
	}
	if renovasi.Bulanan[4] != 250000 || renovasi.Total != 750000 {
		t.Errorf("grup Renovasi = %+v", renovasi)
	}
}

func TestApplyEdit(t *testing.T) {
	id := uuid.New()
	donaturs := []donaturModel.Donatur{
		{DonaturID: id, DonaturNama: "Bu Siti", DonaturTahun: 2025, Jan: 100000},
	}

	edit := UnifiedRow{SourceType: constants.TipeDonatur, SourceID: id}
	edit.Bulanan[1] = 150000
	edit.Bulanan[2] = 200000
	edit.Infaq = 50000

	if !ApplyEdit(edit, donaturs, nil) {
		t.Fatal("ApplyEdit harusnya menemukan donatur dan mengubahnya")
	}
	if donaturs[0].Jan != 150000 || donaturs[0].Feb != 200000 || donaturs[0].Infaq != 50000 {
		t.Errorf("record donatur sesudah edit = %+v", donaturs[0])
	}

	// Tipe selain donatur / kotak amal luar tidak mengubah apa pun.
	edit.SourceType = constants.TipeKotakAmalMasjid
	if ApplyEdit(edit, donaturs, nil) {
		t.Error("tipe masjid tidak boleh mengubah record mana pun")
	}
}
