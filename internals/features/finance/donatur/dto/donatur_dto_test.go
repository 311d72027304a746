package dto

import (
	"testing"

	"simasjid_backend/internals/features/finance/donatur/model"
)

func ptrInt(v int) *int       { return &v }
func ptrInt64(v int64) *int64 { return &v }

func TestUpdateDonaturApply_PindahTahun(t *testing.T) {
	d := model.Donatur{DonaturNo: 3, DonaturTahun: 2024, Jan: 100000}

	req := UpdateDonaturRequest{Tahun: ptrInt(2025)}
	if !req.Apply(&d) {
		t.Fatalf("update tahun 2024 -> 2025 harus terdeteksi pindah scope")
	}
	if d.DonaturTahun != 2025 {
		t.Errorf("tahun = %d, harusnya 2025", d.DonaturTahun)
	}
	// Nomor urut baru diambil controller di scope tujuan, Apply tidak menyentuhnya.
	if d.DonaturNo != 3 {
		t.Errorf("no tidak boleh diubah Apply, dapat %d", d.DonaturNo)
	}
}

func TestUpdateDonaturApply_TahunSama(t *testing.T) {
	d := model.Donatur{DonaturNo: 3, DonaturTahun: 2024}

	req := UpdateDonaturRequest{Tahun: ptrInt(2024), Feb: ptrInt64(250000)}
	if req.Apply(&d) {
		t.Fatalf("tahun tidak berubah, tidak boleh dianggap pindah scope")
	}
	if d.Feb != 250000 {
		t.Errorf("feb = %d, harusnya 250000", d.Feb)
	}
}

func TestUpdateDonaturApply_TanpaTahun(t *testing.T) {
	d := model.Donatur{DonaturTahun: 2024, Jan: 100000}

	nama := "Hamba Allah"
	req := UpdateDonaturRequest{Nama: &nama}
	if req.Apply(&d) {
		t.Fatalf("update tanpa field tahun tidak boleh dianggap pindah scope")
	}
	if d.DonaturNama != "Hamba Allah" || d.DonaturTahun != 2024 || d.Jan != 100000 {
		t.Errorf("field lain tidak boleh ikut berubah: %+v", d)
	}
}
