package dto

import (
	"testing"

	"simasjid_backend/internals/features/finance/kotak_amal/model"
)

func TestUpdateKotakAmalApply_PindahTahun(t *testing.T) {
	tahun := 2025
	k := model.KotakAmal{KotakAmalNo: 2, KotakAmalTahun: 2024, Mar: 50000}

	req := UpdateKotakAmalRequest{Tahun: &tahun}
	if !req.Apply(&k) {
		t.Fatalf("update tahun 2024 -> 2025 harus terdeteksi pindah scope")
	}
	if k.KotakAmalTahun != 2025 || k.Mar != 50000 {
		t.Errorf("hasil apply salah: %+v", k)
	}
}

func TestUpdateKotakAmalApply_TahunSama(t *testing.T) {
	tahun := 2024
	lokasi := "Warung Bu Siti"
	k := model.KotakAmal{KotakAmalTahun: 2024}

	req := UpdateKotakAmalRequest{Tahun: &tahun, Lokasi: &lokasi}
	if req.Apply(&k) {
		t.Fatalf("tahun tidak berubah, tidak boleh dianggap pindah scope")
	}
	if k.KotakAmalLokasi != "Warung Bu Siti" {
		t.Errorf("lokasi = %q", k.KotakAmalLokasi)
	}
}
