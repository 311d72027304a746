package model

import "testing"

func TestDonaturTotal(t *testing.T) {
	d := Donatur{
		Jan: 100000, Feb: 100000, Mar: 150000,
		Jul: 200000, Des: 50000,
		Infaq: 75000,
	}

	if got := d.TotalBulanan(); got != 600000 {
		t.Errorf("TotalBulanan = %d, harusnya 600000", got)
	}
	if got := d.TotalSetahun(); got != 675000 {
		t.Errorf("TotalSetahun = %d, harusnya 675000", got)
	}

	bulanan := d.Bulanan()
	if bulanan[0] != 0 {
		t.Errorf("indeks 0 harus kosong, dapat %d", bulanan[0])
	}
	if bulanan[1] != 100000 || bulanan[7] != 200000 || bulanan[12] != 50000 {
		t.Errorf("pemetaan bulan salah: %v", bulanan)
	}

	var kosong Donatur
	if kosong.TotalSetahun() != 0 {
		t.Errorf("donatur kosong harus total 0")
	}
}
