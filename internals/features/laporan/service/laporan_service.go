package service

import (
	"math"
	"math/rand"
	"time"

	"simasjid_backend/internals/constants"
	kotakAmalModel "simasjid_backend/internals/features/finance/kotak_amal/model"
	pemasukanModel "simasjid_backend/internals/features/finance/pemasukan/model"
	"simasjid_backend/internals/features/laporan/dto"
)

// Growth menghitung persentase pertumbuhan periode berjalan terhadap periode
// sebelumnya, dibulatkan satu desimal. Saat periode sebelumnya nol, hasilnya
// tepat 100 bila ada nilai baru dan 0 bila keduanya nol.
func Growth(prev, cur int64) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	pct := float64(cur-prev) / float64(prev) * 100
	return math.Round(pct*10) / 10
}

var tipeUntukSumber = map[string]string{
	constants.SumberDonatur:         constants.TipeDonatur,
	constants.SumberKotakAmalLuar:   constants.TipeKotakAmalLuar,
	constants.SumberKotakAmalMasjid: constants.TipeKotakAmalMasjid,
	constants.SumberDonasiKhusus:    constants.TipeDonasiKhusus,
}

var urutanTipe = []struct {
	Tipe   string
	Sumber string
}{
	{constants.TipeDonatur, constants.SumberDonatur},
	{constants.TipeKotakAmalLuar, constants.SumberKotakAmalLuar},
	{constants.TipeKotakAmalMasjid, constants.SumberKotakAmalMasjid},
	{constants.TipeKotakAmalJumat, constants.SumberKotakAmalJumat},
	{constants.TipeDonasiKhusus, constants.SumberDonasiKhusus},
}

// BuildRekapPemasukan merangkum baris pemasukan satu tahun menjadi satu baris
// per tipe sumber. Kotak amal jumat tidak masuk buku besar pemasukan, sehingga
// barisnya dihitung langsung dari tabelnya. Baris infaq (bulan 0) hanya masuk
// total, tidak punya kolom bulan. Tipe tanpa nominal sama sekali tidak
// menghasilkan baris.
func BuildRekapPemasukan(rows []pemasukanModel.Pemasukan, jumat []kotakAmalModel.KotakAmalJumat, tahun int) []dto.RekapPemasukanRow {
	perTipe := make(map[string]*dto.RekapPemasukanRow, len(urutanTipe))
	for _, u := range urutanTipe {
		perTipe[u.Tipe] = &dto.RekapPemasukanRow{Tipe: u.Tipe, Sumber: u.Sumber}
	}

	for i := range rows {
		r := &rows[i]
		tipe, ok := tipeUntukSumber[r.PemasukanSumber]
		if !ok {
			continue
		}
		rekap := perTipe[tipe]
		rekap.Total += r.PemasukanJumlah
		if r.PemasukanBulan >= 1 && r.PemasukanBulan <= 12 {
			rekap.Bulanan[r.PemasukanBulan-1] += r.PemasukanJumlah
		}
	}

	rekapJumat := perTipe[constants.TipeKotakAmalJumat]
	for i := range jumat {
		j := &jumat[i]
		if j.KotakAmalJumatTahun != tahun {
			continue
		}
		bulan := int(j.KotakAmalJumatTanggal.Month())
		rekapJumat.Bulanan[bulan-1] += j.KotakAmalJumatJumlah
		rekapJumat.Total += j.KotakAmalJumatJumlah
	}

	out := make([]dto.RekapPemasukanRow, 0, len(urutanTipe))
	for _, u := range urutanTipe {
		if rekap := perTipe[u.Tipe]; rekap.Total != 0 {
			out = append(out, *rekap)
		}
	}
	return out
}

// PreviousFriday mengembalikan hari Jumat terakhir sebelum tanggal t.
func PreviousFriday(t time.Time) time.Time {
	d := t.AddDate(0, 0, -1)
	for d.Weekday() != time.Friday {
		d = d.AddDate(0, 0, -1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// KotakAmalLuarBulanIni masih angka acak sebagai placeholder tampilan.
// TODO: ganti dengan penjumlahan kolom bulan berjalan dari tabel kotak_amals
// begitu alur input bulanannya dipakai rutin oleh bendahara.
func KotakAmalLuarBulanIni() int64 {
	return int64(rand.Intn(500)+100) * 1000
}
