package service

import (
	"github.com/google/uuid"

	"simasjid_backend/internals/constants"
	donasiModel "simasjid_backend/internals/features/finance/donasi_khusus/model"
	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
	kotakAmalModel "simasjid_backend/internals/features/finance/kotak_amal/model"
)

// UnifiedRow adalah satu baris riwayat tahunan gabungan: 12 kolom bulan
// (indeks 1..12), infaq, dan total, dengan penanda tipe + id sumbernya.
// Baris sintetis (masjid, jumat) memakai id nol.
type UnifiedRow struct {
	Nama       string    `json:"nama"`
	SourceType string    `json:"source_type"`
	SourceID   uuid.UUID `json:"source_id"`
	Tahun      int       `json:"tahun"`
	Bulanan    [13]int64 `json:"bulanan"`
	Infaq      int64     `json:"infaq"`
	Total      int64     `json:"total"`
}

func (r *UnifiedRow) hitungTotal() {
	r.Total = r.Infaq
	for b := 1; b <= 12; b++ {
		r.Total += r.Bulanan[b]
	}
}

// Merge menggabungkan lima sumber pemasukan menjadi satu daftar baris
// tahunan. Donatur dan kotak amal luar menjadi satu baris per record;
// setoran masjid dan jumat dijumlahkan per bulan menjadi satu baris
// sintetis masing-masing; donasi khusus dikelompokkan per (nama,
// keterangan) dengan nominal ditempatkan di kolom bulannya.
func Merge(
	donaturs []donaturModel.Donatur,
	kotakAmals []kotakAmalModel.KotakAmal,
	masjid []kotakAmalModel.KotakAmalMasjid,
	jumat []kotakAmalModel.KotakAmalJumat,
	donasiKhusus []donasiModel.DonasiKhusus,
	tahun int,
) []UnifiedRow {
	out := make([]UnifiedRow, 0, len(donaturs)+len(kotakAmals)+len(donasiKhusus)+2)

	for i := range donaturs {
		d := &donaturs[i]
		if d.DonaturTahun != tahun {
			continue
		}
		row := UnifiedRow{
			Nama:       d.DonaturNama,
			SourceType: constants.TipeDonatur,
			SourceID:   d.DonaturID,
			Tahun:      tahun,
			Bulanan:    d.Bulanan(),
			Infaq:      d.Infaq,
		}
		row.hitungTotal()
		out = append(out, row)
	}

	for i := range kotakAmals {
		k := &kotakAmals[i]
		if k.KotakAmalTahun != tahun {
			continue
		}
		row := UnifiedRow{
			Nama:       k.KotakAmalLokasi,
			SourceType: constants.TipeKotakAmalLuar,
			SourceID:   k.KotakAmalID,
			Tahun:      tahun,
			Bulanan:    k.Bulanan(),
			Infaq:      k.Infaq,
		}
		row.hitungTotal()
		out = append(out, row)
	}

	rowMasjid := UnifiedRow{
		Nama:       constants.SumberKotakAmalMasjid,
		SourceType: constants.TipeKotakAmalMasjid,
		Tahun:      tahun,
	}
	for i := range masjid {
		m := &masjid[i]
		if m.KotakAmalMasjidTahun != tahun {
			continue
		}
		rowMasjid.Bulanan[int(m.KotakAmalMasjidTanggal.Month())] += m.KotakAmalMasjidJumlah
	}
	rowMasjid.hitungTotal()
	if rowMasjid.Total != 0 {
		out = append(out, rowMasjid)
	}

	rowJumat := UnifiedRow{
		Nama:       constants.SumberKotakAmalJumat,
		SourceType: constants.TipeKotakAmalJumat,
		Tahun:      tahun,
	}
	for i := range jumat {
		j := &jumat[i]
		if j.KotakAmalJumatTahun != tahun {
			continue
		}
		rowJumat.Bulanan[int(j.KotakAmalJumatTanggal.Month())] += j.KotakAmalJumatJumlah
	}
	rowJumat.hitungTotal()
	if rowJumat.Total != 0 {
		out = append(out, rowJumat)
	}

	type kunciDonasi struct {
		nama       string
		keterangan string
	}
	grup := make(map[kunciDonasi]int)
	for i := range donasiKhusus {
		dk := &donasiKhusus[i]
		if dk.DonasiKhususTahun != tahun {
			continue
		}
		key := kunciDonasi{dk.DonasiKhususNama, dk.DonasiKhususKeterangan}
		idx, ok := grup[key]
		if !ok {
			out = append(out, UnifiedRow{
				Nama:       dk.DonasiKhususNama,
				SourceType: constants.TipeDonasiKhusus,
				SourceID:   dk.DonasiKhususID,
				Tahun:      tahun,
			})
			idx = len(out) - 1
			grup[key] = idx
		}
		if b := dk.DonasiKhususBulan; b >= 1 && b <= 12 {
			out[idx].Bulanan[b] += dk.DonasiKhususJumlah
		}
	}
	for _, idx := range grup {
		out[idx].hitungTotal()
	}

	return out
}

// FindBySource mencari baris gabungan berdasarkan tipe dan id sumbernya.
func FindBySource(rows []UnifiedRow, sourceType string, sourceID uuid.UUID) *UnifiedRow {
	for i := range rows {
		if rows[i].SourceType == sourceType && rows[i].SourceID == sourceID {
			return &rows[i]
		}
	}
	return nil
}

// ApplyEdit memetakan hasil suntingan baris gabungan kembali ke record
// sumbernya. Hanya donatur dan kotak amal luar yang bisa disunting dari
// tampilan gabungan; tipe lain diterima tapi tidak mengubah apa pun.
// Mengembalikan true bila ada record yang berubah.
func ApplyEdit(row UnifiedRow, donaturs []donaturModel.Donatur, kotakAmals []kotakAmalModel.KotakAmal) bool {
	switch row.SourceType {
	case constants.TipeDonatur:
		for i := range donaturs {
			d := &donaturs[i]
			if d.DonaturID != row.SourceID {
				continue
			}
			d.Jan, d.Feb, d.Mar, d.Apr = row.Bulanan[1], row.Bulanan[2], row.Bulanan[3], row.Bulanan[4]
			d.Mei, d.Jun, d.Jul, d.Agu = row.Bulanan[5], row.Bulanan[6], row.Bulanan[7], row.Bulanan[8]
			d.Sep, d.Okt, d.Nov, d.Des = row.Bulanan[9], row.Bulanan[10], row.Bulanan[11], row.Bulanan[12]
			d.Infaq = row.Infaq
			return true
		}
	case constants.TipeKotakAmalLuar:
		for i := range kotakAmals {
			k := &kotakAmals[i]
			if k.KotakAmalID != row.SourceID {
				continue
			}
			k.Jan, k.Feb, k.Mar, k.Apr = row.Bulanan[1], row.Bulanan[2], row.Bulanan[3], row.Bulanan[4]
			k.Mei, k.Jun, k.Jul, k.Agu = row.Bulanan[5], row.Bulanan[6], row.Bulanan[7], row.Bulanan[8]
			k.Sep, k.Okt, k.Nov, k.Des = row.Bulanan[9], row.Bulanan[10], row.Bulanan[11], row.Bulanan[12]
			k.Infaq = row.Infaq
			return true
		}
	}
	return false
}
