package service

import (
	"encoding/csv"
	"strconv"
	"strings"

	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
	integrasiService "simasjid_backend/internals/features/integrasi/service"
	laporanDto "simasjid_backend/internals/features/laporan/dto"
)

var headerBulanan = []string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

func tulisCSV(rows [][]string) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
	return sb.String()
}

// BuildDonaturCSV merender tabel donatur satu tahun: nomor, nama, alamat,
// 12 kolom bulan, infaq, total, ditutup baris total keseluruhan.
func BuildDonaturCSV(donaturs []donaturModel.Donatur, tahun int) string {
	header := append([]string{"No", "Nama", "Alamat"}, headerBulanan...)
	header = append(header, "Infaq", "Total")
	rows := [][]string{{"Daftar Donatur " + strconv.Itoa(tahun)}, header}

	totalPerBulan := make([]int64, 13)
	var totalInfaq, totalSemua int64
	for i := range donaturs {
		d := &donaturs[i]
		bulanan := d.Bulanan()
		row := []string{strconv.Itoa(d.DonaturNo), d.DonaturNama, d.DonaturAlamat}
		for b := 1; b <= 12; b++ {
			row = append(row, strconv.FormatInt(bulanan[b], 10))
			totalPerBulan[b] += bulanan[b]
		}
		row = append(row, strconv.FormatInt(d.Infaq, 10), strconv.FormatInt(d.TotalSetahun(), 10))
		totalInfaq += d.Infaq
		totalSemua += d.TotalSetahun()
		rows = append(rows, row)
	}

	totalRow := []string{"", "Total", ""}
	for b := 1; b <= 12; b++ {
		totalRow = append(totalRow, strconv.FormatInt(totalPerBulan[b], 10))
	}
	totalRow = append(totalRow, strconv.FormatInt(totalInfaq, 10), strconv.FormatInt(totalSemua, 10))
	rows = append(rows, totalRow)

	return tulisCSV(rows)
}

// BuildRekapCSV merender rekap pemasukan per tipe sumber plus rekap
// pengeluaran per kategori.
func BuildRekapCSV(rekap laporanDto.RekapTahunanResponse) string {
	header := append([]string{"Sumber"}, headerBulanan...)
	header = append(header, "Total")
	rows := [][]string{{"Rekap Pemasukan " + strconv.Itoa(rekap.Tahun)}, header}

	for _, r := range rekap.Pemasukan {
		row := []string{r.Sumber}
		for b := 0; b < 12; b++ {
			row = append(row, strconv.FormatInt(r.Bulanan[b], 10))
		}
		row = append(row, strconv.FormatInt(r.Total, 10))
		rows = append(rows, row)
	}
	totalRow := []string{"Total"}
	for b := 0; b < 12; b++ {
		var t int64
		for _, r := range rekap.Pemasukan {
			t += r.Bulanan[b]
		}
		totalRow = append(totalRow, strconv.FormatInt(t, 10))
	}
	totalRow = append(totalRow, strconv.FormatInt(rekap.TotalPemasukan, 10))
	rows = append(rows, totalRow)

	rows = append(rows, []string{}, []string{"Rekap Pengeluaran " + strconv.Itoa(rekap.Tahun)}, []string{"Kategori", "Total"})
	for _, r := range rekap.Pengeluaran {
		rows = append(rows, []string{r.Kategori, strconv.FormatInt(r.Total, 10)})
	}
	rows = append(rows,
		[]string{"Total", strconv.FormatInt(rekap.TotalPengeluaran, 10)},
		[]string{"Saldo", strconv.FormatInt(rekap.Saldo, 10)},
	)

	return tulisCSV(rows)
}

// BuildIntegrasiCSV merender riwayat tahunan gabungan.
func BuildIntegrasiCSV(unified []integrasiService.UnifiedRow, tahun int) string {
	header := append([]string{"Nama", "Tipe"}, headerBulanan...)
	header = append(header, "Infaq", "Total")
	rows := [][]string{{"Riwayat Pemasukan Gabungan " + strconv.Itoa(tahun)}, header}

	var totalSemua int64
	for i := range unified {
		u := &unified[i]
		row := []string{u.Nama, u.SourceType}
		for b := 1; b <= 12; b++ {
			row = append(row, strconv.FormatInt(u.Bulanan[b], 10))
		}
		row = append(row, strconv.FormatInt(u.Infaq, 10), strconv.FormatInt(u.Total, 10))
		totalSemua += u.Total
		rows = append(rows, row)
	}
	rows = append(rows, []string{"Total", "", "", "", "", "", "", "", "", "", "", "", "", "", "", strconv.FormatInt(totalSemua, 10)})

	return tulisCSV(rows)
}
