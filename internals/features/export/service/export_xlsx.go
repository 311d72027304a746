package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	donaturModel "simasjid_backend/internals/features/finance/donatur/model"
	integrasiService "simasjid_backend/internals/features/integrasi/service"
)

const sheetLaporan = "Laporan"

type xlsxStyles struct {
	header int
	angka  int
	zebra  int
	total  int
}

func siapkanSheet(f *excelize.File) (xlsxStyles, error) {
	f.SetSheetName("Sheet1", sheetLaporan)

	var s xlsxStyles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2E7D32"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "bottom", Color: "1B5E20", Style: 2},
		},
	})
	if err != nil {
		return s, err
	}

	numFmt := "#,##0"
	s.angka, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return s, err
	}
	s.zebra, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F1F8E9"}},
	})
	if err != nil {
		return s, err
	}
	s.total, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &numFmt,
		Font:         &excelize.Font{Bold: true},
		Fill:         excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"C8E6C9"}},
	})
	return s, err
}

func kolomNama(idx int) string {
	nama, _ := excelize.ColumnNumberToName(idx)
	return nama
}

// BuildDonaturXLSX merender daftar donatur satu tahun menjadi workbook
// bergaya: header hijau, baris selang-seling, baris total tebal.
func BuildDonaturXLSX(donaturs []donaturModel.Donatur, tahun int) (*excelize.File, error) {
	f := excelize.NewFile()
	styles, err := siapkanSheet(f)
	if err != nil {
		return nil, err
	}

	header := append([]string{"No", "Nama", "Alamat"}, headerBulanan...)
	header = append(header, "Infaq", "Total")

	f.SetCellValue(sheetLaporan, "A1", fmt.Sprintf("Daftar Donatur %d", tahun))
	for i, h := range header {
		cell := fmt.Sprintf("%s2", kolomNama(i+1))
		f.SetCellValue(sheetLaporan, cell, h)
		f.SetCellStyle(sheetLaporan, cell, cell, styles.header)
	}
	f.SetColWidth(sheetLaporan, "A", "A", 6)
	f.SetColWidth(sheetLaporan, "B", "B", 28)
	f.SetColWidth(sheetLaporan, "C", "C", 32)
	f.SetColWidth(sheetLaporan, "D", kolomNama(len(header)), 12)

	totalPerBulan := make([]int64, 13)
	var totalInfaq, totalSemua int64

	baris := 3
	for i := range donaturs {
		d := &donaturs[i]
		bulanan := d.Bulanan()

		f.SetCellValue(sheetLaporan, fmt.Sprintf("A%d", baris), d.DonaturNo)
		f.SetCellValue(sheetLaporan, fmt.Sprintf("B%d", baris), d.DonaturNama)
		f.SetCellValue(sheetLaporan, fmt.Sprintf("C%d", baris), d.DonaturAlamat)
		for b := 1; b <= 12; b++ {
			f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(3+b), baris), bulanan[b])
			totalPerBulan[b] += bulanan[b]
		}
		f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(16), baris), d.Infaq)
		f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(17), baris), d.TotalSetahun())
		totalInfaq += d.Infaq
		totalSemua += d.TotalSetahun()

		gaya := styles.angka
		if i%2 == 1 {
			gaya = styles.zebra
		}
		f.SetCellStyle(sheetLaporan, fmt.Sprintf("D%d", baris), fmt.Sprintf("%s%d", kolomNama(17), baris), gaya)
		baris++
	}

	f.SetCellValue(sheetLaporan, fmt.Sprintf("B%d", baris), "Total")
	for b := 1; b <= 12; b++ {
		f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(3+b), baris), totalPerBulan[b])
	}
	f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(16), baris), totalInfaq)
	f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(17), baris), totalSemua)
	f.SetCellStyle(sheetLaporan, fmt.Sprintf("A%d", baris), fmt.Sprintf("%s%d", kolomNama(17), baris), styles.total)

	return f, nil
}

// BuildIntegrasiXLSX merender riwayat gabungan dengan gaya yang sama.
func BuildIntegrasiXLSX(unified []integrasiService.UnifiedRow, tahun int) (*excelize.File, error) {
	f := excelize.NewFile()
	styles, err := siapkanSheet(f)
	if err != nil {
		return nil, err
	}

	header := append([]string{"Nama", "Tipe"}, headerBulanan...)
	header = append(header, "Infaq", "Total")

	f.SetCellValue(sheetLaporan, "A1", fmt.Sprintf("Riwayat Pemasukan Gabungan %d", tahun))
	for i, h := range header {
		cell := fmt.Sprintf("%s2", kolomNama(i+1))
		f.SetCellValue(sheetLaporan, cell, h)
		f.SetCellStyle(sheetLaporan, cell, cell, styles.header)
	}
	f.SetColWidth(sheetLaporan, "A", "A", 28)
	f.SetColWidth(sheetLaporan, "B", "B", 20)
	f.SetColWidth(sheetLaporan, "C", kolomNama(len(header)), 12)

	var totalSemua int64
	baris := 3
	for i := range unified {
		u := &unified[i]
		f.SetCellValue(sheetLaporan, fmt.Sprintf("A%d", baris), u.Nama)
		f.SetCellValue(sheetLaporan, fmt.Sprintf("B%d", baris), u.SourceType)
		for b := 1; b <= 12; b++ {
			f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(2+b), baris), u.Bulanan[b])
		}
		f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(15), baris), u.Infaq)
		f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(16), baris), u.Total)
		totalSemua += u.Total

		gaya := styles.angka
		if i%2 == 1 {
			gaya = styles.zebra
		}
		f.SetCellStyle(sheetLaporan, fmt.Sprintf("C%d", baris), fmt.Sprintf("%s%d", kolomNama(16), baris), gaya)
		baris++
	}

	f.SetCellValue(sheetLaporan, fmt.Sprintf("A%d", baris), "Total")
	f.SetCellValue(sheetLaporan, fmt.Sprintf("%s%d", kolomNama(16), baris), totalSemua)
	f.SetCellStyle(sheetLaporan, fmt.Sprintf("A%d", baris), fmt.Sprintf("%s%d", kolomNama(16), baris), styles.total)

	return f, nil
}
