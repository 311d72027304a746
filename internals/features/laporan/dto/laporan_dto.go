package dto

type DashboardResponse struct {
	Tahun                int     `json:"tahun"`
	TotalPemasukan       int64   `json:"total_pemasukan"`
	TotalPengeluaran     int64   `json:"total_pengeluaran"`
	Saldo                int64   `json:"saldo"`
	PemasukanBulanIni    int64   `json:"pemasukan_bulan_ini"`
	PengeluaranBulanIni  int64   `json:"pengeluaran_bulan_ini"`
	GrowthPemasukan      float64 `json:"growth_pemasukan"`
	GrowthPengeluaran    float64 `json:"growth_pengeluaran"`
	JumlahDonatur        int64   `json:"jumlah_donatur"`
	JumlahDonasiKhusus   int64   `json:"jumlah_donasi_khusus"`
}

// RekapPemasukanRow memuat 12 kolom bulanan (indeks 0 = Januari).
type RekapPemasukanRow struct {
	Tipe    string    `json:"tipe"`
	Sumber  string    `json:"sumber"`
	Bulanan [12]int64 `json:"bulanan"`
	Total   int64     `json:"total"`
}

type RekapPengeluaranRow struct {
	Kategori string `json:"kategori"`
	Total    int64  `json:"total"`
}

type RekapTahunanResponse struct {
	Tahun            int                   `json:"tahun"`
	Pemasukan        []RekapPemasukanRow   `json:"pemasukan"`
	TotalPemasukan   int64                 `json:"total_pemasukan"`
	Pengeluaran      []RekapPengeluaranRow `json:"pengeluaran"`
	TotalPengeluaran int64                 `json:"total_pengeluaran"`
	Saldo            int64                 `json:"saldo"`
}

type LaporanJumatResponse struct {
	TanggalLaporan      string `json:"tanggal_laporan"`
	JumatSebelumnya     string `json:"jumat_sebelumnya"`
	KotakAmalJumatLalu  int64  `json:"kotak_amal_jumat_lalu"`
	KotakAmalLuarBulan  int64  `json:"kotak_amal_luar_bulan_ini"`
	DonaturSampaiBulan  int64  `json:"donatur_sampai_bulan_ini"`
	DonasiKhususSepekan int64  `json:"donasi_khusus_sepekan"`
	PengeluaranSepekan  int64  `json:"pengeluaran_sepekan"`
}

type StatsResponse struct {
	Dashboard DashboardResponse `json:"dashboard"`
	Fallback  bool              `json:"fallback"`
}
