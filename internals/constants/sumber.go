package constants

// Label sumber pemasukan yang disimpan di kolom `sumber` tabel pemasukan.
const (
	SumberDonatur         = "Donatur"
	SumberKotakAmalLuar   = "Kotak Amal Luar"
	SumberKotakAmalMasjid = "Kotak Amal Masjid"
	SumberKotakAmalJumat  = "Kotak Amal Jumat"
	SumberDonasiKhusus    = "Donasi Khusus"
	SumberInfaq           = "Infaq"
)

// Tag tipe sumber untuk rekap tahunan & integrasi data.
const (
	TipeDonatur         = "DONATUR"
	TipeKotakAmalLuar   = "KOTAK_AMAL_LUAR"
	TipeKotakAmalMasjid = "KOTAK_AMAL_MASJID"
	TipeKotakAmalJumat  = "KOTAK_AMAL_JUMAT"
	TipeDonasiKhusus    = "DONASI_KHUSUS"
)

// NamaBulan diindeks 1..12 (indeks 0 tidak dipakai).
var NamaBulan = [13]string{
	"",
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}
