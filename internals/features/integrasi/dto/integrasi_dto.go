package dto

type EditUnifiedRequest struct {
	SourceType string  `json:"source_type" validate:"required,oneof=DONATUR KOTAK_AMAL_LUAR KOTAK_AMAL_MASJID KOTAK_AMAL_JUMAT DONASI_KHUSUS"`
	SourceID   string  `json:"source_id" validate:"required,uuid"`
	Bulanan    []int64 `json:"bulanan" validate:"required,len=12"`
	Infaq      int64   `json:"infaq" validate:"gte=0"`
	Tahun      int     `json:"tahun" validate:"required,gte=2000,lte=2100"`
}
