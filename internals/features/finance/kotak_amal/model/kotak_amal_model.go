package model

import (
	"time"

	"github.com/google/uuid"
)

// KotakAmal adalah kotak amal luar per lokasi dengan nominal bulanan,
// bentuknya sama dengan donatur tapi diberi kunci nama lokasi.
type KotakAmal struct {
	KotakAmalID uuid.UUID `gorm:"column:kotak_amal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"kotak_amal_id"`

	KotakAmalNo     int    `gorm:"column:kotak_amal_no;not null" json:"kotak_amal_no"`
	KotakAmalLokasi string `gorm:"column:kotak_amal_lokasi;type:varchar(100);not null" json:"kotak_amal_lokasi"`
	KotakAmalTahun  int    `gorm:"column:kotak_amal_tahun;not null;index" json:"kotak_amal_tahun"`

	Jan int64 `gorm:"column:kotak_amal_jan;not null;default:0" json:"jan"`
	Feb int64 `gorm:"column:kotak_amal_feb;not null;default:0" json:"feb"`
	Mar int64 `gorm:"column:kotak_amal_mar;not null;default:0" json:"mar"`
	Apr int64 `gorm:"column:kotak_amal_apr;not null;default:0" json:"apr"`
	Mei int64 `gorm:"column:kotak_amal_mei;not null;default:0" json:"mei"`
	Jun int64 `gorm:"column:kotak_amal_jun;not null;default:0" json:"jun"`
	Jul int64 `gorm:"column:kotak_amal_jul;not null;default:0" json:"jul"`
	Agu int64 `gorm:"column:kotak_amal_agu;not null;default:0" json:"agu"`
	Sep int64 `gorm:"column:kotak_amal_sep;not null;default:0" json:"sep"`
	Okt int64 `gorm:"column:kotak_amal_okt;not null;default:0" json:"okt"`
	Nov int64 `gorm:"column:kotak_amal_nov;not null;default:0" json:"nov"`
	Des int64 `gorm:"column:kotak_amal_des;not null;default:0" json:"des"`

	Infaq int64 `gorm:"column:kotak_amal_infaq;not null;default:0" json:"infaq"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (KotakAmal) TableName() string {
	return "kotak_amals"
}

// Bulanan mengembalikan nominal per bulan, diindeks 1..12 (indeks 0 kosong).
func (k *KotakAmal) Bulanan() [13]int64 {
	return [13]int64{0, k.Jan, k.Feb, k.Mar, k.Apr, k.Mei, k.Jun, k.Jul, k.Agu, k.Sep, k.Okt, k.Nov, k.Des}
}

func (k *KotakAmal) TotalBulanan() int64 {
	var total int64
	for b := 1; b <= 12; b++ {
		total += k.Bulanan()[b]
	}
	return total
}

func (k *KotakAmal) TotalSetahun() int64 {
	return k.TotalBulanan() + k.Infaq
}
