package model

import (
	"time"

	"github.com/google/uuid"
)

// Donatur adalah donatur tetap dengan nominal bulanan selama satu tahun.
type Donatur struct {
	DonaturID uuid.UUID `gorm:"column:donatur_id;type:uuid;default:gen_random_uuid();primaryKey" json:"donatur_id"`

	DonaturNo     int    `gorm:"column:donatur_no;not null" json:"donatur_no"`
	DonaturNama   string `gorm:"column:donatur_nama;type:varchar(100);not null" json:"donatur_nama"`
	DonaturAlamat string `gorm:"column:donatur_alamat;type:text" json:"donatur_alamat"`
	DonaturTahun  int    `gorm:"column:donatur_tahun;not null;index" json:"donatur_tahun"`

	Jan int64 `gorm:"column:donatur_jan;not null;default:0" json:"jan"`
	Feb int64 `gorm:"column:donatur_feb;not null;default:0" json:"feb"`
	Mar int64 `gorm:"column:donatur_mar;not null;default:0" json:"mar"`
	Apr int64 `gorm:"column:donatur_apr;not null;default:0" json:"apr"`
	Mei int64 `gorm:"column:donatur_mei;not null;default:0" json:"mei"`
	Jun int64 `gorm:"column:donatur_jun;not null;default:0" json:"jun"`
	Jul int64 `gorm:"column:donatur_jul;not null;default:0" json:"jul"`
	Agu int64 `gorm:"column:donatur_agu;not null;default:0" json:"agu"`
	Sep int64 `gorm:"column:donatur_sep;not null;default:0" json:"sep"`
	Okt int64 `gorm:"column:donatur_okt;not null;default:0" json:"okt"`
	Nov int64 `gorm:"column:donatur_nov;not null;default:0" json:"nov"`
	Des int64 `gorm:"column:donatur_des;not null;default:0" json:"des"`

	Infaq int64 `gorm:"column:donatur_infaq;not null;default:0" json:"infaq"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Donatur) TableName() string {
	return "donaturs"
}

// Bulanan mengembalikan nominal per bulan, diindeks 1..12 (indeks 0 kosong).
func (d *Donatur) Bulanan() [13]int64 {
	return [13]int64{0, d.Jan, d.Feb, d.Mar, d.Apr, d.Mei, d.Jun, d.Jul, d.Agu, d.Sep, d.Okt, d.Nov, d.Des}
}

// TotalBulanan menjumlahkan 12 kolom bulan (tanpa infaq).
func (d *Donatur) TotalBulanan() int64 {
	var total int64
	for b := 1; b <= 12; b++ {
		total += d.Bulanan()[b]
	}
	return total
}

// TotalSetahun = 12 bulan + infaq.
func (d *Donatur) TotalSetahun() int64 {
	return d.TotalBulanan() + d.Infaq
}
