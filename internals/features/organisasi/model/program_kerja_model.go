package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgramKerja struct {
	ProgramKerjaID         uuid.UUID `gorm:"column:program_kerja_id;type:uuid;default:gen_random_uuid();primaryKey" json:"program_kerja_id"`
	ProgramKerjaNo         int       `gorm:"column:program_kerja_no;not null" json:"program_kerja_no"`
	ProgramKerjaNama       string    `gorm:"column:program_kerja_nama;type:varchar(200);not null" json:"program_kerja_nama"`
	ProgramKerjaBagian     string    `gorm:"column:program_kerja_bagian;type:varchar(100);not null;index" json:"program_kerja_bagian"`
	ProgramKerjaTahun      int       `gorm:"column:program_kerja_tahun;not null;index" json:"program_kerja_tahun"`
	ProgramKerjaKeterangan string    `gorm:"column:program_kerja_keterangan;type:text" json:"program_kerja_keterangan"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ProgramKerja) TableName() string {
	return "program_kerjas"
}
