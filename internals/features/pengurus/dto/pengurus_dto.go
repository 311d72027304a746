package dto

type CreatePengurusRequest struct {
	Nama     string `form:"nama" validate:"required,max=150"`
	Jabatan  string `form:"jabatan" validate:"required,max=100"`
	Periode  string `form:"periode" validate:"required,max=30"`
	Kategori string `form:"kategori" validate:"required,max=100"`
}

type UpdatePengurusRequest struct {
	Nama     *string `form:"nama" validate:"omitempty,max=150"`
	Jabatan  *string `form:"jabatan" validate:"omitempty,max=100"`
	Periode  *string `form:"periode" validate:"omitempty,max=30"`
	Kategori *string `form:"kategori" validate:"omitempty,max=100"`
}
