package dto

type CreateProgramKerjaRequest struct {
	Nama       string `json:"nama" validate:"required,max=200"`
	Bagian     string `json:"bagian" validate:"required,max=100"`
	Tahun      int    `json:"tahun" validate:"required,gte=2000,lte=2100"`
	Keterangan string `json:"keterangan"`
}

type UpdateProgramKerjaRequest struct {
	Nama       *string `json:"nama" validate:"omitempty,max=200"`
	Bagian     *string `json:"bagian" validate:"omitempty,max=100"`
	Tahun      *int    `json:"tahun" validate:"omitempty,gte=2000,lte=2100"`
	Keterangan *string `json:"keterangan"`
}

type CreateVisiMisiRequest struct {
	Kategori string `json:"kategori" validate:"required,oneof=visi misi"`
	Isi      string `json:"isi" validate:"required"`
}

type UpdateVisiMisiRequest struct {
	Kategori *string `json:"kategori" validate:"omitempty,oneof=visi misi"`
	Isi      *string `json:"isi" validate:"omitempty"`
}
