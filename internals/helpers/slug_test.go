package helper

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		nama   string
		input  string
		maxLen int
		want   string
	}{
		{"spasi jadi strip", "Kajian Rutin Malam Jumat", 0, "kajian-rutin-malam-jumat"},
		{"diakritik dihapus", "Café Ramadhan", 0, "cafe-ramadhan"},
		{"simbol dikompres", "Santunan -- Anak & Yatim!!", 0, "santunan-anak-yatim"},
		{"trim strip ujung", "---Buka Bersama---", 0, "buka-bersama"},
		{"dipotong sesuai maxLen", "pembangunan menara masjid", 11, "pembangunan"},
		{"potongan tidak berakhir strip", "abc def", 4, "abc"},
		{"kosong pakai fallback", "!!!", 0, "konten"},
	}

	for _, tc := range cases {
		t.Run(tc.nama, func(t *testing.T) {
			got := Slugify(tc.input, tc.maxLen)
			if got != tc.want {
				t.Errorf("Slugify(%q, %d) = %q, harusnya %q", tc.input, tc.maxLen, got, tc.want)
			}
		})
	}
}
