package helper

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NextNo menghitung nomor urut berikutnya (max(no)+1) untuk satu scope,
// mis. per tahun. scopeFn boleh nil (scope global).
// Perhitungan ini tidak dibungkus transaksi; dua create bersamaan pada
// scope yang sama bisa mendapat nomor kembar.
func NextNo(db *gorm.DB, table, noCol string, scopeFn func(*gorm.DB) *gorm.DB) (int, error) {
	q := db.Table(table)
	if scopeFn != nil {
		q = scopeFn(q)
	}
	var maxNo *int
	if err := q.Select(fmt.Sprintf("MAX(%s)", noCol)).Scan(&maxNo).Error; err != nil {
		return 0, err
	}
	if maxNo == nil {
		return 1, nil
	}
	return *maxNo + 1, nil
}

// RenumberNo menata ulang kolom nomor urut menjadi 1..N tanpa celah untuk
// satu scope, dipanggil setelah delete. Baris dibaca berurutan lalu
// di-update satu per satu; hanya baris yang nomornya berubah yang ditulis.
func RenumberNo(db *gorm.DB, table, idCol, noCol string, scopeFn func(*gorm.DB) *gorm.DB) error {
	type rowIDNo struct {
		ID uuid.UUID
		No int
	}

	q := db.Table(table).
		Select(fmt.Sprintf("%s AS id, %s AS no", idCol, noCol)).
		Order(noCol + " ASC")
	if scopeFn != nil {
		q = scopeFn(q)
	}

	var rows []rowIDNo
	if err := q.Scan(&rows).Error; err != nil {
		return err
	}

	for i, r := range rows {
		want := i + 1
		if r.No == want {
			continue
		}
		if err := db.Table(table).
			Where(fmt.Sprintf("%s = ?", idCol), r.ID).
			Update(noCol, want).Error; err != nil {
			return err
		}
	}
	return nil
}
