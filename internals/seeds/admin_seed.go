package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"simasjid_backend/internals/configs"
	"simasjid_backend/internals/constants"
	"simasjid_backend/internals/features/users/model"
)

// SeedAdmin membuat akun admin awal dari env ADMIN_EMAIL + ADMIN_PASSWORD
// bila belum ada. Dipanggil sekali saat startup; tanpa env, dilewati.
func SeedAdmin(db *gorm.DB) {
	email := configs.AdminEmail
	password := configs.AdminPassword
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL / ADMIN_PASSWORD kosong, seed admin dilewati")
		return
	}

	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		log.Println("[ERROR] Gagal cek akun admin:", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] Gagal hash password admin:", err)
		return
	}

	admin := model.User{
		UserName: "Admin",
		Email:    email,
		Password: string(hashed),
		Role:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("[ERROR] Gagal buat akun admin:", err)
		return
	}
	log.Println("✅ Akun admin awal berhasil dibuat:", email)
}
