package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"simasjid_backend/internals/configs"
	"simasjid_backend/internals/features/users/model"
)

var (
	ErrEmailTerdaftar = errors.New("email sudah terdaftar")
	ErrLoginGagal     = errors.New("email atau password salah")
)

const accessTokenTTL = 24 * time.Hour

// BuatAccessToken menerbitkan JWT HS256 dengan klaim user_id + role,
// sebagaimana dibaca AuthMiddleware.
func BuatAccessToken(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.UserID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(accessTokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// Login memverifikasi kredensial dan mengembalikan user-nya.
func Login(db *gorm.DB, email, password string) (*model.User, error) {
	var user model.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLoginGagal
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrLoginGagal
	}
	return &user, nil
}

// Register membuat user baru dengan password ter-hash.
func Register(db *gorm.DB, userName, email, password, role string) (*model.User, error) {
	var count int64
	if err := db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTerdaftar
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		UserName: userName,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
