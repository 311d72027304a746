package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"simasjid_backend/internals/features/users/dto"
	"simasjid_backend/internals/features/users/model"
	"simasjid_backend/internals/features/users/service"
	helper "simasjid_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, validate: validator.New()}
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Login(ctrl.DB, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginGagal) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Println("[ERROR] Gagal proses login:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	token, err := service.BuatAccessToken(user)
	if err != nil {
		log.Println("[ERROR] Gagal terbitkan token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.Success(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		UserName:    user.UserName,
		Email:       user.Email,
		Role:        user.Role,
	})
}

// 🟢 POST /api/a/auth/register — hanya admin.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := service.Register(ctrl.DB, req.UserName, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrEmailTerdaftar) {
			return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Println("[ERROR] Gagal daftarkan user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil didaftarkan", user)
}

// 🟢 GET /api/a/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	var user model.User
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.Success(c, "Data user berhasil diambil", user)
}

// 🟢 POST /api/auth/logout — hapus cookie akses.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.Success(c, "Logout berhasil", fiber.Map{})
}
