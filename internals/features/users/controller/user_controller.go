// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"absensiku_backend/internals/configs"
	userDTO "absensiku_backend/internals/features/users/dto"
	userModel "absensiku_backend/internals/features/users/model"
	helper "absensiku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ===============================
   AUTH
=============================== */

// POST /api/login
func (ctrl *UserController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_email = ?", req.UserEmail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	claims := jwt.MapClaims{
		"user_id": user.UserID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		log.Printf("[ERROR] Gagal menandatangani token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", userDTO.LoginResponse{
		Token: signed,
		User:  userDTO.FromUserModel(user),
	})
}

/* ===============================
   PROFIL SENDIRI
=============================== */

// GET /api/u/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.Success(c, "OK", userDTO.FromUserModel(user))
}

// PUT /api/u/users/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	txErr := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if req.UserName != nil {
			user.UserName = *req.UserName
		}
		if req.UserEmail != nil && *req.UserEmail != user.UserEmail {
			var n int64
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_email = ?", *req.UserEmail).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return helper.NewAppError(fiber.StatusBadRequest,
					"EMAIL_ALREADY_USED", "Email sudah terdaftar")
			}
			user.UserEmail = *req.UserEmail
		}
		return tx.Save(&user).Error
	})
	if txErr != nil {
		return helper.JsonAppError(c, txErr)
	}

	return helper.JsonUpdated(c, "Profil berhasil diperbarui", userDTO.FromUserModel(user))
}

// PUT /api/u/users/me/hourly-rate
// Mengubah tarif hanya memengaruhi perhitungan berikutnya,
// catatan lama tidak dihitung ulang.
func (ctrl *UserController) UpdateHourlyRate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req userDTO.UpdateHourlyRateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.UserHourlyRate.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Tarif per jam tidak boleh negatif")
	}

	var user userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Pengguna tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	user.UserHourlyRate = req.UserHourlyRate
	if err := ctrl.DB.WithContext(c.Context()).Save(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan tarif")
	}

	return helper.JsonUpdated(c, "Tarif per jam berhasil diperbarui", userDTO.FromUserModel(user))
}

/* ===============================
   ADMINISTRASI PENGGUNA
=============================== */

// GET /api/u/users?page=&per_page=
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []userModel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("user_id ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pengguna")
	}

	items := make([]userDTO.UserResponse, 0, len(rows))
	for _, m := range rows {
		items = append(items, userDTO.FromUserModel(m))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, paging, len(items)),
	})
}

// POST /api/u/users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.UserHourlyRate != nil && req.UserHourlyRate.IsNegative() {
		return helper.Error(c, fiber.StatusBadRequest, "Tarif per jam tidak boleh negatif")
	}

	var n int64
	if err := ctrl.DB.WithContext(c.Context()).Model(&userModel.UserModel{}).
		Where("user_email = ?", req.UserEmail).Count(&n).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if n > 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Gagal hashing password: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	rate := decimal.NewFromInt(1000)
	if req.UserHourlyRate != nil {
		rate = *req.UserHourlyRate
	}

	user := userModel.UserModel{
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		UserPassword:   string(hashed),
		UserHourlyRate: rate,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat pengguna")
	}

	return helper.JsonCreated(c, "Pengguna berhasil dibuat", userDTO.FromUserModel(user))
}
