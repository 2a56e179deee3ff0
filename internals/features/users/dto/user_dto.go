// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	"absensiku_backend/internals/features/users/model"

	"github.com/shopspring/decimal"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type CreateUserRequest struct {
	UserName       string           `json:"user_name" validate:"required,max=100"`
	UserEmail      string           `json:"user_email" validate:"required,email,max=255"`
	UserPassword   string           `json:"user_password" validate:"required,min=8"`
	UserHourlyRate *decimal.Decimal `json:"user_hourly_rate" validate:"omitempty"`
}

// Partial update: field nil = tidak disentuh.
type UpdateUserRequest struct {
	UserName  *string `json:"user_name" validate:"omitempty,max=100"`
	UserEmail *string `json:"user_email" validate:"omitempty,email,max=255"`
}

type UpdateHourlyRateRequest struct {
	UserHourlyRate decimal.Decimal `json:"user_hourly_rate" validate:"required"`
}

/* =========================================================
   2) RESPONSE DTO + MAPPER
   ========================================================= */

type UserResponse struct {
	UserID         uint            `json:"user_id"`
	UserName       string          `json:"user_name"`
	UserEmail      string          `json:"user_email"`
	UserHourlyRate decimal.Decimal `json:"user_hourly_rate"`
	UserCreatedAt  time.Time       `json:"user_created_at"`
	UserUpdatedAt  time.Time       `json:"user_updated_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromUserModel(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:         m.UserID,
		UserName:       m.UserName,
		UserEmail:      m.UserEmail,
		UserHourlyRate: m.UserHourlyRate,
		UserCreatedAt:  m.UserCreatedAt,
		UserUpdatedAt:  m.UserUpdatedAt,
	}
}
