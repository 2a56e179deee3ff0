package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel: pemilik catatan kehadiran. Tarif per jam (user_hourly_rate)
// dipakai saat menghitung upah; mengubah tarif TIDAK menghitung ulang
// catatan lama — rekalkulasi hanya terjadi saat kehadirannya disentuh lagi.
type UserModel struct {
	UserID         uint            `gorm:"primaryKey;column:user_id" json:"user_id"`
	UserName       string          `gorm:"size:100;not null;column:user_name" json:"user_name"`
	UserEmail      string          `gorm:"size:255;not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`
	UserPassword   string          `gorm:"size:255;not null;column:user_password" json:"-"`
	UserHourlyRate decimal.Decimal `gorm:"type:numeric(10,2);not null;default:1000.00;column:user_hourly_rate" json:"user_hourly_rate"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
