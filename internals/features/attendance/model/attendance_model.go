package model

import (
	"time"

	userModel "absensiku_backend/internals/features/users/model"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

/*
AttendanceModel: satu hari kerja satu user.
- (user, tanggal) unik → maksimal satu baris per user per hari; race
  clock-in ganda diserialisasi oleh constraint ini di level DB.
- attendance_total_hours / attendance_total_amount adalah nilai turunan:
  setiap perubahan jam masuk/pulang atau set istirahat wajib diikuti
  rekalkulasi (AttendanceService.CalculateTotals) sebelum disimpan.
*/
type AttendanceModel struct {
	AttendanceID     uint           `gorm:"primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceUserID uint           `gorm:"not null;column:attendance_user_id;uniqueIndex:uq_attendance_user_date,priority:1" json:"attendance_user_id"`
	AttendanceDate   datatypes.Date `gorm:"not null;column:attendance_date;uniqueIndex:uq_attendance_user_date,priority:2" json:"attendance_date"`

	AttendanceClockIn  *dbtime.Tod `gorm:"type:time;column:attendance_clock_in" json:"attendance_clock_in,omitempty"`
	AttendanceClockOut *dbtime.Tod `gorm:"type:time;column:attendance_clock_out" json:"attendance_clock_out,omitempty"`

	AttendanceTotalHours  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0;column:attendance_total_hours" json:"attendance_total_hours"`
	AttendanceTotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0;column:attendance_total_amount" json:"attendance_total_amount"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`

	User       *userModel.UserModel `gorm:"foreignKey:AttendanceUserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
	BreakTimes []BreakTimeModel     `gorm:"foreignKey:BreakTimeAttendanceID;references:AttendanceID;constraint:OnDelete:CASCADE" json:"break_times,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

// Date: tanggal kehadiran sebagai time.Time di timezone organisasi.
func (m *AttendanceModel) Date() time.Time {
	return time.Time(m.AttendanceDate).In(dbtime.Location())
}
