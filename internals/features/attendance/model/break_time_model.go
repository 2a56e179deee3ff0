package model

import (
	"time"

	"absensiku_backend/internals/helpers/dbtime"
)

/*
BreakTimeModel: satu jendela istirahat di dalam satu kehadiran.
- break_time_end NULL = istirahat masih berjalan; maksimal satu yang
  terbuka per kehadiran (dijaga di BreakService.StartBreak).
- break_time_duration (menit) nilai turunan, tidak pernah negatif.
*/
type BreakTimeModel struct {
	BreakTimeID           uint        `gorm:"primaryKey;column:break_time_id" json:"break_time_id"`
	BreakTimeAttendanceID uint        `gorm:"not null;index:idx_break_times_attendance;column:break_time_attendance_id" json:"break_time_attendance_id"`
	BreakTimeStart        dbtime.Tod  `gorm:"type:time;not null;column:break_time_start" json:"break_time_start"`
	BreakTimeEnd          *dbtime.Tod `gorm:"type:time;column:break_time_end" json:"break_time_end,omitempty"`
	BreakTimeDuration     int         `gorm:"not null;default:0;column:break_time_duration" json:"break_time_duration"` // menit

	BreakTimeCreatedAt time.Time `gorm:"column:break_time_created_at;autoCreateTime" json:"break_time_created_at"`
	BreakTimeUpdatedAt time.Time `gorm:"column:break_time_updated_at;autoUpdateTime" json:"break_time_updated_at"`
}

func (BreakTimeModel) TableName() string {
	return "break_times"
}
