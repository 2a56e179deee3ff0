package dto

import (
	"time"

	"absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/helpers/dbtime"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type BreakStartRequest struct {
	AttendanceID uint        `json:"attendance_id" validate:"required"`
	Time         *dbtime.Tod `json:"time" validate:"omitempty"` // kosong = jam sekarang
}

type BreakEndRequest struct {
	BreakID uint        `json:"break_id" validate:"required"`
	Time    *dbtime.Tod `json:"time" validate:"omitempty"`
}

// Update manual (partial): field nil = tidak disentuh.
type UpdateBreakTimeRequest struct {
	BreakTimeStart *dbtime.Tod `json:"break_time_start" validate:"omitempty"`
	BreakTimeEnd   *dbtime.Tod `json:"break_time_end" validate:"omitempty"`
}

/* =========================================================
   2) RESPONSE DTO + MAPPER
   ========================================================= */

type BreakTimeResponse struct {
	BreakTimeID           uint        `json:"break_time_id"`
	BreakTimeAttendanceID uint        `json:"break_time_attendance_id"`
	BreakTimeStart        dbtime.Tod  `json:"break_time_start"`
	BreakTimeEnd          *dbtime.Tod `json:"break_time_end,omitempty"`
	BreakTimeDuration     int         `json:"break_time_duration"`
	BreakTimeCreatedAt    time.Time   `json:"break_time_created_at"`
	BreakTimeUpdatedAt    time.Time   `json:"break_time_updated_at"`
}

func FromBreakTimeModel(m model.BreakTimeModel) BreakTimeResponse {
	return BreakTimeResponse{
		BreakTimeID:           m.BreakTimeID,
		BreakTimeAttendanceID: m.BreakTimeAttendanceID,
		BreakTimeStart:        m.BreakTimeStart,
		BreakTimeEnd:          m.BreakTimeEnd,
		BreakTimeDuration:     m.BreakTimeDuration,
		BreakTimeCreatedAt:    m.BreakTimeCreatedAt,
		BreakTimeUpdatedAt:    m.BreakTimeUpdatedAt,
	}
}
