package dto

import (
	"time"

	"absensiku_backend/internals/features/attendance/model"
	"absensiku_backend/internals/features/attendance/service"
	"absensiku_backend/internals/helpers/dbtime"

	"github.com/shopspring/decimal"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

// Clock-in / clock-out: time kosong = jam sekarang (jam organisasi).
type ClockInRequest struct {
	Time *dbtime.Tod `json:"time" validate:"omitempty"`
}

type ClockOutRequest struct {
	Time *dbtime.Tod `json:"time" validate:"omitempty"`
}

// Update (partial, field eksplisit — bukan set-attribute dinamis).
// BreakTimes nil = set istirahat tidak disentuh; list kosong = hapus semua.
type UpdateAttendanceRequest struct {
	AttendanceClockIn  *dbtime.Tod       `json:"attendance_clock_in" validate:"omitempty"`
	AttendanceClockOut *dbtime.Tod       `json:"attendance_clock_out" validate:"omitempty"`
	BreakTimes         *[]BreakTimePatch `json:"break_times" validate:"omitempty,dive"`
}

type BreakTimePatch struct {
	BreakTimeID    uint        `json:"break_time_id" validate:"omitempty"`
	BreakTimeStart *dbtime.Tod `json:"break_time_start" validate:"omitempty"`
	BreakTimeEnd   *dbtime.Tod `json:"break_time_end" validate:"omitempty"`
}

func (p BreakTimePatch) ToServicePatch() service.BreakPatch {
	return service.BreakPatch{
		ID:    p.BreakTimeID,
		Start: p.BreakTimeStart,
		End:   p.BreakTimeEnd,
	}
}

func ToServicePatches(in []BreakTimePatch) []service.BreakPatch {
	out := make([]service.BreakPatch, 0, len(in))
	for _, p := range in {
		out = append(out, p.ToServicePatch())
	}
	return out
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type AttendanceResponse struct {
	AttendanceID          uint            `json:"attendance_id"`
	AttendanceUserID      uint            `json:"attendance_user_id"`
	AttendanceDate        string          `json:"attendance_date"` // "YYYY-MM-DD"
	AttendanceClockIn     *dbtime.Tod     `json:"attendance_clock_in,omitempty"`
	AttendanceClockOut    *dbtime.Tod     `json:"attendance_clock_out,omitempty"`
	AttendanceTotalHours  decimal.Decimal `json:"attendance_total_hours"`
	AttendanceTotalAmount decimal.Decimal `json:"attendance_total_amount"`
	AttendanceCreatedAt   time.Time       `json:"attendance_created_at"`
	AttendanceUpdatedAt   time.Time       `json:"attendance_updated_at"`
}

type AttendanceWithBreaksResponse struct {
	AttendanceResponse
	BreakTimes []BreakTimeResponse `json:"break_times"`
}

type AttendanceListResponse struct {
	Items []AttendanceWithBreaksResponse `json:"items"`
}

/* =========================================================
   3) MAPPERS
   ========================================================= */

func FromAttendanceModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:          m.AttendanceID,
		AttendanceUserID:      m.AttendanceUserID,
		AttendanceDate:        m.Date().Format("2006-01-02"),
		AttendanceClockIn:     m.AttendanceClockIn,
		AttendanceClockOut:    m.AttendanceClockOut,
		AttendanceTotalHours:  m.AttendanceTotalHours,
		AttendanceTotalAmount: m.AttendanceTotalAmount,
		AttendanceCreatedAt:   m.AttendanceCreatedAt,
		AttendanceUpdatedAt:   m.AttendanceUpdatedAt,
	}
}

func FromAttendanceModelWithBreaks(m model.AttendanceModel) AttendanceWithBreaksResponse {
	breaks := make([]BreakTimeResponse, 0, len(m.BreakTimes))
	for _, b := range m.BreakTimes {
		breaks = append(breaks, FromBreakTimeModel(b))
	}
	return AttendanceWithBreaksResponse{
		AttendanceResponse: FromAttendanceModel(m),
		BreakTimes:         breaks,
	}
}
