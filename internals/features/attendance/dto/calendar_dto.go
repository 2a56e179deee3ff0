package dto

import (
	"absensiku_backend/internals/features/attendance/service"

	"github.com/shopspring/decimal"
)

/* =========================================================
   KALENDER BULANAN
   ========================================================= */

type CalendarDayResponse struct {
	Date       string              `json:"date"` // "YYYY-MM-DD"
	DayOfWeek  int                 `json:"day_of_week"` // Senin=0 .. Minggu=6
	IsWeekend  bool                `json:"is_weekend"`
	IsHoliday  bool                `json:"is_holiday"`
	Status     string              `json:"status"` // weekend | present | absent
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

type MonthlyCalendarResponse struct {
	Year             int                   `json:"year"`
	Month            int                   `json:"month"`
	TotalWorkingDays int                   `json:"total_working_days"`
	TotalPresentDays int                   `json:"total_present_days"`
	AttendanceRate   decimal.Decimal       `json:"attendance_rate"` // persen, 2 desimal
	TotalHours       decimal.Decimal       `json:"total_hours"`
	TotalAmount      decimal.Decimal       `json:"total_amount"`
	Days             []CalendarDayResponse `json:"days"`
}

func FromCalendarSummary(s service.CalendarSummary) MonthlyCalendarResponse {
	days := make([]CalendarDayResponse, 0, len(s.Days))
	for _, d := range s.Days {
		var att *AttendanceResponse
		if d.Attendance != nil {
			a := FromAttendanceModel(*d.Attendance)
			att = &a
		}
		days = append(days, CalendarDayResponse{
			Date:       d.Date.Format("2006-01-02"),
			DayOfWeek:  d.DayOfWeek,
			IsWeekend:  d.IsWeekend,
			IsHoliday:  d.IsHoliday,
			Status:     d.Status,
			Attendance: att,
		})
	}
	return MonthlyCalendarResponse{
		Year:             s.Year,
		Month:            s.Month,
		TotalWorkingDays: s.TotalWorkingDays,
		TotalPresentDays: s.TotalPresentDays,
		AttendanceRate:   s.AttendanceRate,
		TotalHours:       s.TotalHours,
		TotalAmount:      s.TotalAmount,
		Days:             days,
	}
}
